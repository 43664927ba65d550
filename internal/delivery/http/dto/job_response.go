package dto

import (
	"time"

	"github.com/google/uuid"
)

// JobResponse is the full record returned by the detail endpoint.
type JobResponse struct {
	ID                 uuid.UUID `json:"id"`
	CompanyName        string    `json:"companyName"`
	Position           string    `json:"position"`
	MonthlySalary      float64   `json:"monthlySalary"`
	JobType            string    `json:"jobType"`
	InternshipDuration string    `json:"internshipDuration,omitempty"`
	WorkingMode        string    `json:"workingMode"`
	JobDescription     string    `json:"jobDescription"`
	AboutCompany       string    `json:"aboutCompany"`
	Skills             []string  `json:"skills"`
	NoOfEmployees      string    `json:"noOfEmployees"`
	Logo               string    `json:"logo,omitempty"`
	Location           string    `json:"location,omitempty"`
	CreatedOn          time.Time `json:"createdOn"`
}

// JobListingResponse is the list projection; descriptive fields are
// intentionally absent.
type JobListingResponse struct {
	ID            uuid.UUID `json:"id"`
	Position      string    `json:"position"`
	NoOfEmployees string    `json:"noOfEmployees"`
	MonthlySalary float64   `json:"monthlySalary"`
	Location      string    `json:"location,omitempty"`
	JobType       string    `json:"jobType"`
	WorkingMode   string    `json:"workingMode"`
	Logo          string    `json:"logo,omitempty"`
	Skills        []string  `json:"skills"`
}
