package job

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobTypeFullTime = "Full-time"
	JobTypePartTime = "Part-time"
	JobTypeIntern   = "Intern"
	JobTypeTravel   = "Travel"
)

const WorkingModeOffice = "office"

type Job struct {
	ID                 uuid.UUID
	CompanyName        string
	Position           string
	MonthlySalary      float64
	JobType            string
	InternshipDuration string
	WorkingMode        string
	JobDescription     string
	AboutCompany       string
	Skills             []string
	NoOfEmployees      string
	Logo               string
	Location           string

	// CreatedOn is set once at creation and never changed by update.
	CreatedOn time.Time
}

// Listing is the partial view returned by the list operation. The
// descriptive fields (jobDescription, aboutCompany, internshipDuration)
// are deliberately absent.
type Listing struct {
	ID            uuid.UUID
	Position      string
	NoOfEmployees string
	MonthlySalary float64
	Location      string
	JobType       string
	WorkingMode   string
	Logo          string
	Skills        []string
}
