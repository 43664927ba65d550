package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// Salary accepts either a JSON number or a numeric string; clients have
// historically sent both.
type Salary float64

func (s *Salary) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "" || raw == "null" {
		*s = 0
		return nil
	}
	raw = strings.Trim(raw, `"`)
	if raw == "" {
		*s = 0
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid monthlySalary: %q", raw)
	}
	*s = Salary(v)
	return nil
}

// JobRequest is the create/update payload. Skills is a comma-joined
// string, split server side.
type JobRequest struct {
	CompanyName        string `json:"companyName"`
	Position           string `json:"position"`
	MonthlySalary      Salary `json:"monthlySalary"`
	JobType            string `json:"jobType"`
	InternshipDuration string `json:"internshipDuration"`
	WorkingMode        string `json:"workingMode"`
	JobDescription     string `json:"jobDescription"`
	AboutCompany       string `json:"aboutCompany"`
	Skills             string `json:"skills"`
	NoOfEmployees      string `json:"noOfEmployees"`
	Logo               string `json:"logo"`
	Location           string `json:"location"`
}
