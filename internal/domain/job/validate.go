package job

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMissingFields = errors.New("all required fields are not provided")

// jobTypeInternship is the literal that makes internshipDuration
// mandatory. It is distinct from JobTypeIntern: postings carrying the
// enum value "Intern" do not trip this requirement.
const jobTypeInternship = "internship"

// Posting is an unvalidated job submission. Skills arrives as a
// comma-delimited string; salary has already been coerced to a number.
type Posting struct {
	CompanyName        string
	Position           string
	MonthlySalary      float64
	JobType            string
	InternshipDuration string
	WorkingMode        string
	JobDescription     string
	AboutCompany       string
	Skills             string
	NoOfEmployees      string
	Logo               string
	Location           string
}

// ValidatePosting checks field presence only; it performs no I/O. The
// returned error wraps ErrMissingFields and names the missing fields.
func ValidatePosting(p Posting) error {
	var missing []string

	require := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}

	require("companyName", p.CompanyName)
	require("position", p.Position)
	if p.MonthlySalary <= 0 {
		missing = append(missing, "monthlySalary")
	}
	require("jobType", p.JobType)
	require("workingMode", p.WorkingMode)
	require("jobDescription", p.JobDescription)
	require("aboutCompany", p.AboutCompany)
	require("noOfEmployees", p.NoOfEmployees)
	require("skills", p.Skills)

	if p.WorkingMode == WorkingModeOffice {
		require("location", p.Location)
	}
	if p.JobType == jobTypeInternship {
		require("internshipDuration", p.InternshipDuration)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	return nil
}

// SplitSkills turns a comma-delimited skills string into a trimmed,
// order-preserving slice. Empty segments are dropped.
func SplitSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
