package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"job-board/internal/delivery/http/middleware"
	"job-board/internal/domain/job"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type mockJobUsecase struct {
	createErr error
	createdIn usecase.JobInput

	listItems []job.Listing
	listErr   error
	gotSkills []string

	detailJob job.Job
	detailErr error

	updateErr error
}

func (m *mockJobUsecase) Create(_ context.Context, in usecase.JobInput) (job.Job, error) {
	m.createdIn = in
	return job.Job{}, m.createErr
}

func (m *mockJobUsecase) List(_ context.Context, skills []string) ([]job.Listing, error) {
	m.gotSkills = skills
	return m.listItems, m.listErr
}

func (m *mockJobUsecase) Detail(context.Context, string) (job.Job, error) {
	return m.detailJob, m.detailErr
}

func (m *mockJobUsecase) Update(context.Context, string, usecase.JobInput) error {
	return m.updateErr
}

func newJobsApp(uc usecase.JobUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	h := NewJobsHandler(uc)
	app.Get("/api/jobs", h.List)
	app.Get("/api/jobs/:id", h.Detail)
	app.Post("/api/jobs", h.Create)
	app.Put("/api/jobs/:id", h.Update)

	return app
}

const validJobBody = `{
	"companyName": "Acme",
	"position": "Backend Engineer",
	"monthlySalary": "45000",
	"jobType": "Full-time",
	"workingMode": "remote",
	"jobDescription": "Build services",
	"aboutCompany": "We make everything",
	"skills": "Go, SQL, Docker",
	"noOfEmployees": "51-200"
}`

func TestJobsHandler_CreateSuccess(t *testing.T) {
	uc := &mockJobUsecase{}
	app := newJobsApp(uc)

	res := postJSON(t, app, "/api/jobs", validJobBody)
	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}
	if msg := decodeBody(t, res)["message"]; msg != "Job added successfully" {
		t.Fatalf("unexpected message: %v", msg)
	}

	// Quoted salary string is coerced to a number.
	if uc.createdIn.MonthlySalary != 45000 {
		t.Fatalf("expected coerced salary 45000, got %v", uc.createdIn.MonthlySalary)
	}
}

func TestJobsHandler_CreateMissingField(t *testing.T) {
	uc := &mockJobUsecase{createErr: job.ErrMissingFields}
	app := newJobsApp(uc)

	res := postJSON(t, app, "/api/jobs", `{"companyName":"Acme"}`)
	defer res.Body.Close()

	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", res.StatusCode)
	}
	if msg := decodeBody(t, res)["message"]; msg != "All required fields are not provided" {
		t.Fatalf("unexpected message: %v", msg)
	}
}

func TestJobsHandler_ListProjection(t *testing.T) {
	id := uuid.New()
	uc := &mockJobUsecase{listItems: []job.Listing{{
		ID:            id,
		Position:      "Backend Engineer",
		NoOfEmployees: "51-200",
		MonthlySalary: 45000,
		JobType:       job.JobTypeFullTime,
		WorkingMode:   "remote",
		Skills:        []string{"Go", "SQL"},
	}}}
	app := newJobsApp(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs?filterBySkills=Go,%20SQL", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	if len(uc.gotSkills) != 2 || uc.gotSkills[0] != "Go" || uc.gotSkills[1] != "SQL" {
		t.Fatalf("expected trimmed filter [Go SQL], got %v", uc.gotSkills)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var items []map[string]any
	if err := json.Unmarshal(b, &items); err != nil {
		t.Fatalf("expected a bare array, got %q: %v", b, err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	// The projection must not leak descriptive fields.
	for _, forbidden := range []string{"jobDescription", "aboutCompany", "internshipDuration", "createdOn"} {
		if _, ok := items[0][forbidden]; ok {
			t.Fatalf("projection leaked %q", forbidden)
		}
	}
	if items[0]["position"] != "Backend Engineer" {
		t.Fatalf("unexpected item: %v", items[0])
	}
}

func TestJobsHandler_DetailNotFoundCollapsesTo500(t *testing.T) {
	uc := &mockJobUsecase{detailErr: job.ErrNotFound}
	app := newJobsApp(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/"+uuid.NewString(), nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", res.StatusCode)
	}
	if msg := decodeBody(t, res)["message"]; msg != "Error fetching the job" {
		t.Fatalf("unexpected message: %v", msg)
	}
}

func TestJobsHandler_DetailSuccess(t *testing.T) {
	id := uuid.New()
	uc := &mockJobUsecase{detailJob: job.Job{
		ID:             id,
		CompanyName:    "Acme",
		Position:       "Backend Engineer",
		MonthlySalary:  45000,
		JobType:        job.JobTypeFullTime,
		WorkingMode:    "remote",
		JobDescription: "Build services",
		AboutCompany:   "We make everything",
		Skills:         []string{"Go"},
		NoOfEmployees:  "51-200",
		CreatedOn:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}}
	app := newJobsApp(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/"+id.String(), nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body := decodeBody(t, res)
	if body["jobDescription"] != "Build services" {
		t.Fatalf("detail must include descriptive fields: %v", body)
	}
}

func TestJobsHandler_UpdateUnknownID(t *testing.T) {
	uc := &mockJobUsecase{updateErr: job.ErrNotFound}
	app := newJobsApp(uc)

	req := httptest.NewRequest(http.MethodPut, "/api/jobs/"+uuid.NewString(), strings.NewReader(validJobBody))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", res.StatusCode)
	}
	if msg := decodeBody(t, res)["message"]; msg != "Error updating the job" {
		t.Fatalf("unexpected message: %v", msg)
	}
}

func TestJobsHandler_UpdateSuccess(t *testing.T) {
	uc := &mockJobUsecase{}
	app := newJobsApp(uc)

	req := httptest.NewRequest(http.MethodPut, "/api/jobs/"+uuid.NewString(), strings.NewReader(validJobBody))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if msg := decodeBody(t, res)["message"]; msg != "Job updated successfully" {
		t.Fatalf("unexpected message: %v", msg)
	}
}
