package handler

import (
	"errors"
	"strings"

	"job-board/internal/delivery/http/dto"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/domain/job"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobUsecase
}

func NewJobsHandler(uc usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) Create(c fiber.Ctx) error {
	var req dto.JobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	if _, err := h.uc.Create(c.Context(), toJobInput(req)); err != nil {
		return mapJobError(err, "Error creating new job")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  fiber.StatusCreated,
		"message": "Job added successfully",
	})
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	skills := parseSkillsQuery(c.Query("filterBySkills"))

	items, err := h.uc.List(c.Context(), skills)
	if err != nil {
		return mapJobError(err, "Error fetching jobs")
	}

	out := make([]dto.JobListingResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.JobListingResponse{
			ID:            it.ID,
			Position:      it.Position,
			NoOfEmployees: it.NoOfEmployees,
			MonthlySalary: it.MonthlySalary,
			Location:      it.Location,
			JobType:       it.JobType,
			WorkingMode:   it.WorkingMode,
			Logo:          it.Logo,
			Skills:        it.Skills,
		})
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *JobsHandler) Detail(c fiber.Ctx) error {
	j, err := h.uc.Detail(c.Context(), c.Params("id"))
	if err != nil {
		return mapJobError(err, "Error fetching the job")
	}

	return c.Status(fiber.StatusOK).JSON(dto.JobResponse{
		ID:                 j.ID,
		CompanyName:        j.CompanyName,
		Position:           j.Position,
		MonthlySalary:      j.MonthlySalary,
		JobType:            j.JobType,
		InternshipDuration: j.InternshipDuration,
		WorkingMode:        j.WorkingMode,
		JobDescription:     j.JobDescription,
		AboutCompany:       j.AboutCompany,
		Skills:             j.Skills,
		NoOfEmployees:      j.NoOfEmployees,
		Logo:               j.Logo,
		Location:           j.Location,
		CreatedOn:          j.CreatedOn,
	})
}

func (h *JobsHandler) Update(c fiber.Ctx) error {
	var req dto.JobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	if err := h.uc.Update(c.Context(), c.Params("id"), toJobInput(req)); err != nil {
		return mapJobError(err, "Error updating the job")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "Job updated successfully",
	})
}

func toJobInput(req dto.JobRequest) usecase.JobInput {
	return usecase.JobInput{
		CompanyName:        req.CompanyName,
		Position:           req.Position,
		MonthlySalary:      float64(req.MonthlySalary),
		JobType:            req.JobType,
		InternshipDuration: req.InternshipDuration,
		WorkingMode:        req.WorkingMode,
		JobDescription:     req.JobDescription,
		AboutCompany:       req.AboutCompany,
		Skills:             req.Skills,
		NoOfEmployees:      req.NoOfEmployees,
		Logo:               req.Logo,
		Location:           req.Location,
	}
}

func parseSkillsQuery(s string) []string {
	if s == "" {
		return nil
	}
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

// mapJobError keeps the collapsed external contract: not-found and
// storage failures both surface as the operation's generic 500.
func mapJobError(err error, genericMessage string) error {
	switch {
	case errors.Is(err, job.ErrMissingFields):
		return middleware.NewAppError(fiber.StatusForbidden, "All required fields are not provided", err)
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusInternalServerError, genericMessage, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, genericMessage, err)
	}
}
