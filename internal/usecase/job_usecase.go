package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"job-board/internal/domain/job"
	"job-board/internal/ws"

	"github.com/google/uuid"
)

// JobInput is the wire-level posting payload: skills comma-delimited,
// salary already coerced to a number by the transport layer.
type JobInput struct {
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

type JobUsecase interface {
	Create(ctx context.Context, in JobInput) (job.Job, error)
	List(ctx context.Context, filterBySkills []string) ([]job.Listing, error)
	Detail(ctx context.Context, id string) (job.Job, error)
	Update(ctx context.Context, id string, in JobInput) error
}

type JobService struct {
	jobs   job.Repository
	cache  ListingCache
	logger *log.Logger

	now func() time.Time
}

func NewJobService(jobs job.Repository, cache ListingCache, logger *log.Logger) *JobService {
	if logger == nil {
		logger = log.Default()
	}
	return &JobService{jobs: jobs, cache: cache, logger: logger, now: time.Now}
}

func (s *JobService) Create(ctx context.Context, in JobInput) (job.Job, error) {
	if err := job.ValidatePosting(toPosting(in)); err != nil {
		return job.Job{}, err
	}

	j := job.Job{
		ID:                 uuid.New(),
		CompanyName:        in.CompanyName,
		Position:           in.Position,
		MonthlySalary:      in.MonthlySalary,
		JobType:            in.JobType,
		InternshipDuration: in.InternshipDuration,
		WorkingMode:        in.WorkingMode,
		JobDescription:     in.JobDescription,
		AboutCompany:       in.AboutCompany,
		Skills:             job.SplitSkills(in.Skills),
		NoOfEmployees:      in.NoOfEmployees,
		Logo:               in.Logo,
		Location:           in.Location,
		CreatedOn:          s.now().UTC(),
	}

	if err := s.jobs.Create(ctx, j); err != nil {
		s.logger.Printf("[Jobs] create failed: %v", err)
		return job.Job{}, ErrInternal
	}

	s.invalidateListings(ctx)
	ws.NotifyJobPosted(j.ID, j.Position, j.CompanyName)

	return j, nil
}

func (s *JobService) List(ctx context.Context, filterBySkills []string) ([]job.Listing, error) {
	skills := make([]string, 0, len(filterBySkills))
	for _, sk := range filterBySkills {
		sk = strings.TrimSpace(sk)
		if sk == "" {
			continue
		}
		skills = append(skills, sk)
	}

	key := listingCacheKey(skills)
	if s.cache != nil {
		var cached []job.Listing
		hit, err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	listings, err := s.jobs.List(ctx, job.Filter{Skills: skills})
	if err != nil {
		s.logger.Printf("[Jobs] list failed: %v", err)
		return nil, ErrInternal
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, listings, 0)
	}
	return listings, nil
}

// Detail treats a malformed id the same as an unknown one.
func (s *JobService) Detail(ctx context.Context, id string) (job.Job, error) {
	jobID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return job.Job{}, job.ErrNotFound
	}

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		s.logger.Printf("[Jobs] fetch failed: %v", err)
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (s *JobService) Update(ctx context.Context, id string, in JobInput) error {
	if err := job.ValidatePosting(toPosting(in)); err != nil {
		return err
	}

	jobID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return job.ErrNotFound
	}

	j := job.Job{
		ID:                 jobID,
		CompanyName:        in.CompanyName,
		Position:           in.Position,
		MonthlySalary:      in.MonthlySalary,
		JobType:            in.JobType,
		InternshipDuration: in.InternshipDuration,
		WorkingMode:        in.WorkingMode,
		JobDescription:     in.JobDescription,
		AboutCompany:       in.AboutCompany,
		Skills:             job.SplitSkills(in.Skills),
		NoOfEmployees:      in.NoOfEmployees,
		Logo:               in.Logo,
		Location:           in.Location,
	}

	if err := s.jobs.Update(ctx, j); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.ErrNotFound
		}
		s.logger.Printf("[Jobs] update failed: %v", err)
		return ErrInternal
	}

	s.invalidateListings(ctx)
	ws.NotifyJobPosted(j.ID, j.Position, j.CompanyName)

	return nil
}

func (s *JobService) invalidateListings(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateListings(ctx); err != nil {
		s.logger.Printf("[Jobs] cache invalidation failed: %v", err)
	}
}

func toPosting(in JobInput) job.Posting {
	return job.Posting{
		CompanyName:        in.CompanyName,
		Position:           in.Position,
		MonthlySalary:      in.MonthlySalary,
		JobType:            in.JobType,
		InternshipDuration: in.InternshipDuration,
		WorkingMode:        in.WorkingMode,
		JobDescription:     in.JobDescription,
		AboutCompany:       in.AboutCompany,
		Skills:             in.Skills,
		NoOfEmployees:      in.NoOfEmployees,
		Logo:               in.Logo,
		Location:           in.Location,
	}
}
