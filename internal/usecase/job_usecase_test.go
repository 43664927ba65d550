package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"job-board/internal/domain/job"

	"github.com/google/uuid"
)

type memJobRepo struct {
	jobs     map[uuid.UUID]job.Job
	listErr  error
	writeErr error

	lastFilter job.Filter
	listCalls  int
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: map[uuid.UUID]job.Job{}}
}

func (m *memJobRepo) Create(_ context.Context, j job.Job) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.jobs[j.ID] = j
	return nil
}

func (m *memJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := m.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (m *memJobRepo) Update(_ context.Context, j job.Job) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	existing, ok := m.jobs[j.ID]
	if !ok {
		return job.ErrNotFound
	}
	j.CreatedOn = existing.CreatedOn
	m.jobs[j.ID] = j
	return nil
}

func (m *memJobRepo) List(_ context.Context, f job.Filter) ([]job.Listing, error) {
	m.listCalls++
	m.lastFilter = f
	if m.listErr != nil {
		return nil, m.listErr
	}

	out := make([]job.Listing, 0, len(m.jobs))
	for _, j := range m.jobs {
		if len(f.Skills) > 0 && !overlaps(j.Skills, f.Skills) {
			continue
		}
		out = append(out, job.Listing{
			ID:            j.ID,
			Position:      j.Position,
			NoOfEmployees: j.NoOfEmployees,
			MonthlySalary: j.MonthlySalary,
			Location:      j.Location,
			JobType:       j.JobType,
			WorkingMode:   j.WorkingMode,
			Logo:          j.Logo,
			Skills:        j.Skills,
		})
	}
	return out, nil
}

func overlaps(a, b []string) bool {
	set := map[string]struct{}{}
	for _, s := range a {
		set[s] = struct{}{}
	}
	for _, s := range b {
		if _, ok := set[s]; ok {
			return true
		}
	}
	return false
}

type stubCache struct {
	invalidated int
}

func (c *stubCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	return false, nil
}

func (c *stubCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	return nil
}

func (c *stubCache) InvalidateListings(_ context.Context) error {
	c.invalidated++
	return nil
}

// memCache actually stores entries, so tests can observe which key a
// listing was cached under.
type memCache struct {
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *memCache) InvalidateListings(_ context.Context) error {
	c.data = map[string][]byte{}
	return nil
}

func validInput() JobInput {
	return JobInput{
		CompanyName:    "Acme",
		Position:       "Backend Engineer",
		MonthlySalary:  45000,
		JobType:        job.JobTypeFullTime,
		WorkingMode:    "remote",
		JobDescription: "Build services",
		AboutCompany:   "We make everything",
		Skills:         "Go, SQL, Docker",
		NoOfEmployees:  "51-200",
	}
}

func TestJobService_CreateSplitsSkills(t *testing.T) {
	repo := newMemJobRepo()
	svc := NewJobService(repo, nil, nil)

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := []string{"Go", "SQL", "Docker"}
	if !reflect.DeepEqual(created.Skills, want) {
		t.Fatalf("expected %v, got %v", want, created.Skills)
	}
	if created.CreatedOn.IsZero() {
		t.Fatalf("expected CreatedOn to be set")
	}
	if len(repo.jobs) != 1 {
		t.Fatalf("expected one stored job")
	}
}

func TestJobService_CreateMissingFieldWritesNothing(t *testing.T) {
	repo := newMemJobRepo()
	svc := NewJobService(repo, nil, nil)

	in := validInput()
	in.Position = ""

	_, err := svc.Create(context.Background(), in)
	if !errors.Is(err, job.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if len(repo.jobs) != 0 {
		t.Fatalf("validation failure must not write")
	}
}

func TestJobService_CreateOfficeRequiresLocation(t *testing.T) {
	repo := newMemJobRepo()
	svc := NewJobService(repo, nil, nil)

	in := validInput()
	in.WorkingMode = job.WorkingModeOffice

	if _, err := svc.Create(context.Background(), in); !errors.Is(err, job.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}

	in.Location = "Bangalore"
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestJobService_ListFiltersBySkills(t *testing.T) {
	repo := newMemJobRepo()
	svc := NewJobService(repo, nil, nil)

	goJob := validInput()
	reactJob := validInput()
	reactJob.Position = "Frontend Engineer"
	reactJob.Skills = "React, CSS"

	if _, err := svc.Create(context.Background(), goJob); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := svc.Create(context.Background(), reactJob); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	items, err := svc.List(context.Background(), []string{" Go ", ""})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 match, got %d", len(items))
	}
	if items[0].Position != "Backend Engineer" {
		t.Fatalf("unexpected match: %+v", items[0])
	}
	if !reflect.DeepEqual(repo.lastFilter.Skills, []string{"Go"}) {
		t.Fatalf("expected trimmed filter, got %v", repo.lastFilter.Skills)
	}

	all, err := svc.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected all jobs without filter, got %d", len(all))
	}
}

func TestJobService_DetailMalformedAndUnknownID(t *testing.T) {
	svc := NewJobService(newMemJobRepo(), nil, nil)

	if _, err := svc.Detail(context.Background(), "not-a-uuid"); !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for malformed id, got %v", err)
	}
	if _, err := svc.Detail(context.Background(), uuid.NewString()); !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestJobService_UpdateUnknownIDLeavesStateUnchanged(t *testing.T) {
	repo := newMemJobRepo()
	svc := NewJobService(repo, nil, nil)

	err := svc.Update(context.Background(), uuid.NewString(), validInput())
	if !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.jobs) != 0 {
		t.Fatalf("failed update must not create a record")
	}
}

func TestJobService_UpdatePreservesCreatedOn(t *testing.T) {
	repo := newMemJobRepo()
	svc := NewJobService(repo, nil, nil)

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	in := validInput()
	in.Position = "Staff Engineer"
	if err := svc.Update(context.Background(), created.ID.String(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	updated := repo.jobs[created.ID]
	if updated.Position != "Staff Engineer" {
		t.Fatalf("update did not apply: %+v", updated)
	}
	if !updated.CreatedOn.Equal(created.CreatedOn) {
		t.Fatalf("CreatedOn must survive updates")
	}
	if updated.ID != created.ID {
		t.Fatalf("id must survive updates")
	}
}

func TestJobService_MutationsInvalidateCache(t *testing.T) {
	repo := newMemJobRepo()
	cache := &stubCache{}
	svc := NewJobService(repo, cache, nil)

	created, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected invalidation after create, got %d", cache.invalidated)
	}

	if err := svc.Update(context.Background(), created.ID.String(), validInput()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.invalidated != 2 {
		t.Fatalf("expected invalidation after update, got %d", cache.invalidated)
	}
}

// The skill filter is case-sensitive, so case-variant filters must not
// share a cache entry.
func TestJobService_ListCacheKeyIsCaseSensitive(t *testing.T) {
	repo := newMemJobRepo()
	cache := newMemCache()
	svc := NewJobService(repo, cache, nil)

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	upper, err := svc.List(context.Background(), []string{"Go"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(upper) != 1 {
		t.Fatalf(`expected 1 match for "Go", got %d`, len(upper))
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected 1 repo call, got %d", repo.listCalls)
	}

	lower, err := svc.List(context.Background(), []string{"go"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.listCalls != 2 {
		t.Fatalf(`filter "go" must miss the "Go" cache entry and hit storage, got %d repo calls`, repo.listCalls)
	}
	if len(lower) != 0 {
		t.Fatalf(`expected 0 matches for "go", got %d`, len(lower))
	}

	// Identical filter reuses its own entry.
	if _, err := svc.List(context.Background(), []string{"Go"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.listCalls != 2 {
		t.Fatalf("expected repeated filter to be served from cache, got %d repo calls", repo.listCalls)
	}
}

func TestJobService_ListStorageFailure(t *testing.T) {
	repo := newMemJobRepo()
	repo.listErr = errors.New("connection refused")
	svc := NewJobService(repo, nil, nil)

	if _, err := svc.List(context.Background(), nil); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
