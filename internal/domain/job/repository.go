package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

// Filter narrows the list operation. An empty Skills slice means no
// filtering; otherwise a job matches when its skills intersect the
// filter set (any match).
type Filter struct {
	Skills []string
}

type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	Update(ctx context.Context, j Job) error
	List(ctx context.Context, f Filter) ([]Listing, error)
}
