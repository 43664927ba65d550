package repository

import (
	"context"
	"database/sql"
	"errors"

	"job-board/internal/database"
	"job-board/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (
			id, company_name, position, monthly_salary, job_type,
			internship_duration, working_mode, job_description, about_company,
			skills, no_of_employees, logo, location, created_on
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		j.ID, j.CompanyName, j.Position, j.MonthlySalary, j.JobType,
		j.InternshipDuration, j.WorkingMode, j.JobDescription, j.AboutCompany,
		j.Skills, j.NoOfEmployees, j.Logo, j.Location, j.CreatedOn,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, company_name, position, monthly_salary, job_type,
			internship_duration, working_mode, job_description, about_company,
			skills, no_of_employees, logo, location, created_on
		 FROM jobs
		 WHERE id = $1`,
		id,
	)

	var j job.Job
	err := row.Scan(
		&j.ID, &j.CompanyName, &j.Position, &j.MonthlySalary, &j.JobType,
		&j.InternshipDuration, &j.WorkingMode, &j.JobDescription, &j.AboutCompany,
		&j.Skills, &j.NoOfEmployees, &j.Logo, &j.Location, &j.CreatedOn,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

// Update replaces every mutable field. The id and created_on columns are
// never touched.
func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE jobs SET
			company_name = $2, position = $3, monthly_salary = $4, job_type = $5,
			internship_duration = $6, working_mode = $7, job_description = $8,
			about_company = $9, skills = $10, no_of_employees = $11,
			logo = $12, location = $13
		 WHERE id = $1`,
		j.ID, j.CompanyName, j.Position, j.MonthlySalary, j.JobType,
		j.InternshipDuration, j.WorkingMode, j.JobDescription, j.AboutCompany,
		j.Skills, j.NoOfEmployees, j.Logo, j.Location,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return job.ErrNotFound
	}
	return nil
}

// List returns the nine-column projection, newest first. With a skills
// filter only jobs whose skills overlap the filter set are returned
// (any match, via the array-overlap operator).
func (r *PostgresJobRepository) List(ctx context.Context, f job.Filter) ([]job.Listing, error) {
	query := `SELECT id, position, no_of_employees, monthly_salary, location,
			job_type, working_mode, logo, skills
		 FROM jobs`
	args := []any{}
	if len(f.Skills) > 0 {
		query += ` WHERE skills && $1`
		args = append(args, f.Skills)
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Listing, 0)
	for rows.Next() {
		var l job.Listing
		err := rows.Scan(
			&l.ID, &l.Position, &l.NoOfEmployees, &l.MonthlySalary, &l.Location,
			&l.JobType, &l.WorkingMode, &l.Logo, &l.Skills,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
