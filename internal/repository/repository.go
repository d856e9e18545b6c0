package repository

import "github.com/jackc/pgx/v5/pgxpool"

type Repository struct {
	Jobs      *JobRepository
	Admins    *AdminRepository
	Visitors  *VisitorRepository
	Analytics *AnalyticsRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Jobs:      &JobRepository{db: db},
		Admins:    &AdminRepository{db: db},
		Visitors:  &VisitorRepository{db: db},
		Analytics: &AnalyticsRepository{db: db},
	}
}
