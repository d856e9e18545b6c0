package handler

import (
	"context"
	"time"

	"github.com/moraputalapraveen/hireme4u-backend/internal/repository"
	"github.com/moraputalapraveen/hireme4u-backend/pkg/model"
)

type fakeJobStore struct {
	jobs       []model.Job
	pagination *model.Pagination
	options    *model.FilterOptions
	bySlug     map[string]*model.Job
	err        error

	created    []*model.Job
	lastQuery  *model.ListJobsQuery
	facetCalls int
}

func (f *fakeJobStore) Create(_ context.Context, j *model.Job) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, j)
	return nil
}

func (f *fakeJobStore) List(_ context.Context, q *model.ListJobsQuery) ([]model.Job, *model.Pagination, error) {
	f.lastQuery = q
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.jobs, f.pagination, nil
}

func (f *fakeJobStore) GetBySlug(_ context.Context, slug string) (*model.Job, error) {
	if j, ok := f.bySlug[slug]; ok {
		return j, nil
	}
	return nil, repository.ErrJobNotFound
}

func (f *fakeJobStore) FilterOptions(context.Context) (*model.FilterOptions, error) {
	f.facetCalls++
	if f.err != nil {
		return nil, f.err
	}
	if f.options == nil {
		return &model.FilterOptions{}, nil
	}
	return f.options, nil
}

type fakeAdminStore struct {
	admins map[string]*model.Admin
}

func (f *fakeAdminStore) Create(_ context.Context, a *model.Admin) error {
	if _, ok := f.admins[a.Username]; ok {
		return repository.ErrAdminExists
	}
	if f.admins == nil {
		f.admins = map[string]*model.Admin{}
	}
	a.ID = "admin-" + a.Username
	f.admins[a.Username] = a
	return nil
}

func (f *fakeAdminStore) GetByUsername(_ context.Context, username string) (*model.Admin, error) {
	if a, ok := f.admins[username]; ok {
		return a, nil
	}
	return nil, repository.ErrAdminNotFound
}

type fakeVisitorStore struct {
	upserts []*model.Visitor
	stats   *model.VisitorStats
	recent  []model.Visitor
	err     error
}

func (f *fakeVisitorStore) Upsert(_ context.Context, v *model.Visitor) error {
	if f.err != nil {
		return f.err
	}
	f.upserts = append(f.upserts, v)
	return nil
}

func (f *fakeVisitorStore) Stats(context.Context, time.Time) (*model.VisitorStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.stats == nil {
		return &model.VisitorStats{}, nil
	}
	return f.stats, nil
}

func (f *fakeVisitorStore) Recent(context.Context, int) ([]model.Visitor, error) {
	return f.recent, f.err
}

type fakeAnalyticsStore struct {
	events []*model.AnalyticsEvent
	stats  *model.AnalyticsStats
	err    error
}

func (f *fakeAnalyticsStore) Insert(_ context.Context, e *model.AnalyticsEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, e)
	return nil
}

func (f *fakeAnalyticsStore) Stats(context.Context) (*model.AnalyticsStats, error) {
	if f.stats == nil {
		return &model.AnalyticsStats{}, nil
	}
	return f.stats, f.err
}

func (f *fakeAnalyticsStore) Detailed(context.Context, *time.Time, *time.Time) ([]model.AnalyticsEvent, error) {
	return nil, f.err
}

type fakeFacetCache struct {
	cached      *model.FilterOptions
	sets        int
	invalidates int
}

func (f *fakeFacetCache) Get(context.Context) *model.FilterOptions { return f.cached }

func (f *fakeFacetCache) Set(_ context.Context, opts *model.FilterOptions) {
	f.sets++
	f.cached = opts
}

func (f *fakeFacetCache) Invalidate(context.Context) {
	f.invalidates++
	f.cached = nil
}
