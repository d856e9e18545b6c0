package handler

import (
	"context"
	"io"
	"time"

	"github.com/moraputalapraveen/hireme4u-backend/internal/auth"
	"github.com/moraputalapraveen/hireme4u-backend/internal/ingest"
	"github.com/moraputalapraveen/hireme4u-backend/pkg/model"
	"go.uber.org/zap"
)

// Store interfaces cover exactly what the handlers call, so tests can
// substitute fakes.

type JobStore interface {
	Create(ctx context.Context, j *model.Job) error
	List(ctx context.Context, q *model.ListJobsQuery) ([]model.Job, *model.Pagination, error)
	GetBySlug(ctx context.Context, slug string) (*model.Job, error)
	FilterOptions(ctx context.Context) (*model.FilterOptions, error)
}

type AdminStore interface {
	Create(ctx context.Context, a *model.Admin) error
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
}

type VisitorStore interface {
	Upsert(ctx context.Context, v *model.Visitor) error
	Stats(ctx context.Context, since time.Time) (*model.VisitorStats, error)
	Recent(ctx context.Context, limit int) ([]model.Visitor, error)
}

type AnalyticsStore interface {
	Insert(ctx context.Context, e *model.AnalyticsEvent) error
	Stats(ctx context.Context) (*model.AnalyticsStats, error)
	Detailed(ctx context.Context, start, end *time.Time) ([]model.AnalyticsEvent, error)
}

// FacetCache is the optional facet-options cache; a nil implementation
// means every request hits the store.
type FacetCache interface {
	Get(ctx context.Context) *model.FilterOptions
	Set(ctx context.Context, opts *model.FilterOptions)
	Invalidate(ctx context.Context)
}

type Importer interface {
	ImportCSV(ctx context.Context, r io.Reader) (*ingest.Result, error)
}

type Handler struct {
	Logger     *zap.Logger
	Jobs       JobStore
	Admins     AdminStore
	Visitors   VisitorStore
	Analytics  AnalyticsStore
	TokenMaker *auth.JWTMaker
	Facets     FacetCache
	Importer   Importer
	UploadDir  string
}

// filterOptions serves facets from the cache when possible, falling back to
// the store. The facets always reflect the entire collection.
func (h *Handler) filterOptions(ctx context.Context) (*model.FilterOptions, error) {
	if h.Facets != nil {
		if opts := h.Facets.Get(ctx); opts != nil {
			return opts, nil
		}
	}
	opts, err := h.Jobs.FilterOptions(ctx)
	if err != nil {
		return nil, err
	}
	if h.Facets != nil {
		h.Facets.Set(ctx, opts)
	}
	return opts, nil
}

func (h *Handler) invalidateFacets(ctx context.Context) {
	if h.Facets != nil {
		h.Facets.Invalidate(ctx)
	}
}
