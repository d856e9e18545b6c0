package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/moraputalapraveen/hireme4u-backend/pkg/model"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const defaultApplyLink = "https://example.com/apply"

// JobInserter is the slice of the job store that bulk import needs.
type JobInserter interface {
	Create(ctx context.Context, j *model.Job) error
}

// Service turns CSV rows into job postings. A bad row is recorded and
// skipped; it never aborts the batch.
type Service struct {
	jobs   JobInserter
	logger *zap.Logger
}

func NewService(jobs JobInserter, logger *zap.Logger) *Service {
	return &Service{jobs: jobs, logger: logger}
}

// Result summarizes a bulk import run. Errors are ordered by original row
// position; row numbering starts at 2 because row 1 is the header.
type Result struct {
	Processed int
	Created   int
	Errors    []string
	Jobs      []model.Job
}

// ImportCSV reads header-keyed rows from r and inserts one posting per
// valid row.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return &Result{Errors: []string{}, Jobs: []model.Job{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	result := &Result{Errors: []string{}, Jobs: []model.Job{}}
	rowNumber := 1

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNumber++
		result.Processed++
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNumber, err))
			continue
		}

		row := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(record) {
				row[h] = record[i]
			}
		}

		if row["title"] == "" || row["company"] == "" || row["location"] == "" || row["description"] == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Missing required fields", rowNumber))
			continue
		}

		job := buildJob(row)
		if err := s.jobs.Create(ctx, job); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNumber, err))
			continue
		}
		result.Created++
		result.Jobs = append(result.Jobs, *job)
	}

	s.logger.Sugar().Infow("bulk import finished",
		"processed", result.Processed, "created", result.Created, "errors", len(result.Errors))
	return result, nil
}

// buildJob applies the per-row defaults and normalizes the posting. The
// slug gets a random disambiguator on top of the timestamp because many
// rows can land on the same millisecond.
func buildJob(row map[string]string) *model.Job {
	var salary *string
	if row["salary"] != "" {
		v := row["salary"]
		salary = &v
	}

	applyLink := row["applyLink"]
	if applyLink == "" {
		applyLink = defaultApplyLink
	}

	companyDescription := row["companyDescription"]
	if companyDescription == "" {
		companyDescription = fmt.Sprintf("%s is hiring through HireMe4U", row["company"])
	}

	j := &model.Job{
		Title:              row["title"],
		Company:            row["company"],
		Location:           row["location"],
		Description:        row["description"],
		Requirements:       ParseRequirements(row["requirements"]),
		Salary:             salary,
		ApplyLink:          applyLink,
		Category:           model.Category(row["category"]),
		JobType:            model.JobType(row["jobType"]),
		ExperienceLevel:    model.ExperienceLevel(row["experienceLevel"]),
		CompanyDescription: &companyDescription,
	}
	j.Normalize(true)
	return j
}

// ParseRequirements splits a raw requirements cell: newline-separated if it
// contains a newline, else comma-separated if it contains a comma, else the
// whole value is a single requirement. Entries are trimmed and empties
// dropped.
func ParseRequirements(raw string) []string {
	if raw == "" {
		return []string{}
	}

	var parts []string
	switch {
	case strings.Contains(raw, "\n"):
		parts = strings.Split(raw, "\n")
	case strings.Contains(raw, ","):
		parts = strings.Split(raw, ",")
	default:
		parts = []string{raw}
	}

	return lo.FilterMap(parts, func(p string, _ int) (string, bool) {
		p = strings.TrimSpace(p)
		return p, p != ""
	})
}
