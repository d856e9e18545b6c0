package model

import (
	"time"

	"github.com/moraputalapraveen/hireme4u-backend/pkg"
)

type Category string

const (
	CategoryIT       Category = "IT"
	CategoryNonIT    Category = "Non-IT"
	CategoryRemote   Category = "Remote"
	CategoryFreshers Category = "Freshers"
)

type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeRemote     JobType = "Remote"
	JobTypeInternship JobType = "Internship"
)

type ExperienceLevel string

const (
	ExperienceFresher     ExperienceLevel = "Fresher"
	ExperienceZeroToOne   ExperienceLevel = "0-1 years"
	ExperienceOneToThree  ExperienceLevel = "1-3 years"
	ExperienceThreeToFive ExperienceLevel = "3-5 years"
	ExperienceFivePlus    ExperienceLevel = "5+ years"
)

type Job struct {
	ID                 int64           `json:"id" db:"id"`
	Title              string          `json:"title" db:"title"`
	Slug               string          `json:"slug" db:"slug"`
	Company            string          `json:"company" db:"company"`
	Location           string          `json:"location" db:"location"`
	Description        string          `json:"description" db:"description"`
	Requirements       []string        `json:"requirements" db:"requirements"`
	Salary             *string         `json:"salary,omitempty" db:"salary"`
	ApplyLink          string          `json:"applyLink" db:"apply_link"`
	Category           Category        `json:"category" db:"category"`
	JobType            JobType         `json:"jobType" db:"job_type"`
	ExperienceLevel    ExperienceLevel `json:"experienceLevel" db:"experience_level"`
	CompanyDescription *string         `json:"companyDescription,omitempty" db:"company_description"`
	IsFresherFriendly  bool            `json:"isFresherFriendly" db:"is_fresher_friendly"`
	PostedDate         time.Time       `json:"postedDate" db:"posted_date"`
	CreatedAt          time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time       `json:"updatedAt" db:"updated_at"`
}

// Normalize enforces the write-path invariants on every construction path:
// isFresherFriendly is always recomputed from experienceLevel (never trusted
// from the caller), enum fields fall back to their defaults, and a slug is
// derived from the title when none is set. The slug is set exactly once and
// never recomputed afterwards.
func (j *Job) Normalize(withRandomSuffix bool) {
	if j.Category == "" {
		j.Category = CategoryIT
	}
	if j.JobType == "" {
		j.JobType = JobTypeFullTime
	}
	if j.ExperienceLevel == "" {
		j.ExperienceLevel = ExperienceFresher
	}
	j.IsFresherFriendly = j.ExperienceLevel == ExperienceFresher || j.ExperienceLevel == ExperienceZeroToOne
	if j.Slug == "" {
		if withRandomSuffix {
			j.Slug = pkg.GenerateUniqueSlugWithRand(j.Title)
		} else {
			j.Slug = pkg.GenerateUniqueSlug(j.Title)
		}
	}
	if j.PostedDate.IsZero() {
		j.PostedDate = time.Now()
	}
}

type CreateJobRequest struct {
	Title              string          `json:"title" binding:"required"`
	Slug               string          `json:"slug"`
	Company            string          `json:"company" binding:"required"`
	Location           string          `json:"location" binding:"required"`
	Description        string          `json:"description" binding:"required"`
	Requirements       []string        `json:"requirements"`
	Salary             *string         `json:"salary"`
	ApplyLink          string          `json:"applyLink" binding:"required"`
	Category           Category        `json:"category"`
	JobType            JobType         `json:"jobType"`
	ExperienceLevel    ExperienceLevel `json:"experienceLevel"`
	CompanyDescription *string         `json:"companyDescription"`
	// Ignored on input; always recomputed from ExperienceLevel.
	IsFresherFriendly bool `json:"isFresherFriendly"`
}

// Job builds the storable entity from the request and normalizes it.
func (r *CreateJobRequest) Job() *Job {
	j := &Job{
		Title:              r.Title,
		Slug:               r.Slug,
		Company:            r.Company,
		Location:           r.Location,
		Description:        r.Description,
		Requirements:       r.Requirements,
		Salary:             r.Salary,
		ApplyLink:          r.ApplyLink,
		Category:           r.Category,
		JobType:            r.JobType,
		ExperienceLevel:    r.ExperienceLevel,
		CompanyDescription: r.CompanyDescription,
	}
	j.Normalize(false)
	return j
}

// ListJobsQuery holds the recognized listing parameters. Unknown or
// malformed optional values never fail the request; they degrade to
// "no filter" during query building.
type ListJobsQuery struct {
	Search            string `form:"search"`
	Category          string `form:"category"`
	JobType           string `form:"jobType"`
	ExperienceLevel   string `form:"experienceLevel"`
	Location          string `form:"location"`
	DatePosted        string `form:"datePosted"`
	IsFresherFriendly string `form:"isFresherFriendly"`
	SortBy            string `form:"sortBy,default=postedDate"`
	SortOrder         string `form:"sortOrder,default=desc"`
	Page              int    `form:"page,default=1"`
	Limit             int    `form:"limit,default=10"`
}

type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// FilterOptions lists the distinct values present across the entire
// collection, regardless of the caller's current filter selection.
type FilterOptions struct {
	Categories       []string `json:"categories"`
	JobTypes         []string `json:"jobTypes"`
	ExperienceLevels []string `json:"experienceLevels"`
	Locations        []string `json:"locations"`
}
