package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/moraputalapraveen/hireme4u-backend/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeInserter struct {
	created []*model.Job
	failOn  string // title that triggers an insert error
}

func (f *fakeInserter) Create(_ context.Context, j *model.Job) error {
	if f.failOn != "" && j.Title == f.failOn {
		return errors.New("insert failed")
	}
	f.created = append(f.created, j)
	return nil
}

func importString(t *testing.T, inserter *fakeInserter, csv string) *Result {
	t.Helper()
	svc := NewService(inserter, zap.NewNop())
	result, err := svc.ImportCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	return result
}

func Test_ImportCSV_CreatesValidRows(t *testing.T) {
	csv := "title,company,location,description,requirements,salary,applyLink,category,jobType,experienceLevel,companyDescription\n" +
		"Go Developer,Acme,Pune,Build services,\"Go, SQL\",₹10 LPA,https://acme.dev/apply,IT,Full-time,1-3 years,Acme builds things\n" +
		"QA Engineer,Acme,Pune,Test services,,,,,,,\n"

	ins := &fakeInserter{}
	result := importString(t, ins, csv)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 2, result.Created)
	assert.Empty(t, result.Errors)
	require.Len(t, ins.created, 2)

	first := ins.created[0]
	assert.Equal(t, []string{"Go", "SQL"}, first.Requirements)
	assert.Equal(t, "₹10 LPA", *first.Salary)
	assert.False(t, first.IsFresherFriendly)
	assert.Regexp(t, `^go-developer-\d+$`, first.Slug)

	second := ins.created[1]
	assert.Nil(t, second.Salary)
	assert.Equal(t, "https://example.com/apply", second.ApplyLink)
	assert.Equal(t, model.CategoryIT, second.Category)
	assert.Equal(t, model.JobTypeFullTime, second.JobType)
	assert.Equal(t, model.ExperienceFresher, second.ExperienceLevel)
	assert.True(t, second.IsFresherFriendly)
	assert.Equal(t, "Acme is hiring through HireMe4U", *second.CompanyDescription)
	assert.Empty(t, second.Requirements)
}

func Test_ImportCSV_MissingRequiredFieldSkipsOnlyThatRow(t *testing.T) {
	csv := "title,company,location,description\n" +
		"Dev One,Acme,Pune,desc\n" +
		",Acme,Pune,desc\n" +
		"Dev Three,Acme,Pune,desc\n"

	ins := &fakeInserter{}
	result := importString(t, ins, csv)

	assert.Equal(t, 3, result.Processed)
	assert.Equal(t, 2, result.Created)
	// header is row 1, so the bad row is row 3
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Row 3: Missing required fields", result.Errors[0])
	assert.Len(t, result.Jobs, 2)
}

func Test_ImportCSV_InsertFailureDoesNotAbortBatch(t *testing.T) {
	csv := "title,company,location,description\n" +
		"Dev One,Acme,Pune,desc\n" +
		"Poison,Acme,Pune,desc\n" +
		"Dev Three,Acme,Pune,desc\n"

	ins := &fakeInserter{failOn: "Poison"}
	result := importString(t, ins, csv)

	assert.Equal(t, 3, result.Processed)
	assert.Equal(t, 2, result.Created)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Row 3:")
	assert.Contains(t, result.Errors[0], "insert failed")
}

func Test_ImportCSV_EmptyFile(t *testing.T) {
	result := importString(t, &fakeInserter{}, "")
	assert.Zero(t, result.Processed)
	assert.Zero(t, result.Created)
	assert.Empty(t, result.Errors)
}

func Test_ParseRequirements(t *testing.T) {
	assert.Equal(t, []string{"React", "JavaScript", "REST"}, ParseRequirements("React\nJavaScript\nREST"))
	assert.Equal(t, []string{"React", "JavaScript"}, ParseRequirements("React, JavaScript"))
	assert.Equal(t, []string{"5 years experience, minimum"}, ParseRequirements("5 years experience, minimum\n"))
	assert.Equal(t, []string{"Single requirement"}, ParseRequirements("  Single requirement  "))
	assert.Empty(t, ParseRequirements(""))
	assert.Empty(t, ParseRequirements("\n\n"))
}
