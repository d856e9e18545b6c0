package pkg

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_GenerateSlug_CollapsesPunctuation(t *testing.T) {
	assert.Equal(t, "senior-react-dev", GenerateSlug("Senior  React Dev!!"))
	assert.Equal(t, "c-developer-remote", GenerateSlug("C++ Developer (Remote)"))
	assert.Equal(t, "job", GenerateSlug("!!!"))
}

func Test_GenerateUniqueSlug_AppendsTimestampSuffix(t *testing.T) {
	slug := GenerateUniqueSlug("Senior  React Dev!!")

	assert.Regexp(t, regexp.MustCompile(`^senior-react-dev-\d+$`), slug)
	assert.False(t, strings.HasPrefix(slug, "-"))
	assert.False(t, strings.HasSuffix(slug, "-"))
}

func Test_GenerateUniqueSlugWithRand_KeepsShape(t *testing.T) {
	slug := GenerateUniqueSlugWithRand("Data Engineer")
	assert.Regexp(t, regexp.MustCompile(`^data-engineer-\d+$`), slug)
}
