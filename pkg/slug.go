package pkg

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var nonAlnum = regexp.MustCompile("[^a-z0-9]+")

// GenerateSlug lowercases the title, collapses every run of non-alphanumeric
// characters into a single hyphen and trims leading/trailing hyphens.
func GenerateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = nonAlnum.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if slug == "" {
		return "job"
	}
	return slug
}

// GenerateUniqueSlug appends a millisecond timestamp as the uniqueness
// suffix. Collisions are not checked against existing records; uniqueness
// relies entirely on the suffix.
func GenerateUniqueSlug(title string) string {
	return GenerateSlug(title) + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// GenerateUniqueSlugWithRand adds a random disambiguator on top of the
// timestamp. Bulk import processes rows in a tight loop, so many slugs can
// land on the same millisecond.
func GenerateUniqueSlugWithRand(title string) string {
	return GenerateUniqueSlug(title) + strconv.Itoa(rand.Intn(1000))
}
