package ingest

import (
	"bytes"
	"encoding/csv"
)

// CSVHeader is the fixed column order for bulk import files.
var CSVHeader = []string{
	"title", "company", "location", "description",
	"requirements", "salary", "applyLink", "category",
	"jobType", "experienceLevel", "companyDescription",
}

var sampleRow = []string{
	"React Developer",
	"TechCorp",
	"Bangalore",
	"We are looking for a React Developer...",
	"React experience\nJavaScript\nREST APIs",
	"₹4-8 LPA",
	"https://example.com/apply",
	"IT",
	"Full-time",
	"0-1 years",
	"TechCorp is a leading software company",
}

// CSVTemplate renders the downloadable template: the header plus one sample
// row.
func CSVTemplate() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(CSVHeader)
	_ = w.Write(sampleRow)
	w.Flush()
	return buf.Bytes()
}
