// Package llm - extractor.go defines the schema-constrained extraction contract.
package llm

import "fmt"

// Field type hints understood by provider bindings.
const (
	FieldString      = "string"
	FieldInteger     = "integer"
	FieldStringArray = "[]string"
)

// ExtractionSchema defines the structure the provider is forced to produce.
// Provider bindings translate it into their native schema representation so
// the model always returns every required field, never free text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "ResumeAnalysis")
	Description string        // Short description of the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: FieldString, FieldInteger, FieldStringArray
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// ResumeAnalysisSchema returns the extraction schema for grading a resume
// against a job role. All seven fields are required so the provider can
// never return partial output.
func ResumeAnalysisSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:        "ResumeAnalysis",
		Description: "Structured evaluation of a resume against a specific job role.",
		Fields: []SchemaField{
			{
				Name:        "full_name",
				Type:        FieldString,
				Description: "The candidate's full name as written on the resume",
				Required:    true,
			},
			{
				Name:        "match_score",
				Type:        FieldInteger,
				Description: "Score from 0-100 indicating how well the resume matches the role",
				Required:    true,
			},
			{
				Name:        "summary",
				Type:        FieldString,
				Description: "Short professional summary of the candidate",
				Required:    true,
			},
			{
				Name:        "experience_highlights",
				Type:        FieldStringArray,
				Description: "Most relevant experience items; if none mentioned, return NA",
				Required:    true,
			},
			{
				Name:        "matching_skills",
				Type:        FieldStringArray,
				Description: "Skills on the resume that match the role; if none mentioned, return NA",
				Required:    true,
			},
			{
				Name:        "missing_skills",
				Type:        FieldStringArray,
				Description: "Skills the role needs that the resume lacks; if none mentioned, return NA",
				Required:    true,
			},
			{
				Name:        "suggested_questions",
				Type:        FieldStringArray,
				Description: "Interview questions tailored to this candidate, one question per entry",
				Required:    true,
			},
		},
	}
}

// BuildAnalysisPrompt constructs the instruction sent alongside the resume document.
func BuildAnalysisPrompt(jobRole string) string {
	return fmt.Sprintf(
		"You are an expert technical recruiter. Analyze the attached resume for a %s position. "+
			"Grade the candidate's fit for that role, base all reasoning only on the resume content, "+
			"and do not assume experience that is not explicitly mentioned.", jobRole)
}
