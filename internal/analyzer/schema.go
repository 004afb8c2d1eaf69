package analyzer

// analysisRecordSchema is the JSON Schema every provider response must
// satisfy before it is accepted into the pipeline. It mirrors the extraction
// schema sent to the provider; validating here guards against providers that
// ignore or loosely honor response schemas.
const analysisRecordSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "AnalysisRecord",
	"type": "object",
	"required": [
		"full_name",
		"match_score",
		"summary",
		"experience_highlights",
		"matching_skills",
		"missing_skills",
		"suggested_questions"
	],
	"properties": {
		"full_name": {"type": "string", "minLength": 1},
		"match_score": {"type": "integer", "minimum": 0, "maximum": 100},
		"summary": {"type": "string"},
		"experience_highlights": {"type": "array", "items": {"type": "string"}},
		"matching_skills": {"type": "array", "items": {"type": "string"}},
		"missing_skills": {"type": "array", "items": {"type": "string"}},
		"suggested_questions": {"type": "array", "items": {"type": "string"}}
	}
}`
