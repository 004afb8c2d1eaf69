// Package analyzer grades resume documents against job roles via an LLM provider.
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-ranker/internal/llm"
	"github.com/jonathan/resume-ranker/internal/schemas"
	"github.com/jonathan/resume-ranker/internal/types"
)

const pdfMIMEType = "application/pdf"

// Analyzer takes a resume document and a role label and returns a fully
// populated analysis record. Implementations are stateless between calls;
// re-submitting the same document repeats the full round trip.
type Analyzer interface {
	Analyze(ctx context.Context, document []byte, jobRole string) (*types.AnalysisRecord, error)
}

// GeminiAnalyzer implements Analyzer on top of the schema-constrained LLM client.
type GeminiAnalyzer struct {
	client llm.Client
}

// NewGeminiAnalyzer creates an analyzer backed by the given LLM client.
func NewGeminiAnalyzer(client llm.Client) *GeminiAnalyzer {
	return &GeminiAnalyzer{client: client}
}

// Analyze sends the resume to the model and returns the parsed record.
// The provider response is checked against the analysis JSON Schema before
// unmarshalling, so a malformed or partial response surfaces as a single
// error rather than a half-filled record.
func (a *GeminiAnalyzer) Analyze(ctx context.Context, document []byte, jobRole string) (*types.AnalysisRecord, error) {
	if len(document) == 0 {
		return nil, fmt.Errorf("no document provided")
	}
	if jobRole == "" {
		return nil, fmt.Errorf("job role is required")
	}
	if err := ValidatePDF(document); err != nil {
		return nil, fmt.Errorf("invalid resume document: %w", err)
	}

	raw, err := a.client.AnalyzeDocument(ctx,
		llm.Document{Data: document, MIMEType: pdfMIMEType},
		llm.BuildAnalysisPrompt(jobRole),
		llm.ResumeAnalysisSchema(),
	)
	if err != nil {
		return nil, fmt.Errorf("analysis request failed: %w", err)
	}

	if err := schemas.ValidateBytes([]byte(analysisRecordSchema), []byte(raw)); err != nil {
		return nil, fmt.Errorf("provider returned malformed analysis: %w", err)
	}

	var record types.AnalysisRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}

	// The role is echoed from the request, not trusted from the model.
	record.JobRole = jobRole

	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("analysis record failed validation: %w", err)
	}

	return &record, nil
}
