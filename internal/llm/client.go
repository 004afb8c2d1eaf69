package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Document is a binary payload sent to the model alongside the prompt.
type Document struct {
	Data     []byte
	MIMEType string
}

// Client is an abstraction over LLM providers capable of schema-constrained
// document analysis.
type Client interface {
	// AnalyzeDocument sends the document and prompt to the model and returns
	// its JSON output, constrained to the given extraction schema.
	AnalyzeDocument(ctx context.Context, doc Document, prompt string, schema ExtractionSchema) (string, error)
	// Model returns the underlying provider model name
	Model() string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	// case ProviderOpenAI:
	//     return NewOpenAIClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// AnalyzeDocument sends the document plus prompt to Gemini with a response
// schema attached, so the model must return all required fields as JSON.
func (c *GeminiClient) AnalyzeDocument(ctx context.Context, doc Document, prompt string, schema ExtractionSchema) (string, error) {
	if c.config.Model == "" {
		return "", fmt.Errorf("no model configured")
	}
	if len(doc.Data) == 0 {
		return "", fmt.Errorf("document is empty")
	}

	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = toGeminiSchema(schema)

	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: doc.MIMEType, Data: doc.Data},
		genai.Text(prompt),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}

	// Clean any markdown code block wrappers
	return CleanJSONBlock(text), nil
}

// Model returns the configured model name
func (c *GeminiClient) Model() string {
	return c.config.Model
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// toGeminiSchema translates the neutral extraction schema into Gemini's
// native response schema.
func toGeminiSchema(schema ExtractionSchema) *genai.Schema {
	properties := make(map[string]*genai.Schema, len(schema.Fields))
	var required []string

	for _, field := range schema.Fields {
		properties[field.Name] = &genai.Schema{
			Type:        toGeminiType(field.Type),
			Description: field.Description,
		}
		if field.Type == FieldStringArray {
			properties[field.Name].Items = &genai.Schema{Type: genai.TypeString}
		}
		if field.Required {
			required = append(required, field.Name)
		}
	}

	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: schema.Description,
		Properties:  properties,
		Required:    required,
	}
}

func toGeminiType(fieldType string) genai.Type {
	switch fieldType {
	case FieldInteger:
		return genai.TypeInteger
	case FieldStringArray:
		return genai.TypeArray
	default:
		return genai.TypeString
	}
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
