// Package llm provides the text-generation providers used by the summary
// collaborator. The engine itself never touches this package.
package llm

import "context"

// Provider is the interface for all LLM providers.
//
// Options carry per-call settings; the recognized keys are "model" (string),
// "api_key" (string, session-scoped key supplied by the caller and never
// persisted) and "response_format" (map with type "json_object").
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
}
