// Package utils holds small shared helpers: tolerant JSON parsing for LLM
// replies and markdown cleanup for rendered reports.
package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON fixes the common defects in model-generated JSON: single quotes,
// unquoted keys, trailing commas, unclosed brackets, markdown code fences.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %w", err)
	}
	return repaired, nil
}

// ParseHJSON parses Hjson (comments, unquoted keys, optional commas) directly
// into a Go struct. The most lenient fallback in SmartParse.
func ParseHJSON(data string, schema interface{}) error {
	if err := hjson.Unmarshal([]byte(data), schema); err != nil {
		return fmt.Errorf("hjson parse failed: %w", err)
	}
	return nil
}

// SmartParse extracts structured data from an LLM reply, trying strict JSON
// first, then repaired JSON, then Hjson. Returns an error only when all three
// strategies fail.
func SmartParse(input string, schema interface{}) error {
	if err := json.Unmarshal([]byte(input), schema); err == nil {
		return nil
	}

	if repaired, err := RepairJSON(input); err == nil {
		if err := json.Unmarshal([]byte(repaired), schema); err == nil {
			return nil
		}
	}

	if err := ParseHJSON(input, schema); err == nil {
		return nil
	}

	return fmt.Errorf("all parsing strategies failed for input of %d bytes", len(input))
}
