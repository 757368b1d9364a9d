package agent

import (
	"encoding/json"
	"strings"
)

// ExtractStatus records whether a model response parsed cleanly or the caller
// fell back to a safe default.
type ExtractStatus string

const (
	ExtractOK       ExtractStatus = "ok"
	ExtractFallback ExtractStatus = "fallback"
)

// Extraction is the outcome of pulling structured JSON out of a model reply.
// Raw keeps the untouched response so fallback paths can still surface it.
type Extraction struct {
	Status ExtractStatus
	Raw    string
	Err    error
}

func (e Extraction) OK() bool {
	return e.Status == ExtractOK
}

// StripCodeFences removes a leading ``` or ```json fence line and a trailing
// ``` line. Anything else passes through untouched.
func StripCodeFences(src string) string {
	s := strings.TrimSpace(src)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return s
	}
	last := strings.TrimSpace(lines[len(lines)-1])
	body := lines[1:]
	if last == "```" {
		body = lines[1 : len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(body, "\n"))
}

// ExtractJSON strips fences and unmarshals the result into v. On failure v is
// left untouched and the Extraction reports fallback with the raw reply.
func ExtractJSON(raw string, v interface{}) Extraction {
	clean := StripCodeFences(raw)
	if err := json.Unmarshal([]byte(clean), v); err != nil {
		return Extraction{Status: ExtractFallback, Raw: raw, Err: err}
	}
	return Extraction{Status: ExtractOK, Raw: raw}
}
