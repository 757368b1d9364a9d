package agent

import "testing"

func TestStripCodeFencesRemovesJSONFence(t *testing.T) {
	in := "```json\n{\"a\": 1}\n```"
	got := StripCodeFences(in)
	if got != "{\"a\": 1}" {
		t.Fatalf("expected fence stripped, got %q", got)
	}
}

func TestStripCodeFencesPassthrough(t *testing.T) {
	in := "{\"a\": 1}"
	if got := StripCodeFences(in); got != in {
		t.Fatalf("unfenced input should pass through, got %q", got)
	}
}

func TestStripCodeFencesNoTrailingFence(t *testing.T) {
	in := "```\n{\"a\": 1}"
	if got := StripCodeFences(in); got != "{\"a\": 1}" {
		t.Fatalf("expected leading fence dropped, got %q", got)
	}
}

func TestExtractJSONOK(t *testing.T) {
	var out struct {
		Reply string `json:"reply"`
	}
	ext := ExtractJSON("```json\n{\"reply\": \"hi\"}\n```", &out)
	if !ext.OK() {
		t.Fatalf("expected ok extraction, got %v (%v)", ext.Status, ext.Err)
	}
	if out.Reply != "hi" {
		t.Fatalf("expected reply decoded, got %q", out.Reply)
	}
}

func TestExtractJSONFallbackKeepsRaw(t *testing.T) {
	raw := "Sure! Here's your plan: wake up early."
	var out map[string]interface{}
	ext := ExtractJSON(raw, &out)
	if ext.OK() {
		t.Fatalf("expected fallback for non-JSON input")
	}
	if ext.Raw != raw {
		t.Fatalf("fallback must keep the raw reply, got %q", ext.Raw)
	}
	if ext.Err == nil {
		t.Fatalf("fallback must carry the parse error")
	}
}

func TestExtractJSONFallbackLeavesTargetUntouched(t *testing.T) {
	out := []int{1, 2, 3}
	ext := ExtractJSON("not json", &out)
	if ext.OK() {
		t.Fatalf("expected fallback")
	}
	if len(out) != 3 {
		t.Fatalf("target must be untouched on fallback, got %v", out)
	}
}
