package services

import (
	"testing"

	"github.com/yungbote/daypilot-backend/internal/types"
)

func TestMinutesOfDay(t *testing.T) {
	cases := map[string]int{
		"00:00": 0,
		"06:30": 390,
		"23:59": 1439,
		"bogus": 0,
		"":      0,
	}
	for in, want := range cases {
		if got := minutesOfDay(in); got != want {
			t.Fatalf("minutesOfDay(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestBlockDurationHours(t *testing.T) {
	b := types.TimeBlock{StartTime: "09:00", EndTime: "10:30"}
	if got := blockDurationHours(b); got != 1.5 {
		t.Fatalf("expected 1.5 hours, got %v", got)
	}
	inverted := types.TimeBlock{StartTime: "14:00", EndTime: "12:00"}
	if got := blockDurationHours(inverted); got != 0 {
		t.Fatalf("inverted block must contribute zero hours, got %v", got)
	}
}

func TestDecodeBlocksBadJSON(t *testing.T) {
	if got := decodeBlocks([]byte("not json")); len(got) != 0 {
		t.Fatalf("bad blob should decode to empty slice, got %v", got)
	}
	if got := decodeBlocks(nil); got == nil {
		t.Fatalf("nil blob should decode to empty slice, not nil")
	}
}
