package plan

import (
	"strings"
	"testing"
	"time"
)

func TestPickerDeterministic(t *testing.T) {
	at := time.Date(2024, time.May, 3, 9, 30, 0, 0, time.Local)

	first := NewPicker(nil, 42)
	second := NewPicker(nil, 42)
	for i := 0; i < 50; i++ {
		a, b := first.Pick(at), second.Pick(at)
		if a != b {
			t.Fatalf("pick %d diverged for identical seeds: %q vs %q", i, a, b)
		}
	}
}

func TestPickerSeedChangesSequence(t *testing.T) {
	at := time.Date(2024, time.May, 3, 9, 30, 0, 0, time.Local)

	first := NewPicker(nil, 42)
	second := NewPicker(nil, 7)
	same := true
	for i := 0; i < 50; i++ {
		if first.Pick(at) != second.Pick(at) {
			same = false
			break
		}
	}
	if same {
		t.Error("50 picks identical across different seeds")
	}
}

func TestPickerMessageFormat(t *testing.T) {
	at := time.Date(2024, time.May, 3, 9, 30, 45, 0, time.Local)

	picker := NewPicker([]string{"Tend the garden"}, 1)
	got := picker.Pick(at)
	want := "Tend the garden (2024-05-03 09:30)"
	if got != want {
		t.Errorf("Pick() = %q, want %q", got, want)
	}
}

func TestPickerDrawsFromPool(t *testing.T) {
	at := time.Date(2024, time.May, 3, 9, 30, 0, 0, time.Local)

	picker := NewPicker(nil, 3)
	for i := 0; i < 100; i++ {
		msg := picker.Pick(at)
		phrase := strings.TrimSuffix(msg, at.Format(" (2006-01-02 15:04)"))
		found := false
		for _, p := range DefaultMessages {
			if p == phrase {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("Pick() phrase %q not in default pool", phrase)
		}
	}
}
