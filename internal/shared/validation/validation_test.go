package validation

import "testing"

func TestIsTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "09:30", "14:05", "23:59"}
	for _, s := range valid {
		if !IsTimeOfDay(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []string{"24:00", "9:30", "14:60", "14h05", "14:5", "", "14:05:00"}
	for _, s := range invalid {
		if IsTimeOfDay(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
