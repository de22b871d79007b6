package models

import "testing"

func TestNormalizeClearsWeekdayForNonWeeklyRules(t *testing.T) {
	for _, rule := range []string{RecurrenceDaily, RecurrenceCustom, "unrecognized"} {
		day := "monday"
		s := MedicationSchedule{RecurrenceRule: rule, DayOfWeek: &day}

		s.Normalize()

		if s.DayOfWeek != nil {
			t.Errorf("rule %q: day_of_week should be nil, got %q", rule, *s.DayOfWeek)
		}
	}
}

func TestNormalizeLowercasesWeeklyWeekday(t *testing.T) {
	day := " Monday "
	s := MedicationSchedule{RecurrenceRule: RecurrenceWeekly, DayOfWeek: &day}

	s.Normalize()

	if s.DayOfWeek == nil || *s.DayOfWeek != "monday" {
		t.Errorf("expected monday, got %v", s.DayOfWeek)
	}
}

func TestNormalizeKeepsWeeklyWithoutWeekday(t *testing.T) {
	s := MedicationSchedule{RecurrenceRule: RecurrenceWeekly}

	s.Normalize()

	if s.DayOfWeek != nil {
		t.Errorf("expected nil day_of_week, got %q", *s.DayOfWeek)
	}
}
