package model

import "testing"

func TestMarkValueValid(t *testing.T) {
	valid := []MarkValue{MarkPresent, MarkAbsent, MarkGrade2, MarkGrade3, MarkGrade4, MarkGrade5}
	for _, v := range valid {
		if !v.Valid() {
			t.Errorf("MarkValue(%q).Valid() = false, want true", v)
		}
	}

	invalid := []MarkValue{"", "1", "6", "p", "a", "PP", "present"}
	for _, v := range invalid {
		if v.Valid() {
			t.Errorf("MarkValue(%q).Valid() = true, want false", v)
		}
	}
}

func TestWeekdayValid(t *testing.T) {
	valid := []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
	for _, w := range valid {
		if !w.Valid() {
			t.Errorf("Weekday(%q).Valid() = false, want true", w)
		}
	}

	invalid := []Weekday{"", "SUN", "mon", "MONDAY"}
	for _, w := range invalid {
		if w.Valid() {
			t.Errorf("Weekday(%q).Valid() = true, want false", w)
		}
	}
}
