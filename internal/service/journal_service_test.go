package service

import (
	"context"
	"errors"
	"testing"

	"github.com/raisultan/elj-backend/internal/model"
	"github.com/rs/zerolog"
)

type fakeStudentResolver struct {
	byClass map[string][]model.Student
	err     error
}

func (f *fakeStudentResolver) ListByClassName(_ context.Context, name string) ([]model.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byClass[name], nil
}

type fakeMarkResolver struct {
	byStudent map[int][]model.Mark
	err       error
}

func (f *fakeMarkResolver) ListByStudentAndSubjectName(_ context.Context, studentID int, subjectName string) ([]model.Mark, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Mark
	for _, m := range f.byStudent[studentID] {
		if m.Subject.Name == subjectName {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestJournalListOrdering(t *testing.T) {
	maths := model.Subject{ID: 1, Name: "Mathematics"}
	history := model.Subject{ID: 2, Name: "History"}

	students := &fakeStudentResolver{byClass: map[string][]model.Student{
		"5A": {{ID: 1}, {ID: 2}},
	}}
	marks := &fakeMarkResolver{byStudent: map[int][]model.Mark{
		1: {{ID: 10, Subject: maths}, {ID: 11, Subject: maths},
			{ID: 40, Subject: history}}, // other subject, must not appear
		2: {{ID: 12, Subject: maths}},
		3: {{ID: 99, Subject: maths}}, // different class, must not appear
	}}
	svc := NewJournalService(students, marks, zerolog.Nop())

	journal, err := svc.List(context.Background(), "5A", "Mathematics")
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	wantIDs := []int{10, 11, 12}
	if len(journal) != len(wantIDs) {
		t.Fatalf("len = %d, want %d", len(journal), len(wantIDs))
	}
	for i, want := range wantIDs {
		if journal[i].ID != want {
			t.Errorf("journal[%d].ID = %d, want %d", i, journal[i].ID, want)
		}
	}
	for _, m := range journal {
		if m.Subject.Name != "Mathematics" {
			t.Errorf("journal contains subject %q, want only Mathematics", m.Subject.Name)
		}
	}
}

func TestJournalListUnknownClass(t *testing.T) {
	students := &fakeStudentResolver{byClass: map[string][]model.Student{
		"5A": {{ID: 1}},
	}}
	marks := &fakeMarkResolver{byStudent: map[int][]model.Mark{
		1: {{ID: 10}},
	}}
	svc := NewJournalService(students, marks, zerolog.Nop())

	// An absent query parameter arrives as "" and must match nothing.
	for _, class := range []string{"", "5Z"} {
		journal, err := svc.List(context.Background(), class, "Mathematics")
		if err != nil {
			t.Fatalf("List(%q): %v", class, err)
		}
		if journal == nil {
			t.Fatalf("List(%q) returned nil, want empty slice", class)
		}
		if len(journal) != 0 {
			t.Errorf("List(%q) len = %d, want 0", class, len(journal))
		}
	}
}

func TestJournalListPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")

	svc := NewJournalService(&fakeStudentResolver{err: boom}, &fakeMarkResolver{}, zerolog.Nop())
	if _, err := svc.List(context.Background(), "5A", "Mathematics"); !errors.Is(err, boom) {
		t.Errorf("student resolver error = %v, want %v", err, boom)
	}

	students := &fakeStudentResolver{byClass: map[string][]model.Student{
		"5A": {{ID: 1}},
	}}
	svc = NewJournalService(students, &fakeMarkResolver{err: boom}, zerolog.Nop())
	if _, err := svc.List(context.Background(), "5A", "Mathematics"); !errors.Is(err, boom) {
		t.Errorf("mark resolver error = %v, want %v", err, boom)
	}
}
