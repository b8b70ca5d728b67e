package model

// MarkValue is a closed set of mark codes: attendance or a grade.
type MarkValue string

const (
	MarkPresent MarkValue = "P"
	MarkAbsent  MarkValue = "A"
	MarkGrade2  MarkValue = "2"
	MarkGrade3  MarkValue = "3"
	MarkGrade4  MarkValue = "4"
	MarkGrade5  MarkValue = "5"
)

// Valid reports whether v is one of the fixed mark codes.
func (v MarkValue) Valid() bool {
	switch v {
	case MarkPresent, MarkAbsent, MarkGrade2, MarkGrade3, MarkGrade4, MarkGrade5:
		return true
	}
	return false
}

// Mark represents a single journal entry for a student in a subject.
// Subject and student are embedded in full on read; writes accept ids only.
type Mark struct {
	ID      int       `json:"id"`
	Value   MarkValue `json:"value"`
	Date    Date      `json:"date"`
	Subject Subject   `json:"subject"`
	Student Student   `json:"student"`
}

// CreateMarkRequest is the payload for creating a mark.
// Value defaults to present when omitted.
type CreateMarkRequest struct {
	Value     MarkValue `json:"value" binding:"omitempty,oneof=P A 2 3 4 5"`
	Date      string    `json:"date" binding:"required,datetime=2006-01-02"`
	SubjectID int       `json:"subject_id" binding:"required"`
	StudentID int       `json:"student_id" binding:"required"`
}

// UpdateMarkRequest is the payload for updating a mark.
type UpdateMarkRequest struct {
	Value     MarkValue `json:"value" binding:"omitempty,oneof=P A 2 3 4 5"`
	Date      string    `json:"date" binding:"required,datetime=2006-01-02"`
	SubjectID int       `json:"subject_id" binding:"required"`
	StudentID int       `json:"student_id" binding:"required"`
}

// MarkFilter restricts mark listing; nil fields apply no predicate.
type MarkFilter struct {
	StudentID *int
	SubjectID *int
}
