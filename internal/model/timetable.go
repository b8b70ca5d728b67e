package model

// Weekday is a closed set of school days (Monday through Saturday).
type Weekday string

const (
	Monday    Weekday = "MON"
	Tuesday   Weekday = "TUE"
	Wednesday Weekday = "WED"
	Thursday  Weekday = "THU"
	Friday    Weekday = "FRI"
	Saturday  Weekday = "SAT"
)

// Valid reports whether w is one of the fixed weekday codes.
func (w Weekday) Valid() bool {
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday:
		return true
	}
	return false
}

// Lesson represents a single timetable slot owned by a teacher.
type Lesson struct {
	ID          int    `json:"id"`
	SubjectName string `json:"subject_name"`
	Number      int    `json:"number"`
	Cabinet     string `json:"cabinet"`
	Time        string `json:"time"`
	ClassName   string `json:"class_name"`
	TeacherID   int    `json:"-"`
}

// CreateLessonRequest is the payload for creating a lesson.
type CreateLessonRequest struct {
	SubjectName string `json:"subject_name" binding:"required,max=255"`
	Number      int    `json:"number" binding:"required,min=1"`
	Cabinet     string `json:"cabinet" binding:"required,max=255"`
	Time        string `json:"time" binding:"required,max=255"`
	ClassName   string `json:"class_name" binding:"required,max=12"`
}

// Day represents a timetable day; lessons are referenced by id.
type Day struct {
	ID        int     `json:"id"`
	DayOfWeek Weekday `json:"day_of_week"`
	LessonIDs []int   `json:"lessons"`
	TeacherID int     `json:"-"`
}

// DayDetail is the expanded representation with nested lessons.
type DayDetail struct {
	ID        int      `json:"id"`
	DayOfWeek Weekday  `json:"day_of_week"`
	Lessons   []Lesson `json:"lessons"`
}

// CreateDayRequest is the payload for creating a day.
// Lesson ids must reference the caller's own lessons.
type CreateDayRequest struct {
	DayOfWeek Weekday `json:"day_of_week" binding:"required,oneof=MON TUE WED THU FRI SAT"`
	LessonIDs []int   `json:"lessons"`
}

// UpdateDayRequest is the payload for updating a day.
type UpdateDayRequest struct {
	DayOfWeek Weekday `json:"day_of_week" binding:"required,oneof=MON TUE WED THU FRI SAT"`
	LessonIDs []int   `json:"lessons"`
}
