package model

// StudyYear represents an academic year of study.
type StudyYear struct {
	ID   int `json:"id"`
	Year int `json:"year"`
}

// Subject represents a taught discipline within a study year.
type Subject struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	StudyYearID int    `json:"study_year_id"`
}

// StudentClass represents a class group within a study year.
type StudentClass struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	StudyYearID int    `json:"study_year_id"`
}

// School holds the school's contact card.
type School struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// TeacherSubject groups a subject name with the classes a teacher
// teaches it to.
type TeacherSubject struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	StudentClasses []StudentClass `json:"student_classes"`
}
