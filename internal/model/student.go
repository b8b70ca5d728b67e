package model

// Student represents a pupil enrolled in a class.
type Student struct {
	ID           int          `json:"id"`
	Surname      string       `json:"surname"`
	Name         string       `json:"name"`
	Lastname     string       `json:"lastname"`
	BirthDate    *Date        `json:"birth_date"`
	Address      string       `json:"address"`
	Phone        string       `json:"phone"`
	StudentClass StudentClass `json:"student_class"`
}
