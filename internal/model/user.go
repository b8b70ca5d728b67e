package model

import "time"

// User represents a teacher account. Email is the login identifier.
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	Lastname     string    `json:"lastname"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	BirthDate    *Date     `json:"birth_date"`
	IsActive     bool      `json:"is_active"`
	IsStaff      bool      `json:"is_staff"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterRequest is the payload for creating a teacher account.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,min=6,max=128"`
	Name      string `json:"name" binding:"omitempty,max=255"`
	Surname   string `json:"surname" binding:"omitempty,max=255"`
	Lastname  string `json:"lastname" binding:"omitempty,max=255"`
	Address   string `json:"address" binding:"omitempty,max=255"`
	Phone     string `json:"phone" binding:"omitempty,max=255"`
	BirthDate string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
}

// LoginRequest is the payload for teacher authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// LoginResponse is returned after successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UpdateProfileRequest is the payload for updating the authenticated teacher.
type UpdateProfileRequest struct {
	Name      string `json:"name" binding:"omitempty,max=255"`
	Surname   string `json:"surname" binding:"omitempty,max=255"`
	Lastname  string `json:"lastname" binding:"omitempty,max=255"`
	Address   string `json:"address" binding:"omitempty,max=255"`
	Phone     string `json:"phone" binding:"omitempty,max=255"`
	BirthDate string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Password  string `json:"password" binding:"omitempty,min=6,max=128"`
}
