package model

import "time"

// Event represents an announcement owned by a teacher.
type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	TeacherID   int       `json:"-"`
}

// CreateEventRequest is the payload for creating an event.
// The owner is always the authenticated caller; a teacher field in the
// body is not accepted.
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required,max=255"`
	Description string    `json:"description" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
}

// UpdateEventRequest is the payload for updating an event.
type UpdateEventRequest struct {
	Title       string    `json:"title" binding:"required,max=255"`
	Description string    `json:"description" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
}
