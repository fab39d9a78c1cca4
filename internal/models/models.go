package models

// Task represents a single to-do entry
type Task struct {
	// ID is assigned once at creation and never reused within a session
	ID          string
	Description string
	IsCompleted bool
}
