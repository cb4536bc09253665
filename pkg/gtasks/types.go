package gtasks

import "time"

// CreateTaskRequest describes a task to insert.
type CreateTaskRequest struct {
	TasklistID string // empty means "@default"
	Title      string
	Notes      string
	Due        *time.Time // date component only, per the Tasks API
}

// Task is an inserted or listed task.
type Task struct {
	ID     string
	Title  string
	Notes  string
	Status string
	Due    *time.Time
}
