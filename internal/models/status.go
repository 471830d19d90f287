package models

import (
	"fmt"
	"strings"
)

// Status is the workflow state of a ticket. Only the three canonical values
// below are ever used by board and analytics logic.
type Status string

const (
	StatusToDo       Status = "ToDo"
	StatusInProgress Status = "InProgress"
	StatusDone       Status = "Done"
)

// Statuses lists the canonical statuses in board column order.
var Statuses = []Status{StatusToDo, StatusInProgress, StatusDone}

// Every accepted spelling, legacy ones included. Matching is exact.
var statusSpellings = map[string]Status{
	"ToDo":        StatusToDo,
	"To Do":       StatusToDo,
	"InProgress":  StatusInProgress,
	"In Progress": StatusInProgress,
	"Done":        StatusDone,
}

// ParseStatus normalizes a raw status string to its canonical value.
// "To Do" and "In Progress" map to ToDo and InProgress. Surrounding
// whitespace is ignored; anything else is a validation error.
func ParseStatus(raw string) (Status, error) {
	if s, ok := statusSpellings[strings.TrimSpace(raw)]; ok {
		return s, nil
	}
	return "", NewValidationError("status",
		fmt.Sprintf("invalid status %q (must be one of: ToDo, InProgress, Done)", raw))
}

// NormalizeStatus is ParseStatus for values already in the store. Unknown
// values fall back to ToDo so that a corrupt row still lands in a column.
func NormalizeStatus(raw string) Status {
	s, err := ParseStatus(raw)
	if err != nil {
		return StatusToDo
	}
	return s
}

// Spellings returns every accepted spelling that normalizes to s, in a
// stable order.
func (s Status) Spellings() []string {
	switch s {
	case StatusToDo:
		return []string{"ToDo", "To Do"}
	case StatusInProgress:
		return []string{"InProgress", "In Progress"}
	case StatusDone:
		return []string{"Done"}
	}
	return nil
}

// Title is the human column heading.
func (s Status) Title() string {
	switch s {
	case StatusToDo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	default:
		return string(s)
	}
}

// Index returns the column position of s, or -1 for a non-canonical value.
func (s Status) Index() int {
	for i, st := range Statuses {
		if st == s {
			return i
		}
	}
	return -1
}

// SprintStatus is the lifecycle state of a sprint.
type SprintStatus string

const (
	SprintActive    SprintStatus = "active"
	SprintCompleted SprintStatus = "completed"
)

// ParseSprintStatus validates a sprint status.
func ParseSprintStatus(raw string) (SprintStatus, error) {
	switch SprintStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case SprintActive:
		return SprintActive, nil
	case SprintCompleted:
		return SprintCompleted, nil
	}
	return "", NewValidationError("status",
		fmt.Sprintf("invalid sprint status %q (must be: active, completed)", raw))
}
