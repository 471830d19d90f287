package models

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

// Priority is the urgency of a ticket.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists the valid priorities from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

var priorityColors = map[Priority]string{
	PriorityLow:    "#28a745",
	PriorityMedium: "#ffc107",
	PriorityHigh:   "#dc3545",
}

// DefaultEpicColor is the color preselected by the epic form.
const DefaultEpicColor = "#007bff"

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ParsePriority maps a priority name (any case) to its canonical value.
func ParsePriority(raw string) (Priority, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", NewValidationError("priority", "priority is required")
	}
	for _, p := range Priorities {
		if strings.EqualFold(string(p), trimmed) {
			return p, nil
		}
	}
	return "", NewValidationError("priority",
		fmt.Sprintf("invalid priority %q (must be: Low, Medium, High)", raw))
}

// Color returns the fixed display color of the priority.
func (p Priority) Color() string {
	if c, ok := priorityColors[p]; ok {
		return c
	}
	return priorityColors[PriorityMedium]
}

// IsHexColor reports whether s is a #RRGGBB color.
func IsHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

// RandomColor returns a uniformly random #rrggbb color.
func RandomColor() string {
	var b [3]byte
	if _, err := rand.Read(b[:]); err != nil {
		return DefaultEpicColor
	}
	return "#" + hex.EncodeToString(b[:])
}
