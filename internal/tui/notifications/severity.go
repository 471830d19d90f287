package notifications

// Severity represents the severity level of a notification
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// Notification is a message shown in the tab bar until replaced or cleared
type Notification struct {
	Severity Severity
	Message  string
}
