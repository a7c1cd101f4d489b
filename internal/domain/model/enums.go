package model

// ProcessingStatus is SAP's single-letter overall processing code for
// delivery and billing progress.
type ProcessingStatus string

const (
	StatusNotProcessed        ProcessingStatus = "A"
	StatusPartiallyProcessed  ProcessingStatus = "B"
	StatusCompletelyProcessed ProcessingStatus = "C"
)

// Label returns the human-readable text for the status code. Codes outside
// the closed A/B/C set map to "Unknown" rather than failing.
func (s ProcessingStatus) Label() string {
	switch s {
	case StatusNotProcessed:
		return "Not Processed"
	case StatusPartiallyProcessed:
		return "Partially Processed"
	case StatusCompletelyProcessed:
		return "Completely Processed"
	default:
		return "Unknown"
	}
}

// Color returns the display color hex for the status code. Unknown codes map
// to a neutral gray.
func (s ProcessingStatus) Color() string {
	switch s {
	case StatusNotProcessed:
		return "#f59e0b"
	case StatusPartiallyProcessed:
		return "#3b82f6"
	case StatusCompletelyProcessed:
		return "#10b981"
	default:
		return "#6b7280"
	}
}

// ConnectionMode distinguishes the two serving modes of the order service.
type ConnectionMode string

const (
	// ModeDemo serves the built-in sample orders; no remote system is contacted.
	ModeDemo ConnectionMode = "demo"
	// ModeAuthenticated serves live records fetched with session credentials.
	ModeAuthenticated ConnectionMode = "authenticated"
)
