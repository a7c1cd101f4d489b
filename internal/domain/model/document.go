package model

import "time"

// Document is one entry of the document reference catalog. Only metadata is
// tracked; document content lives in the remote system.
type Document struct {
	ID          string
	Title       string
	Type        string
	CreatedBy   string
	CreatedDate time.Time
	Status      string
	SizeBytes   int64
}
