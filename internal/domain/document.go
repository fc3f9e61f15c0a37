package domain

import (
	"io"
	"time"
)

// ParseStatus is driven entirely by server-side processing; the client only
// submits uploads and polls.
type ParseStatus string

const (
	ParsePending              ParseStatus = "pending"
	ParseProcessing           ParseStatus = "processing"
	ParseCompleted            ParseStatus = "completed"
	ParseFailed               ParseStatus = "failed"
	ParseAwaitingConfirmation ParseStatus = "awaiting_confirmation"
)

// Terminal reports whether processing has finished for this status.
func (s ParseStatus) Terminal() bool {
	return s == ParseCompleted || s == ParseFailed
}

// Document represents an uploaded file.
type Document struct {
	ID           string      `json:"id"`
	UserID       string      `json:"user_id"`
	Filename     string      `json:"filename"`
	DocumentType string      `json:"document_type"`
	ProviderName *string     `json:"provider_name"`
	ParseStatus  ParseStatus `json:"parse_status"`
	ParseError   *string     `json:"parse_error"`
	FileKey      string      `json:"file_key"`
	UploadedAt   time.Time   `json:"uploaded_at"`
	ParsedAt     *time.Time  `json:"parsed_at"`
}

// DocumentUpload is the multipart payload for a new document. File content
// is streamed from the reader; ProviderName is optional.
type DocumentUpload struct {
	File         io.Reader
	Filename     string
	DocumentType string
	ProviderName string
}
