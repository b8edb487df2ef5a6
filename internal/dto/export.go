package dto

import "time"

// ExportRequest contains query parameters for the export endpoint
type ExportRequest struct {
	All    bool   `query:"all"`
	Format string `query:"format" validate:"export_format"`
}

// ExportResult carries a generated export document and its metadata
type ExportResult struct {
	Filename     string    `json:"filename"`
	ContentType  string    `json:"contentType"`
	Data         []byte    `json:"-"`
	AccountCount int       `json:"accountCount"`
	GeneratedAt  time.Time `json:"generatedAt"`
}
