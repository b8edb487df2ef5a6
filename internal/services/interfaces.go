package services

import (
	"time"

	"gnucash-export/internal/dto"
)

// ExportServiceInterface defines the contract for export operations
type ExportServiceInterface interface {
	// ExportOFX builds an OFX statement document covering every account with
	// transactions. With exportAll false only accounts holding unexported
	// transactions are included, and their transactions are flagged as
	// exported afterwards.
	ExportOFX(exportAll bool) (*dto.ExportResult, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
