package services

import (
	"fmt"
	"log/slog"
	"time"

	"gnucash-export/internal/dto"
	"gnucash-export/internal/models"
	"gnucash-export/internal/ofx"
	"gnucash-export/internal/repositories"

	"github.com/beevik/etree"
	"github.com/google/uuid"
)

const (
	// ContentTypeOFX is the media type served for generated documents.
	ContentTypeOFX = "application/x-ofx"

	xmlDeclaration = `version="1.0" encoding="UTF-8" standalone="no"`

	ofxHeaderFormat = `OFXHEADER="200" VERSION="211" SECURITY="NONE" OLDFILEUID="NONE" NEWFILEUID="%s"`
)

type exportService struct {
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	clock           func() time.Time
}

func NewExportService(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) ExportServiceInterface {
	return &exportService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		metrics:         metrics,
		clock:           time.Now,
	}
}

func (s *exportService) ExportOFX(exportAll bool) (*dto.ExportResult, error) {
	start := s.clock()

	accounts, err := s.selectAccounts(exportAll)
	if err != nil {
		s.recordFailure("select_accounts", start)
		return nil, err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", xmlDeclaration)
	doc.CreateProcInst("OFX", fmt.Sprintf(ofxHeaderFormat, uuid.NewString()))
	root := doc.CreateElement("OFX")

	source := ofx.NewStoreTransactionSource(s.transactionRepo)
	builder := ofx.NewBuilder(accounts, exportAll, source, s.transactionRepo)

	if err := builder.ToXML(root); err != nil {
		slog.Error("export document build failed",
			"export_all", exportAll,
			"account_count", len(accounts),
			"error", err)
		s.recordFailure("build_document", start)
		return nil, fmt.Errorf("failed to build export document: %w", err)
	}

	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		s.recordFailure("serialize_document", start)
		return nil, fmt.Errorf("failed to serialize export document: %w", err)
	}

	exported := 0
	for i := range accounts {
		if accounts[i].HasTransactions() {
			exported++
		}
	}

	result := &dto.ExportResult{
		Filename:     exportFilename(start, exportAll),
		ContentType:  ContentTypeOFX,
		Data:         data,
		AccountCount: exported,
		GeneratedAt:  start,
	}

	duration := s.clock().Sub(start)
	s.metrics.IncrementCounter("export.completed", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("export.generation", duration)
	s.metrics.RecordGauge("export.accounts", float64(exported), nil)
	s.metrics.RecordGauge("export.document_bytes", float64(len(data)), nil)

	slog.Info("export generated",
		"export_all", exportAll,
		"account_count", exported,
		"bytes", len(data),
		"duration_ms", duration.Milliseconds())

	return result, nil
}

func (s *exportService) selectAccounts(exportAll bool) ([]models.Account, error) {
	if exportAll {
		accounts, err := s.accountRepo.GetAll()
		if err != nil {
			slog.Error("failed to load accounts for export", "error", err)
			return nil, fmt.Errorf("failed to load accounts: %w", err)
		}
		return accounts, nil
	}

	accounts, err := s.accountRepo.GetExportable()
	if err != nil {
		slog.Error("failed to load exportable accounts", "error", err)
		return nil, fmt.Errorf("failed to load exportable accounts: %w", err)
	}
	return accounts, nil
}

func (s *exportService) recordFailure(stage string, start time.Time) {
	s.metrics.IncrementCounter("export.failed", map[string]string{"stage": stage})
	s.metrics.RecordProcessingTime("export.generation", s.clock().Sub(start))
}

// exportFilename builds a timestamped name so successive exports never
// overwrite each other.
func exportFilename(t time.Time, exportAll bool) string {
	if exportAll {
		return ofx.FormatTimestamp(t) + "_gnucash_all.ofx"
	}
	return ofx.FormatTimestamp(t) + "_gnucash_export.ofx"
}
