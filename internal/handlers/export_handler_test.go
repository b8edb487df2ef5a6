package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gnucash-export/internal/dto"
	"gnucash-export/internal/services"
	"gnucash-export/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ExportHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	echo              *echo.Echo
	mockExportService *service_mocks.MockExportServiceInterface
	handler           *ExportHandler
}

func TestExportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExportHandlerTestSuite))
}

func (s *ExportHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockExportService = service_mocks.NewMockExportServiceInterface(s.ctrl)
	s.handler = NewExportHandler(s.mockExportService)
}

func (s *ExportHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ExportHandlerTestSuite) newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")
	return c, rec
}

func (s *ExportHandlerTestSuite) sampleResult(filename string) *dto.ExportResult {
	return &dto.ExportResult{
		Filename:     filename,
		ContentType:  services.ContentTypeOFX,
		Data:         []byte("<OFX><BANKMSGSRSV1/></OFX>"),
		AccountCount: 3,
		GeneratedAt:  time.Date(2025, 8, 14, 10, 30, 0, 0, time.UTC),
	}
}

func (s *ExportHandlerTestSuite) TestExportOFX_Default() {
	c, rec := s.newContext("/api/v1/export/ofx")

	s.mockExportService.EXPECT().ExportOFX(false).Return(s.sampleResult("20250814103000_gnucash_export.ofx"), nil)

	s.NoError(s.handler.ExportOFX(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(services.ContentTypeOFX, rec.Header().Get(echo.HeaderContentType))
	s.Equal(`attachment; filename="20250814103000_gnucash_export.ofx"`, rec.Header().Get(echo.HeaderContentDisposition))
	s.Equal("3", rec.Header().Get("X-Export-Account-Count"))
	s.Contains(rec.Body.String(), "<OFX>")
}

func (s *ExportHandlerTestSuite) TestExportOFX_All() {
	c, rec := s.newContext("/api/v1/export/ofx?all=true")

	s.mockExportService.EXPECT().ExportOFX(true).Return(s.sampleResult("20250814103000_gnucash_all.ofx"), nil)

	s.NoError(s.handler.ExportOFX(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentDisposition), "_gnucash_all.ofx")
}

func (s *ExportHandlerTestSuite) TestExportOFX_ExplicitFormat() {
	c, rec := s.newContext("/api/v1/export/ofx?format=ofx")

	s.mockExportService.EXPECT().ExportOFX(false).Return(s.sampleResult("20250814103000_gnucash_export.ofx"), nil)

	s.NoError(s.handler.ExportOFX(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ExportHandlerTestSuite) TestExportOFX_UnsupportedFormat() {
	c, rec := s.newContext("/api/v1/export/ofx?format=qif")

	s.NoError(s.handler.ExportOFX(c))

	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("EXPORT_003", response.Error.Code)
	s.Equal("test-trace-id", response.Error.TraceID)
}

func (s *ExportHandlerTestSuite) TestExportOFX_InvalidAllParam() {
	c, rec := s.newContext("/api/v1/export/ofx?all=banana")

	s.NoError(s.handler.ExportOFX(c))

	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_001", response.Error.Code)
}

func (s *ExportHandlerTestSuite) TestExportOFX_ServiceFailure() {
	c, rec := s.newContext("/api/v1/export/ofx")

	s.mockExportService.EXPECT().ExportOFX(false).Return(nil, errors.New("database gone"))

	s.NoError(s.handler.ExportOFX(c))

	s.Equal(http.StatusInternalServerError, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "database gone")
}
