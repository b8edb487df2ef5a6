package handlers

import (
	"fmt"
	"net/http"

	"gnucash-export/internal/dto"
	apierrors "gnucash-export/internal/errors"
	"gnucash-export/internal/services"

	"github.com/labstack/echo/v4"
)

type ExportHandler struct {
	exportService services.ExportServiceInterface
}

func NewExportHandler(exportService services.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportOFX generates an OFX document for download
//
// Method: GET /api/v1/export/ofx
//
// Query parameters:
//   - all: boolean (optional, default false). When true every transaction is
//     included regardless of prior exports; when false only transactions not
//     yet exported are included, and they are flagged afterwards.
//   - format: string (optional). Only "ofx" is accepted.
//
// Success Response: 200 OK
//   - Content-Type: application/x-ofx
//   - Content-Disposition: attachment with a timestamped filename
//
// Error Responses:
//   - 400: Invalid query parameters or unsupported format
//   - 500: Export generation failed
func (h *ExportHandler) ExportOFX(c echo.Context) error {
	var req dto.ExportRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid query parameters"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, apierrors.ExportUnsupportedFormat)
	}

	result, err := h.exportService.ExportOFX(req.All)
	if err != nil {
		return SendSystemError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Response().Header().Set("X-Export-Account-Count",
		fmt.Sprintf("%d", result.AccountCount))

	return c.Blob(http.StatusOK, result.ContentType, result.Data)
}
