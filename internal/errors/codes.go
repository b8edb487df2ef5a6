package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound    ErrorCode = "ACCOUNT_001"
	AccountInvalidUID  ErrorCode = "ACCOUNT_002"
	AccountInvalidType ErrorCode = "ACCOUNT_003"
	AccountUIDConflict ErrorCode = "ACCOUNT_004"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionMissingDate   ErrorCode = "TRANSACTION_003"
)

// Export error codes (EXPORT_*)
const (
	ExportFailed            ErrorCode = "EXPORT_001"
	ExportNothingToExport   ErrorCode = "EXPORT_002"
	ExportUnsupportedFormat ErrorCode = "EXPORT_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// Account errors
	AccountNotFound:    "Account not found",
	AccountInvalidUID:  "Invalid account identifier",
	AccountInvalidType: "Invalid account type",
	AccountUIDConflict: "An account with this identifier already exists",

	// Transaction errors
	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Invalid transaction amount",
	TransactionMissingDate:   "Transaction posted date is required",

	// Export errors
	ExportFailed:            "Export generation failed",
	ExportNothingToExport:   "No accounts have transactions to export",
	ExportUnsupportedFormat: "Unsupported export format",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
