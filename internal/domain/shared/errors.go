package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound     = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput = NewDomainError("INVALID_INPUT", "Invalid input provided")

	// ErrNoReportData is returned when a report query matches no ledger rows.
	// The message is plan-agnostic: callers never learn which plan produced
	// the empty set.
	ErrNoReportData = NewDomainError("NOT_FOUND", "No se encontraron datos para el reporte solicitado.")
)
