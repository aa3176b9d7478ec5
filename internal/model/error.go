package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeMissingField     = "MISSING_FIELD"
	ErrCodeInvalidEmail     = "INVALID_EMAIL"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidProductID = "INVALID_PRODUCT_ID"
	ErrCodeInvalidQuantity  = "INVALID_QUANTITY"
	ErrCodeInvalidParameter = "INVALID_PARAMETER"
	ErrCodeSubmissionFailed = "SUBMISSION_FAILED"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

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
	ErrProductNotFound  = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrInvalidProductID = NewDomainError(ErrCodeInvalidProductID, "Product ID must be a non-negative number")
	ErrInvalidQuantity  = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be zero or greater")
	ErrMissingField     = NewDomainError(ErrCodeMissingField, "Name, email and message are required")
	ErrInvalidEmail     = NewDomainError(ErrCodeInvalidEmail, "Email address is not valid")
	ErrSubmissionFailed = NewDomainError(ErrCodeSubmissionFailed, "Failed to send message. Please try again.")
)
