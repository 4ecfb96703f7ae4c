// Package errors provides custom error types for the PocketLedger API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Category errors.
var (
	ErrCategoryNotFound  = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrDuplicateCategory = &AppError{Code: "DUPLICATE_CATEGORY", Message: "A category with this name already exists", StatusCode: http.StatusConflict}
	ErrBuiltinCategory   = &AppError{Code: "BUILTIN_CATEGORY", Message: "Built-in categories cannot be deleted", StatusCode: http.StatusForbidden}
)

// Card errors.
var (
	ErrCardNotFound      = &AppError{Code: "CARD_NOT_FOUND", Message: "Card not found", StatusCode: http.StatusNotFound}
	ErrNotCreditCard     = &AppError{Code: "NOT_CREDIT_CARD", Message: "Perks can only be configured on credit cards", StatusCode: http.StatusBadRequest}
	ErrPerksNotConfirmed = &AppError{Code: "PERKS_NOT_CONFIRMED", Message: "Changing the perk type clears all perks on this card and must be confirmed", StatusCode: http.StatusConflict}
)

// Perk errors.
var (
	ErrPerkNotFound  = &AppError{Code: "PERK_NOT_FOUND", Message: "Perk not found", StatusCode: http.StatusNotFound}
	ErrDuplicatePerk = &AppError{Code: "DUPLICATE_PERK", Message: "A perk for this category already exists on the card", StatusCode: http.StatusConflict}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrCardRequired        = &AppError{Code: "CARD_REQUIRED", Message: "A card is required for debit and credit payments", StatusCode: http.StatusBadRequest}
)
