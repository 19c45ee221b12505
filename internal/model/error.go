package model

// Standard error codes surfaced to the user.
const (
	ErrCodeDifferentBusiness = "DIFFERENT_BUSINESS"
	ErrCodeEmptyCart         = "EMPTY_CART"
	ErrCodeNotCancellable    = "NOT_CANCELLABLE"
	ErrCodeVendorGated       = "VENDOR_GATED"
	ErrCodeRatingNotAllowed  = "RATING_NOT_ALLOWED"
	ErrCodeInvalidRating     = "INVALID_RATING"
	ErrCodeDateUnavailable   = "DATE_UNAVAILABLE"
	ErrCodeSessionExpired    = "SESSION_EXPIRED"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
)

// DomainError is a business-rule failure with a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrDifferentBusiness = NewDomainError(ErrCodeDifferentBusiness, "Cart already holds items from another business; clear it before adding this item")
	ErrEmptyCart         = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrNotCancellable    = NewDomainError(ErrCodeNotCancellable, "Order can no longer be cancelled")
	ErrVendorGated       = NewDomainError(ErrCodeVendorGated, "Vendors may reply only after the client has sent the first message")
	ErrRatingNotAllowed  = NewDomainError(ErrCodeRatingNotAllowed, "Ratings require a delivered order containing this item")
	ErrInvalidRating     = NewDomainError(ErrCodeInvalidRating, "Rating must be between 1 and 5 stars")
	ErrDateUnavailable   = NewDomainError(ErrCodeDateUnavailable, "Selected date is not available for this item")
	ErrSessionExpired    = NewDomainError(ErrCodeSessionExpired, "Session expired, please log in again")
	ErrInvalidQuantity   = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
)
