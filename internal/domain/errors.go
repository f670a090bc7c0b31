package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Error kinds
	ErrMsgNotFound          = "not found"
	ErrMsgInvalidInput      = "invalid input"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgForbidden         = "forbidden"
	ErrMsgInvalidOperation  = "invalid operation"

	// Entity prefixes for not-found errors
	ErrMsgUserPrefix    = "user"
	ErrMsgItemPrefix    = "item"
	ErrMsgCasePrefix    = "case"
	ErrMsgListingPrefix = "listing"

	// Validation details
	ErrMsgInvalidPrice  = "price must be a positive whole number"
	ErrMsgPriceTooHigh  = "price exceeds maximum"
	ErrMsgInvalidUserID = "user id must be 1-64 characters"
	ErrMsgInvalidAmount = "amount must be positive"

	// Market rule violations
	ErrMsgCannotBuyOwnListing = "cannot buy own listing"
	ErrMsgNotListingOwner     = "only the seller may cancel a listing"

	// Transaction errors
	ErrMsgTxClosed = "tx is closed"
)

// Error kinds. Every error returned by a service wraps exactly one of these,
// so callers classify failures with errors.Is.
var (
	ErrNotFound          = errors.New(ErrMsgNotFound)
	ErrInvalidInput      = errors.New(ErrMsgInvalidInput)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrForbidden         = errors.New(ErrMsgForbidden)
	ErrInvalidOperation  = errors.New(ErrMsgInvalidOperation)
)

// Specific domain errors
var (
	// Not found
	ErrUserNotFound    = fmt.Errorf("%s %w", ErrMsgUserPrefix, ErrNotFound)
	ErrItemNotFound    = fmt.Errorf("%s %w", ErrMsgItemPrefix, ErrNotFound)
	ErrCaseNotFound    = fmt.Errorf("%s %w", ErrMsgCasePrefix, ErrNotFound)
	ErrListingNotFound = fmt.Errorf("%s %w", ErrMsgListingPrefix, ErrNotFound)

	// Invalid input
	ErrInvalidPrice  = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgInvalidPrice)
	ErrPriceTooHigh  = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgPriceTooHigh)
	ErrInvalidUserID = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgInvalidUserID)
	ErrInvalidAmount = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgInvalidAmount)

	// Rule violations
	ErrCannotBuyOwnListing = fmt.Errorf("%w: %s", ErrInvalidOperation, ErrMsgCannotBuyOwnListing)
	ErrNotListingOwner     = fmt.Errorf("%w: %s", ErrForbidden, ErrMsgNotListingOwner)

	// Transactions
	ErrTxClosed = errors.New(ErrMsgTxClosed)
)
