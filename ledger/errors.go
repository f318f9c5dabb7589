package ledger

import "errors"

// Sentinel errors returned by ledger transitions. Handlers map these to HTTP
// status codes; anything else is a persistence failure.
var (
    ErrUserNotFound      = errors.New("user not found")
    ErrInvalidPlan       = errors.New("invalid plan selected")
    ErrInsufficientFunds = errors.New("insufficient balance")
    ErrMonthlyLimit      = errors.New("only one plan can be purchased per month")
    ErrRateLimited       = errors.New("only one withdrawal allowed every 24 hours")
    ErrInvalidAmount     = errors.New("amount must be positive")
    ErrInvalidUTR        = errors.New("valid UTR is required")
    ErrNotFound          = errors.New("record not found")
    ErrInvalidState      = errors.New("record is not pending")
)
