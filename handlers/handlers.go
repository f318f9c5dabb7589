package handlers

import (
    "encoding/json"
    "errors"
    "net/http"
    "time"

    "gorm.io/gorm"

    "investpro/config"
    "investpro/ledger"
    "investpro/models"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
    Status    int         `json:"status"`
    Error     string      `json:"error"`
    Details   interface{} `json:"details,omitempty"`
    Timestamp time.Time   `json:"timestamp"`
}

func sendError(w http.ResponseWriter, status int, err string, details interface{}) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    json.NewEncoder(w).Encode(ErrorResponse{
        Status:    status,
        Error:     err,
        Details:   details,
        Timestamp: time.Now(),
    })
}

func sendJSON(w http.ResponseWriter, status int, payload interface{}) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    json.NewEncoder(w).Encode(payload)
}

type Handlers struct {
    db     *gorm.DB
    config *config.Config
    ledger *ledger.Service
}

func NewHandlers(db *gorm.DB, cfg *config.Config, svc *ledger.Service) *Handlers {
    return &Handlers{
        db:     db,
        config: cfg,
        ledger: svc,
    }
}

func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
    sendJSON(w, http.StatusOK, map[string]interface{}{
        "status":    "healthy",
        "timestamp": time.Now(),
        "service":   "InvestPro",
        "version":   "1.0.0",
    })
}

func (h *Handlers) logAudit(userID *uint, action, resource, details, ipAddress, userAgent string) {
    audit := models.AuditLog{
        UserID:    userID,
        Action:    action,
        Resource:  resource,
        Details:   details,
        IPAddress: ipAddress,
        UserAgent: userAgent,
    }
    h.db.Create(&audit)
}

// sendLedgerError maps ledger sentinel errors to HTTP codes. Anything not in
// the taxonomy is a persistence failure.
func sendLedgerError(w http.ResponseWriter, err error) {
    switch {
    case errors.Is(err, ledger.ErrInvalidAmount),
        errors.Is(err, ledger.ErrInvalidUTR),
        errors.Is(err, ledger.ErrInvalidPlan),
        errors.Is(err, ledger.ErrInsufficientFunds),
        errors.Is(err, ledger.ErrMonthlyLimit),
        errors.Is(err, ledger.ErrRateLimited),
        errors.Is(err, ledger.ErrInvalidState):
        sendError(w, http.StatusBadRequest, err.Error(), nil)
    case errors.Is(err, ledger.ErrNotFound),
        errors.Is(err, ledger.ErrUserNotFound):
        sendError(w, http.StatusNotFound, err.Error(), nil)
    default:
        sendError(w, http.StatusInternalServerError, "Internal server error", err.Error())
    }
}
