package handlers

import (
    "encoding/json"
    "fmt"
    "net/http"

    "investpro/middleware"
    "investpro/models"
    "investpro/utils"
)

func (h *Handlers) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
    claims := middleware.GetUserFromContext(r)
    if claims == nil {
        sendError(w, http.StatusUnauthorized, "Invalid or missing token", nil)
        return
    }

    var req models.WithdrawalRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        sendError(w, http.StatusBadRequest, "Invalid request body", err.Error())
        return
    }

    if err := utils.ValidateStruct(req); err != nil {
        sendError(w, http.StatusBadRequest, "Validation failed", utils.FormatValidationError(err))
        return
    }

    // Destination details are stored encrypted; the ledger treats them as
    // opaque.
    encryptedDetails, err := utils.EncryptSensitiveData(utils.SanitizeString(req.Details))
    if err != nil {
        sendError(w, http.StatusInternalServerError, "Failed to protect withdrawal details", nil)
        return
    }

    newBalance, err := h.ledger.RequestWithdrawal(claims.UserID, req.Amount, req.Method, encryptedDetails)
    if err != nil {
        sendLedgerError(w, err)
        return
    }

    h.logAudit(&claims.UserID, "CREATE", "WITHDRAWAL",
        fmt.Sprintf("Requested withdrawal of %.2f via %s", req.Amount, req.Method), r.RemoteAddr, r.UserAgent())

    sendJSON(w, http.StatusOK, map[string]interface{}{
        "message":     "Withdrawal request submitted successfully",
        "new_balance": newBalance,
    })
}

func (h *Handlers) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
    claims := middleware.GetUserFromContext(r)
    if claims == nil {
        sendError(w, http.StatusUnauthorized, "Invalid or missing token", nil)
        return
    }

    var withdrawals []models.Withdrawal
    if err := h.db.Where("user_id = ?", claims.UserID).
        Order("request_date DESC").
        Find(&withdrawals).Error; err != nil {
        sendError(w, http.StatusInternalServerError, "Failed to fetch withdrawals", nil)
        return
    }

    for i := range withdrawals {
        if details, err := utils.DecryptSensitiveData(withdrawals[i].Details); err == nil {
            withdrawals[i].Details = details
        }
    }

    sendJSON(w, http.StatusOK, map[string]interface{}{
        "message":     "Withdrawals fetched successfully",
        "withdrawals": withdrawals,
    })
}
