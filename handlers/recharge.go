package handlers

import (
    "encoding/json"
    "fmt"
    "net/http"

    "investpro/middleware"
    "investpro/models"
    "investpro/utils"
)

func (h *Handlers) RequestRecharge(w http.ResponseWriter, r *http.Request) {
    claims := middleware.GetUserFromContext(r)
    if claims == nil {
        sendError(w, http.StatusUnauthorized, "Invalid or missing token", nil)
        return
    }

    var req models.RechargeRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        sendError(w, http.StatusBadRequest, "Invalid request body", err.Error())
        return
    }

    if err := utils.ValidateStruct(req); err != nil {
        sendError(w, http.StatusBadRequest, "Validation failed", utils.FormatValidationError(err))
        return
    }

    if err := h.ledger.RequestRecharge(claims.UserID, req.Amount, utils.SanitizeString(req.UTR)); err != nil {
        sendLedgerError(w, err)
        return
    }

    h.logAudit(&claims.UserID, "CREATE", "RECHARGE",
        fmt.Sprintf("Requested recharge of %.2f", req.Amount), r.RemoteAddr, r.UserAgent())

    sendJSON(w, http.StatusOK, map[string]string{
        "message": "Recharge request submitted successfully. Waiting for admin approval.",
    })
}

func (h *Handlers) GetRecharges(w http.ResponseWriter, r *http.Request) {
    claims := middleware.GetUserFromContext(r)
    if claims == nil {
        sendError(w, http.StatusUnauthorized, "Invalid or missing token", nil)
        return
    }

    var recharges []models.Recharge
    if err := h.db.Where("user_id = ?", claims.UserID).
        Order("request_date DESC").
        Find(&recharges).Error; err != nil {
        sendError(w, http.StatusInternalServerError, "Failed to fetch recharges", nil)
        return
    }

    sendJSON(w, http.StatusOK, map[string]interface{}{
        "message":   "Recharges fetched successfully",
        "recharges": recharges,
    })
}
