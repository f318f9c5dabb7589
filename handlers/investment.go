package handlers

import (
    "encoding/json"
    "fmt"
    "net/http"

    "investpro/middleware"
    "investpro/models"
    "investpro/utils"
)

func (h *Handlers) GetPlans(w http.ResponseWriter, r *http.Request) {
    plans, err := h.ledger.ListPlans()
    if err != nil {
        sendError(w, http.StatusInternalServerError, "Failed to fetch plans", nil)
        return
    }

    sendJSON(w, http.StatusOK, map[string]interface{}{
        "message": "Product plans fetched successfully",
        "plans":   plans,
    })
}

func (h *Handlers) PurchasePlan(w http.ResponseWriter, r *http.Request) {
    claims := middleware.GetUserFromContext(r)
    if claims == nil {
        sendError(w, http.StatusUnauthorized, "Invalid or missing token", nil)
        return
    }

    var req models.PurchaseRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        sendError(w, http.StatusBadRequest, "Invalid request body", err.Error())
        return
    }

    if err := utils.ValidateStruct(req); err != nil {
        sendError(w, http.StatusBadRequest, "Validation failed", utils.FormatValidationError(err))
        return
    }

    newBalance, err := h.ledger.PurchasePlan(claims.UserID, req.PlanID)
    if err != nil {
        sendLedgerError(w, err)
        return
    }

    h.logAudit(&claims.UserID, "CREATE", "INVESTMENT",
        fmt.Sprintf("Purchased plan %d", req.PlanID), r.RemoteAddr, r.UserAgent())

    sendJSON(w, http.StatusOK, map[string]interface{}{
        "message":     "Plan purchased successfully",
        "new_balance": newBalance,
    })
}

func (h *Handlers) GetInvestments(w http.ResponseWriter, r *http.Request) {
    claims := middleware.GetUserFromContext(r)
    if claims == nil {
        sendError(w, http.StatusUnauthorized, "Invalid or missing token", nil)
        return
    }

    var investments []models.Investment
    if err := h.db.Where("user_id = ?", claims.UserID).
        Order("purchase_date DESC").
        Find(&investments).Error; err != nil {
        sendError(w, http.StatusInternalServerError, "Failed to fetch investments", nil)
        return
    }

    sendJSON(w, http.StatusOK, map[string]interface{}{
        "message":     "Investments fetched successfully",
        "investments": investments,
    })
}
