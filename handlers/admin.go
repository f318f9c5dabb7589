package handlers

import (
    "encoding/json"
    "fmt"
    "net/http"
    "strconv"

    "github.com/gorilla/mux"

    "investpro/middleware"
    "investpro/models"
    "investpro/utils"
)

func parseID(r *http.Request) (uint, error) {
    id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
    return uint(id), err
}

func (h *Handlers) GetPendingRecharges(w http.ResponseWriter, r *http.Request) {
    var recharges []models.Recharge
    if err := h.db.Where("status = ?", models.StatusPending).
        Order("request_date ASC").
        Find(&recharges).Error; err != nil {
        sendError(w, http.StatusInternalServerError, "Failed to fetch pending recharges", nil)
        return
    }

    sendJSON(w, http.StatusOK, map[string]interface{}{
        "message":   "Pending recharges fetched successfully",
        "recharges": recharges,
    })
}

func (h *Handlers) GetPendingWithdrawals(w http.ResponseWriter, r *http.Request) {
    var withdrawals []models.Withdrawal
    if err := h.db.Where("status = ?", models.StatusPending).
        Order("request_date ASC").
        Find(&withdrawals).Error; err != nil {
        sendError(w, http.StatusInternalServerError, "Failed to fetch pending withdrawals", nil)
        return
    }

    // Admin needs the destination to pay out.
    for i := range withdrawals {
        if details, err := utils.DecryptSensitiveData(withdrawals[i].Details); err == nil {
            withdrawals[i].Details = details
        }
    }

    sendJSON(w, http.StatusOK, map[string]interface{}{
        "message":     "Pending withdrawals fetched successfully",
        "withdrawals": withdrawals,
    })
}

func (h *Handlers) ApproveRecharge(w http.ResponseWriter, r *http.Request) {
    claims := middleware.GetUserFromContext(r)
    id, err := parseID(r)
    if err != nil {
        sendError(w, http.StatusBadRequest, "Invalid recharge id", nil)
        return
    }

    if err := h.ledger.ApproveRecharge(id); err != nil {
        sendLedgerError(w, err)
        return
    }

    h.logAudit(&claims.UserID, "UPDATE", "RECHARGE",
        fmt.Sprintf("Approved recharge %d", id), r.RemoteAddr, r.UserAgent())

    sendJSON(w, http.StatusOK, map[string]string{
        "message": "Recharge approved successfully",
    })
}

func (h *Handlers) RejectRecharge(w http.ResponseWriter, r *http.Request) {
    claims := middleware.GetUserFromContext(r)
    id, err := parseID(r)
    if err != nil {
        sendError(w, http.StatusBadRequest, "Invalid recharge id", nil)
        return
    }

    if err := h.ledger.RejectRecharge(id); err != nil {
        sendLedgerError(w, err)
        return
    }

    h.logAudit(&claims.UserID, "UPDATE", "RECHARGE",
        fmt.Sprintf("Rejected recharge %d", id), r.RemoteAddr, r.UserAgent())

    sendJSON(w, http.StatusOK, map[string]string{
        "message": "Recharge rejected successfully",
    })
}

func (h *Handlers) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
    claims := middleware.GetUserFromContext(r)
    id, err := parseID(r)
    if err != nil {
        sendError(w, http.StatusBadRequest, "Invalid withdrawal id", nil)
        return
    }

    if err := h.ledger.ApproveWithdrawal(id); err != nil {
        sendLedgerError(w, err)
        return
    }

    h.logAudit(&claims.UserID, "UPDATE", "WITHDRAWAL",
        fmt.Sprintf("Approved withdrawal %d", id), r.RemoteAddr, r.UserAgent())

    sendJSON(w, http.StatusOK, map[string]string{
        "message": "Withdrawal approved successfully",
    })
}

func (h *Handlers) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
    claims := middleware.GetUserFromContext(r)
    id, err := parseID(r)
    if err != nil {
        sendError(w, http.StatusBadRequest, "Invalid withdrawal id", nil)
        return
    }

    if err := h.ledger.RejectWithdrawal(id); err != nil {
        sendLedgerError(w, err)
        return
    }

    h.logAudit(&claims.UserID, "UPDATE", "WITHDRAWAL",
        fmt.Sprintf("Rejected withdrawal %d and refunded amount", id), r.RemoteAddr, r.UserAgent())

    sendJSON(w, http.StatusOK, map[string]string{
        "message": "Withdrawal rejected successfully and amount refunded",
    })
}

func (h *Handlers) SearchUsers(w http.ResponseWriter, r *http.Request) {
    query := r.URL.Query().Get("query")
    if len(query) < 2 {
        sendError(w, http.StatusBadRequest, "Query must be at least 2 characters long", nil)
        return
    }

    pattern := "%" + query + "%"
    var users []models.User
    if err := h.db.Select("id, name, email, mobile, balance, total_earnings, is_active").
        Where("name LIKE ? OR email LIKE ? OR mobile LIKE ?", pattern, pattern, pattern).
        Limit(20).
        Find(&users).Error; err != nil {
        sendError(w, http.StatusInternalServerError, "Failed to search users", nil)
        return
    }

    sendJSON(w, http.StatusOK, map[string]interface{}{
        "message": "Users searched successfully",
        "users":   users,
    })
}

func (h *Handlers) AdjustBalance(w http.ResponseWriter, r *http.Request) {
    claims := middleware.GetUserFromContext(r)
    if claims == nil {
        sendError(w, http.StatusUnauthorized, "Invalid or missing token", nil)
        return
    }

    var req models.AdjustBalanceRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        sendError(w, http.StatusBadRequest, "Invalid request body", err.Error())
        return
    }

    if err := utils.ValidateStruct(req); err != nil {
        sendError(w, http.StatusBadRequest, "Validation failed", utils.FormatValidationError(err))
        return
    }

    newBalance, err := h.ledger.AdjustBalance(claims.UserID, req.UserID, req.Amount, req.Reason)
    if err != nil {
        sendLedgerError(w, err)
        return
    }

    h.logAudit(&claims.UserID, "UPDATE", "BALANCE",
        fmt.Sprintf("Adjusted balance of user %d by %.2f: %s", req.UserID, req.Amount, req.Reason),
        r.RemoteAddr, r.UserAgent())

    sendJSON(w, http.StatusOK, map[string]interface{}{
        "message":     "User balance adjusted successfully",
        "new_balance": newBalance,
    })
}

func (h *Handlers) GetBalanceAdjustments(w http.ResponseWriter, r *http.Request) {
    page, _ := strconv.Atoi(r.URL.Query().Get("page"))
    if page <= 0 {
        page = 1
    }
    limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
    if limit <= 0 || limit > 100 {
        limit = 50
    }
    offset := (page - 1) * limit

    var adjustments []models.BalanceAdjustment
    if err := h.db.Order("adjustment_date DESC").
        Limit(limit).
        Offset(offset).
        Find(&adjustments).Error; err != nil {
        sendError(w, http.StatusInternalServerError, "Failed to fetch balance adjustments", nil)
        return
    }

    sendJSON(w, http.StatusOK, map[string]interface{}{
        "message":     "Balance adjustments fetched successfully",
        "adjustments": adjustments,
    })
}

func (h *Handlers) RunAccrual(w http.ResponseWriter, r *http.Request) {
    claims := middleware.GetUserFromContext(r)

    credited, err := h.ledger.AccrueDaily()
    if err != nil {
        sendError(w, http.StatusInternalServerError, "Accrual sweep failed", err.Error())
        return
    }

    h.logAudit(&claims.UserID, "RUN", "ACCRUAL",
        fmt.Sprintf("Manual accrual sweep credited %d investment(s)", credited), r.RemoteAddr, r.UserAgent())

    sendJSON(w, http.StatusOK, map[string]interface{}{
        "message":        "Accrual sweep completed",
        "credited_count": credited,
    })
}
