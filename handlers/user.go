package handlers

import (
    "fmt"
    "net/http"

    "gorm.io/gorm"

    "investpro/middleware"
    "investpro/models"
)

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
    claims := middleware.GetUserFromContext(r)
    if claims == nil {
        sendError(w, http.StatusUnauthorized, "Invalid or missing token", nil)
        return
    }

    var user models.User
    if err := h.db.First(&user, claims.UserID).Error; err != nil {
        if err == gorm.ErrRecordNotFound {
            sendError(w, http.StatusNotFound, "User not found", nil)
            return
        }
        sendError(w, http.StatusInternalServerError, "Database error", nil)
        return
    }

    user.Password = ""
    sendJSON(w, http.StatusOK, user)
}

func (h *Handlers) GetReferralLink(w http.ResponseWriter, r *http.Request) {
    claims := middleware.GetUserFromContext(r)
    if claims == nil {
        sendError(w, http.StatusUnauthorized, "Invalid or missing token", nil)
        return
    }

    sendJSON(w, http.StatusOK, map[string]string{
        "referral_link": fmt.Sprintf("%s/%d", h.config.ReferralBase, claims.UserID),
    })
}
