package handlers

import (
    "encoding/json"
    "log"
    "net/http"

    "gorm.io/gorm"

    "investpro/models"
    "investpro/utils"
)

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
    var req models.RegisterRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        sendError(w, http.StatusBadRequest, "Invalid request body", err.Error())
        return
    }

    if err := utils.ValidateStruct(req); err != nil {
        sendError(w, http.StatusBadRequest, "Validation failed", utils.FormatValidationError(err))
        return
    }

    var existingUser models.User
    if err := h.db.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
        sendError(w, http.StatusConflict, "User already exists with this email", nil)
        return
    }

    hashedPassword, err := utils.HashPassword(req.Password)
    if err != nil {
        sendError(w, http.StatusInternalServerError, "Failed to hash password", nil)
        return
    }

    isAdmin := false
    if req.AdminCode != "" {
        if req.AdminCode != h.config.AdminCode {
            sendError(w, http.StatusBadRequest, "Invalid admin code", nil)
            return
        }
        isAdmin = true
        log.Printf("Admin user registered with admin code: %s", req.Email)
    }

    // Referrer must exist; a dangling id is dropped silently rather than
    // blocking registration.
    var referredBy *uint
    if req.ReferredBy != nil {
        var referrer models.User
        if err := h.db.First(&referrer, *req.ReferredBy).Error; err == nil {
            referredBy = req.ReferredBy
        }
    }

    user := models.User{
        Name:       req.Name,
        Email:      req.Email,
        Mobile:     req.Mobile,
        Password:   hashedPassword,
        Balance:    0,
        IsActive:   true,
        IsAdmin:    isAdmin,
        ReferredBy: referredBy,
    }

    if err := h.db.Create(&user).Error; err != nil {
        log.Printf("Failed to create user %s: %v", req.Email, err)
        sendError(w, http.StatusInternalServerError, "Failed to register user", nil)
        return
    }

    h.logAudit(&user.ID, "CREATE", "USER", "User registered", r.RemoteAddr, r.UserAgent())

    token, err := utils.GenerateToken(user.ID, user.Email, user.IsAdmin)
    if err != nil {
        sendError(w, http.StatusInternalServerError, "Failed to generate token", nil)
        return
    }

    user.Password = ""
    sendJSON(w, http.StatusCreated, models.LoginResponse{
        Token: token,
        User:  user,
    })
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
    var req models.LoginRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        sendError(w, http.StatusBadRequest, "Invalid request body", err.Error())
        return
    }

    if err := utils.ValidateStruct(req); err != nil {
        sendError(w, http.StatusBadRequest, "Validation failed", utils.FormatValidationError(err))
        return
    }

    var user models.User
    if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
        if err == gorm.ErrRecordNotFound {
            sendError(w, http.StatusUnauthorized, "Invalid credentials", nil)
            return
        }
        sendError(w, http.StatusInternalServerError, "Database error", nil)
        return
    }

    if !utils.CheckPasswordHash(req.Password, user.Password) {
        sendError(w, http.StatusUnauthorized, "Invalid credentials", nil)
        return
    }

    if !user.IsActive {
        sendError(w, http.StatusForbidden, "Account is deactivated", nil)
        return
    }

    token, err := utils.GenerateToken(user.ID, user.Email, user.IsAdmin)
    if err != nil {
        log.Printf("Failed to generate token for user %s: %v", req.Email, err)
        sendError(w, http.StatusInternalServerError, "Failed to generate token", nil)
        return
    }

    h.logAudit(&user.ID, "LOGIN", "AUTH", "User logged in", r.RemoteAddr, r.UserAgent())

    user.Password = ""
    sendJSON(w, http.StatusOK, models.LoginResponse{
        Token: token,
        User:  user,
    })
}
