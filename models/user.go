package models

import (
    "time"

    "gorm.io/gorm"
)

type User struct {
    ID            uint           `json:"id" gorm:"primaryKey"`
    Name          string         `json:"name" gorm:"not null"`
    Email         string         `json:"email" gorm:"uniqueIndex;not null"`
    Mobile        string         `json:"mobile" gorm:"index"`
    Password      string         `json:"-" gorm:"not null"`
    Balance       float64        `json:"balance" gorm:"default:0"`
    TotalEarnings float64        `json:"total_earnings" gorm:"default:0"` // cumulative accrued profit
    IsActive      bool           `json:"is_active" gorm:"default:true"`
    IsAdmin       bool           `json:"is_admin" gorm:"default:false"`
    ReferredBy    *uint          `json:"referred_by"`
    CreatedAt     time.Time      `json:"created_at"`
    UpdatedAt     time.Time      `json:"updated_at"`
    DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

type RegisterRequest struct {
    Name       string `json:"name" validate:"required,min=2"`
    Email      string `json:"email" validate:"required,email"`
    Mobile     string `json:"mobile" validate:"omitempty,min=10,max=15"`
    Password   string `json:"password" validate:"required,min=8"`
    ReferredBy *uint  `json:"referred_by,omitempty"`
    AdminCode  string `json:"admin_code,omitempty"` // Optional field for admin registration
}

type LoginRequest struct {
    Email    string `json:"email" validate:"required,email"`
    Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
    Token string `json:"token"`
    User  User   `json:"user"`
}
