package models

import "time"

const (
    StatusPending  = "pending"
    StatusApproved = "approved"
    StatusRejected = "rejected"
)

type Recharge struct {
    ID            uint       `json:"id" gorm:"primaryKey"`
    UserID        uint       `json:"user_id" gorm:"not null;index"`
    User          User       `json:"-" gorm:"foreignKey:UserID"`
    Amount        float64    `json:"amount" gorm:"not null"`
    UTR           string     `json:"utr" gorm:"size:64;not null"`
    Status        string     `json:"status" gorm:"size:20;default:pending;index"` // pending, approved, rejected
    RequestDate   time.Time  `json:"request_date" gorm:"not null;index"`
    ProcessedDate *time.Time `json:"processed_date"`
    CreatedAt     time.Time  `json:"created_at"`
    UpdatedAt     time.Time  `json:"updated_at"`
}

type RechargeRequest struct {
    Amount float64 `json:"amount" validate:"required,gt=0"`
    UTR    string  `json:"utr" validate:"required"`
}
