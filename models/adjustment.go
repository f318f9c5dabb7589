package models

import "time"

// BalanceAdjustment is the append-only audit row for manual admin corrections.
type BalanceAdjustment struct {
    ID             uint      `json:"id" gorm:"primaryKey"`
    UserID         uint      `json:"user_id" gorm:"not null;index"`
    User           User      `json:"-" gorm:"foreignKey:UserID"`
    Amount         float64   `json:"amount" gorm:"not null"` // signed delta
    Reason         string    `json:"reason" gorm:"not null"`
    AdminID        uint      `json:"admin_id" gorm:"not null"`
    Reference      string    `json:"reference" gorm:"size:36;uniqueIndex"`
    AdjustmentDate time.Time `json:"adjustment_date" gorm:"not null"`
    CreatedAt      time.Time `json:"created_at"`
}

type AdjustBalanceRequest struct {
    UserID uint    `json:"user_id" validate:"required,gt=0"`
    Amount float64 `json:"amount" validate:"required"`
    Reason string  `json:"reason" validate:"required,min=3"`
}
