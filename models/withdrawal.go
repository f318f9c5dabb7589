package models

import "time"

const (
    MethodBank = "bank"
    MethodUPI  = "upi"
)

type Withdrawal struct {
    ID            uint       `json:"id" gorm:"primaryKey"`
    UserID        uint       `json:"user_id" gorm:"not null;index"`
    User          User       `json:"-" gorm:"foreignKey:UserID"`
    Amount        float64    `json:"amount" gorm:"not null"` // gross, debited at request time
    GSTAmount     float64    `json:"gst_amount" gorm:"not null"`
    NetAmount     float64    `json:"net_amount" gorm:"not null"`
    Method        string     `json:"method" gorm:"size:10;not null"` // bank, upi
    Details       string     `json:"details" gorm:"not null"`        // destination, AES-encrypted at rest
    Status        string     `json:"status" gorm:"size:20;default:pending;index"` // pending, approved, rejected
    RequestDate   time.Time  `json:"request_date" gorm:"not null;index"`
    ProcessedDate *time.Time `json:"processed_date"`
    CreatedAt     time.Time  `json:"created_at"`
    UpdatedAt     time.Time  `json:"updated_at"`
}

type WithdrawalRequest struct {
    Amount  float64 `json:"amount" validate:"required,gt=0"`
    Method  string  `json:"method" validate:"required,oneof=bank upi"`
    Details string  `json:"details" validate:"required,min=5"`
}
