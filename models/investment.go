package models

import "time"

const (
    InvestmentActive    = "active"
    InvestmentCompleted = "completed"
)

type Investment struct {
    ID            uint      `json:"id" gorm:"primaryKey"`
    UserID        uint      `json:"user_id" gorm:"not null;index"`
    User          User      `json:"-" gorm:"foreignKey:UserID"`
    PlanID        uint      `json:"plan_id" gorm:"not null"`
    PlanName      string    `json:"plan_name" gorm:"size:50;not null"` // snapshot, survives catalog edits
    Amount        float64   `json:"amount" gorm:"not null"`
    DailyIncome   float64   `json:"daily_income" gorm:"not null"`
    DurationDays  int       `json:"duration_days" gorm:"not null"`
    DaysLeft      int       `json:"days_left" gorm:"not null"`
    LastAccruedOn string    `json:"last_accrued_on" gorm:"size:10"` // YYYY-MM-DD, guards same-day re-runs
    PurchaseDate  time.Time `json:"purchase_date" gorm:"not null;index"`
    Status        string    `json:"status" gorm:"size:20;default:active"` // active, completed
    CreatedAt     time.Time `json:"created_at"`
    UpdatedAt     time.Time `json:"updated_at"`
}
