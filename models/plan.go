package models

import "time"

// Plan is an immutable catalog entry. totalReturn >= price for every row the
// platform offers.
type Plan struct {
    ID           uint      `json:"id" gorm:"primaryKey"`
    Name         string    `json:"name" gorm:"size:50;uniqueIndex;not null"`
    Price        float64   `json:"price" gorm:"not null"`
    DailyIncome  float64   `json:"daily_income" gorm:"not null"`
    TotalReturn  float64   `json:"total_return" gorm:"not null"`
    DurationDays int       `json:"duration_days" gorm:"not null"`
    Category     string    `json:"category" gorm:"size:20"` // beginner, intermediate, advanced, premium
    CreatedAt    time.Time `json:"-"`
    UpdatedAt    time.Time `json:"-"`
}

type PurchaseRequest struct {
    PlanID uint `json:"plan_id" validate:"required,gt=0"`
}
