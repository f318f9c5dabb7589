package ledger

import (
    "time"

    "gorm.io/gorm"

    "investpro/models"
)

// PurchasePlan debits the plan price and records the investment. Preconditions
// are checked in order: plan exists, balance covers the price, no other
// purchase this calendar month. The monthly window resets at midnight on the
// 1st regardless of when the last purchase occurred.
func (s *Service) PurchasePlan(userID, planID uint) (newBalance float64, err error) {
    defer func() { observe("purchase", err) }()

    plan, err := s.GetPlan(planID)
    if err != nil {
        return 0, err
    }

    lock := s.userLock(userID)
    lock.Lock()
    defer lock.Unlock()

    tx := s.db.Begin()
    if tx.Error != nil {
        return 0, tx.Error
    }

    var user models.User
    if err = tx.First(&user, userID).Error; err != nil {
        s.rollback(tx, "purchase", userID, plan.Price)
        if err == gorm.ErrRecordNotFound {
            return 0, ErrUserNotFound
        }
        return 0, err
    }

    if user.Balance < plan.Price {
        s.rollback(tx, "purchase", userID, plan.Price)
        return 0, ErrInsufficientFunds
    }

    now := time.Now()
    startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

    var monthCount int64
    if err = tx.Model(&models.Investment{}).
        Where("user_id = ? AND purchase_date >= ?", userID, startOfMonth).
        Count(&monthCount).Error; err != nil {
        s.rollback(tx, "purchase", userID, plan.Price)
        return 0, err
    }
    if monthCount > 0 {
        s.rollback(tx, "purchase", userID, plan.Price)
        return 0, ErrMonthlyLimit
    }

    user.Balance -= plan.Price
    if err = tx.Model(&user).Update("balance", user.Balance).Error; err != nil {
        s.rollback(tx, "purchase", userID, plan.Price)
        return 0, err
    }

    investment := models.Investment{
        UserID:       userID,
        PlanID:       plan.ID,
        PlanName:     plan.Name,
        Amount:       plan.Price,
        DailyIncome:  plan.DailyIncome,
        DurationDays: plan.DurationDays,
        DaysLeft:     plan.DurationDays,
        PurchaseDate: now,
        Status:       models.InvestmentActive,
    }
    if err = tx.Create(&investment).Error; err != nil {
        // Re-credits the debit above.
        s.rollback(tx, "purchase", userID, plan.Price)
        return 0, err
    }

    if err = s.commit(tx, "purchase", userID, plan.Price); err != nil {
        return 0, err
    }
    return user.Balance, nil
}
