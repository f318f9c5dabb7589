package ledger

import (
    "log"
    "time"

    "investpro/models"
)

// AccrueDaily sweeps every active investment and credits one day of income to
// the owning user. Each investment is stamped with the date it was last
// accrued, so re-running the sweep on the same day is a no-op for already
// processed rows. Per-investment failures are logged and skipped; the sweep
// keeps going.
func (s *Service) AccrueDaily() (creditedCount int, err error) {
    defer func() { observe("accrual", err) }()

    today := time.Now().Format("2006-01-02")

    var investments []models.Investment
    if err = s.db.
        Where("status = ? AND days_left > 0 AND last_accrued_on <> ?", models.InvestmentActive, today).
        Order("id ASC").
        Find(&investments).Error; err != nil {
        return 0, err
    }

    for _, inv := range investments {
        if accErr := s.accrueOne(inv.ID, today); accErr != nil {
            log.Printf("accrual failed for investment %d (user %d): %v", inv.ID, inv.UserID, accErr)
            continue
        }
        creditedCount++
        accrualCreditsTotal.Inc()
    }
    return creditedCount, nil
}

func (s *Service) accrueOne(investmentID uint, today string) error {
    var inv models.Investment
    if err := s.db.First(&inv, investmentID).Error; err != nil {
        return err
    }

    lock := s.userLock(inv.UserID)
    lock.Lock()
    defer lock.Unlock()

    tx := s.db.Begin()
    if tx.Error != nil {
        return tx.Error
    }

    // Re-check under the lock; an admin action or a concurrent sweep may have
    // advanced this row since the listing query.
    if err := tx.First(&inv, investmentID).Error; err != nil {
        s.rollback(tx, "accrual", inv.UserID, inv.DailyIncome)
        return err
    }
    if inv.Status != models.InvestmentActive || inv.DaysLeft <= 0 || inv.LastAccruedOn == today {
        s.rollback(tx, "accrual", inv.UserID, inv.DailyIncome)
        return nil
    }

    var user models.User
    if err := tx.First(&user, inv.UserID).Error; err != nil {
        s.rollback(tx, "accrual", inv.UserID, inv.DailyIncome)
        return err
    }

    user.Balance += inv.DailyIncome
    user.TotalEarnings += inv.DailyIncome
    if err := tx.Model(&user).Updates(map[string]interface{}{
        "balance":        user.Balance,
        "total_earnings": user.TotalEarnings,
    }).Error; err != nil {
        s.rollback(tx, "accrual", inv.UserID, inv.DailyIncome)
        return err
    }

    inv.DaysLeft--
    inv.LastAccruedOn = today
    if inv.DaysLeft == 0 {
        inv.Status = models.InvestmentCompleted
    }
    if err := tx.Model(&inv).Updates(map[string]interface{}{
        "days_left":       inv.DaysLeft,
        "last_accrued_on": inv.LastAccruedOn,
        "status":          inv.Status,
    }).Error; err != nil {
        s.rollback(tx, "accrual", inv.UserID, inv.DailyIncome)
        return err
    }

    return s.commit(tx, "accrual", inv.UserID, inv.DailyIncome)
}
