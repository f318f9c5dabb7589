package ledger

import (
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "investpro/models"
)

// AdjustBalance applies a signed manual correction to a user's wallet and
// records it in the append-only adjustment log. A negative delta may not take
// the balance below zero.
func (s *Service) AdjustBalance(adminID, userID uint, amount float64, reason string) (newBalance float64, err error) {
    defer func() { observe("balance_adjust", err) }()

    lock := s.userLock(userID)
    lock.Lock()
    defer lock.Unlock()

    tx := s.db.Begin()
    if tx.Error != nil {
        return 0, tx.Error
    }

    var user models.User
    if err = tx.First(&user, userID).Error; err != nil {
        s.rollback(tx, "balance_adjust", userID, amount)
        if err == gorm.ErrRecordNotFound {
            return 0, ErrUserNotFound
        }
        return 0, err
    }

    if user.Balance+amount < 0 {
        s.rollback(tx, "balance_adjust", userID, amount)
        return 0, ErrInsufficientFunds
    }

    user.Balance += amount
    if err = tx.Model(&user).Update("balance", user.Balance).Error; err != nil {
        s.rollback(tx, "balance_adjust", userID, amount)
        return 0, err
    }

    adjustment := models.BalanceAdjustment{
        UserID:         userID,
        Amount:         amount,
        Reason:         reason,
        AdminID:        adminID,
        Reference:      uuid.New().String(),
        AdjustmentDate: time.Now(),
    }
    if err = tx.Create(&adjustment).Error; err != nil {
        s.rollback(tx, "balance_adjust", userID, amount)
        return 0, err
    }

    if err = s.commit(tx, "balance_adjust", userID, amount); err != nil {
        return 0, err
    }
    return user.Balance, nil
}
