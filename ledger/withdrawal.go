package ledger

import (
    "time"

    "gorm.io/gorm"

    "investpro/models"
)

// RequestWithdrawal reserves the gross amount against the wallet immediately
// and records a pending withdrawal. The rate limit is a rolling 24-hour
// window, unlike the purchase cap's calendar window. GST is deducted from the
// payout, not charged on top.
func (s *Service) RequestWithdrawal(userID uint, amount float64, method, details string) (newBalance float64, err error) {
    defer func() { observe("withdrawal_request", err) }()

    if amount <= 0 {
        return 0, ErrInvalidAmount
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
        s.rollback(tx, "withdrawal_request", userID, amount)
        if err == gorm.ErrRecordNotFound {
            return 0, ErrUserNotFound
        }
        return 0, err
    }

    if user.Balance < amount {
        s.rollback(tx, "withdrawal_request", userID, amount)
        return 0, ErrInsufficientFunds
    }

    since := time.Now().Add(-24 * time.Hour)
    var recentCount int64
    if err = tx.Model(&models.Withdrawal{}).
        Where("user_id = ? AND request_date >= ?", userID, since).
        Count(&recentCount).Error; err != nil {
        s.rollback(tx, "withdrawal_request", userID, amount)
        return 0, err
    }
    if recentCount > 0 {
        s.rollback(tx, "withdrawal_request", userID, amount)
        return 0, ErrRateLimited
    }

    gstAmount := amount * s.cfg.GSTRate
    netAmount := amount - gstAmount

    user.Balance -= amount
    if err = tx.Model(&user).Update("balance", user.Balance).Error; err != nil {
        s.rollback(tx, "withdrawal_request", userID, amount)
        return 0, err
    }

    withdrawal := models.Withdrawal{
        UserID:      userID,
        Amount:      amount,
        GSTAmount:   gstAmount,
        NetAmount:   netAmount,
        Method:      method,
        Details:     details,
        Status:      models.StatusPending,
        RequestDate: time.Now(),
    }
    if err = tx.Create(&withdrawal).Error; err != nil {
        // Re-credits the reservation.
        s.rollback(tx, "withdrawal_request", userID, amount)
        return 0, err
    }

    if err = s.commit(tx, "withdrawal_request", userID, amount); err != nil {
        return 0, err
    }
    return user.Balance, nil
}

// ApproveWithdrawal marks a pending withdrawal approved. The funds were
// already debited at request time and are presumed paid out off-platform, so
// no balance change happens here.
func (s *Service) ApproveWithdrawal(withdrawalID uint) (err error) {
    defer func() { observe("withdrawal_approve", err) }()

    var withdrawal models.Withdrawal
    if err = s.db.First(&withdrawal, withdrawalID).Error; err != nil {
        if err == gorm.ErrRecordNotFound {
            return ErrNotFound
        }
        return err
    }

    lock := s.userLock(withdrawal.UserID)
    lock.Lock()
    defer lock.Unlock()

    tx := s.db.Begin()
    if tx.Error != nil {
        return tx.Error
    }

    if err = tx.First(&withdrawal, withdrawalID).Error; err != nil {
        s.rollback(tx, "withdrawal_approve", withdrawal.UserID, withdrawal.Amount)
        return err
    }
    if withdrawal.Status != models.StatusPending {
        s.rollback(tx, "withdrawal_approve", withdrawal.UserID, withdrawal.Amount)
        return ErrInvalidState
    }

    now := time.Now()
    if err = tx.Model(&withdrawal).Updates(map[string]interface{}{
        "status":         models.StatusApproved,
        "processed_date": &now,
    }).Error; err != nil {
        s.rollback(tx, "withdrawal_approve", withdrawal.UserID, withdrawal.Amount)
        return err
    }

    return s.commit(tx, "withdrawal_approve", withdrawal.UserID, withdrawal.Amount)
}

// RejectWithdrawal marks a pending withdrawal rejected and re-credits the
// full gross amount reserved at request time.
func (s *Service) RejectWithdrawal(withdrawalID uint) (err error) {
    defer func() { observe("withdrawal_reject", err) }()

    var withdrawal models.Withdrawal
    if err = s.db.First(&withdrawal, withdrawalID).Error; err != nil {
        if err == gorm.ErrRecordNotFound {
            return ErrNotFound
        }
        return err
    }

    lock := s.userLock(withdrawal.UserID)
    lock.Lock()
    defer lock.Unlock()

    tx := s.db.Begin()
    if tx.Error != nil {
        return tx.Error
    }

    if err = tx.First(&withdrawal, withdrawalID).Error; err != nil {
        s.rollback(tx, "withdrawal_reject", withdrawal.UserID, withdrawal.Amount)
        return err
    }
    if withdrawal.Status != models.StatusPending {
        s.rollback(tx, "withdrawal_reject", withdrawal.UserID, withdrawal.Amount)
        return ErrInvalidState
    }

    now := time.Now()
    if err = tx.Model(&withdrawal).Updates(map[string]interface{}{
        "status":         models.StatusRejected,
        "processed_date": &now,
    }).Error; err != nil {
        s.rollback(tx, "withdrawal_reject", withdrawal.UserID, withdrawal.Amount)
        return err
    }

    var user models.User
    if err = tx.First(&user, withdrawal.UserID).Error; err != nil {
        s.rollback(tx, "withdrawal_reject", withdrawal.UserID, withdrawal.Amount)
        return err
    }
    user.Balance += withdrawal.Amount
    if err = tx.Model(&user).Update("balance", user.Balance).Error; err != nil {
        s.rollback(tx, "withdrawal_reject", withdrawal.UserID, withdrawal.Amount)
        return err
    }

    return s.commit(tx, "withdrawal_reject", withdrawal.UserID, withdrawal.Amount)
}
