package ledger

import (
    "regexp"
    "time"

    "gorm.io/gorm"

    "investpro/models"
)

var utrNumericRe = regexp.MustCompile(`^[0-9]+$`)

// RequestRecharge records a pending deposit claim. Nothing is credited until
// an admin confirms the transfer against the supplied UTR.
func (s *Service) RequestRecharge(userID uint, amount float64, utr string) (err error) {
    defer func() { observe("recharge_request", err) }()

    if amount <= 0 {
        return ErrInvalidAmount
    }
    if len(utr) < s.cfg.UTRMinLength {
        return ErrInvalidUTR
    }
    if s.cfg.UTRNumeric && !utrNumericRe.MatchString(utr) {
        return ErrInvalidUTR
    }

    var user models.User
    if err = s.db.First(&user, userID).Error; err != nil {
        if err == gorm.ErrRecordNotFound {
            return ErrUserNotFound
        }
        return err
    }

    recharge := models.Recharge{
        UserID:      userID,
        Amount:      amount,
        UTR:         utr,
        Status:      models.StatusPending,
        RequestDate: time.Now(),
    }
    err = s.db.Create(&recharge).Error
    return err
}

// ApproveRecharge credits the user and marks the recharge approved in one
// transaction; a failed credit reverts the status to pending.
func (s *Service) ApproveRecharge(rechargeID uint) (err error) {
    defer func() { observe("recharge_approve", err) }()

    var recharge models.Recharge
    if err = s.db.First(&recharge, rechargeID).Error; err != nil {
        if err == gorm.ErrRecordNotFound {
            return ErrNotFound
        }
        return err
    }

    lock := s.userLock(recharge.UserID)
    lock.Lock()
    defer lock.Unlock()

    tx := s.db.Begin()
    if tx.Error != nil {
        return tx.Error
    }

    if err = tx.First(&recharge, rechargeID).Error; err != nil {
        s.rollback(tx, "recharge_approve", recharge.UserID, recharge.Amount)
        return err
    }
    if recharge.Status != models.StatusPending {
        s.rollback(tx, "recharge_approve", recharge.UserID, recharge.Amount)
        return ErrInvalidState
    }

    now := time.Now()
    if err = tx.Model(&recharge).Updates(map[string]interface{}{
        "status":         models.StatusApproved,
        "processed_date": &now,
    }).Error; err != nil {
        s.rollback(tx, "recharge_approve", recharge.UserID, recharge.Amount)
        return err
    }

    var user models.User
    if err = tx.First(&user, recharge.UserID).Error; err != nil {
        s.rollback(tx, "recharge_approve", recharge.UserID, recharge.Amount)
        return err
    }
    user.Balance += recharge.Amount
    if err = tx.Model(&user).Update("balance", user.Balance).Error; err != nil {
        s.rollback(tx, "recharge_approve", recharge.UserID, recharge.Amount)
        return err
    }

    return s.commit(tx, "recharge_approve", recharge.UserID, recharge.Amount)
}

// RejectRecharge marks a pending recharge rejected. Nothing was ever
// credited, so there is no balance effect.
func (s *Service) RejectRecharge(rechargeID uint) (err error) {
    defer func() { observe("recharge_reject", err) }()

    var recharge models.Recharge
    if err = s.db.First(&recharge, rechargeID).Error; err != nil {
        if err == gorm.ErrRecordNotFound {
            return ErrNotFound
        }
        return err
    }

    lock := s.userLock(recharge.UserID)
    lock.Lock()
    defer lock.Unlock()

    tx := s.db.Begin()
    if tx.Error != nil {
        return tx.Error
    }

    if err = tx.First(&recharge, rechargeID).Error; err != nil {
        s.rollback(tx, "recharge_reject", recharge.UserID, recharge.Amount)
        return err
    }
    if recharge.Status != models.StatusPending {
        s.rollback(tx, "recharge_reject", recharge.UserID, recharge.Amount)
        return ErrInvalidState
    }

    now := time.Now()
    if err = tx.Model(&recharge).Updates(map[string]interface{}{
        "status":         models.StatusRejected,
        "processed_date": &now,
    }).Error; err != nil {
        s.rollback(tx, "recharge_reject", recharge.UserID, recharge.Amount)
        return err
    }

    return s.commit(tx, "recharge_reject", recharge.UserID, recharge.Amount)
}
