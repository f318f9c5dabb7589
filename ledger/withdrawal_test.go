package ledger_test

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "investpro/ledger"
    "investpro/models"
)

func TestRequestWithdrawal(t *testing.T) {
    db, svc := setupService(t)
    user := createUser(t, db, 500)

    newBalance, err := svc.RequestWithdrawal(user.ID, 200, models.MethodUPI, "user@upi")
    require.NoError(t, err)
    assert.Equal(t, 300.0, newBalance)
    assert.Equal(t, 300.0, reloadUser(t, db, user.ID).Balance)

    var withdrawal models.Withdrawal
    require.NoError(t, db.Where("user_id = ?", user.ID).First(&withdrawal).Error)
    assert.Equal(t, models.StatusPending, withdrawal.Status)
    assert.Equal(t, 200.0, withdrawal.Amount)
    assert.Equal(t, 36.0, withdrawal.GSTAmount)
    assert.Equal(t, 164.0, withdrawal.NetAmount)
    assert.Nil(t, withdrawal.ProcessedDate)
}

func TestWithdrawalGSTArithmetic(t *testing.T) {
    db, svc := setupService(t)
    user := createUser(t, db, 100000)

    _, err := svc.RequestWithdrawal(user.ID, 333.33, models.MethodBank, "acct 123456")
    require.NoError(t, err)

    var withdrawal models.Withdrawal
    require.NoError(t, db.Where("user_id = ?", user.ID).First(&withdrawal).Error)
    assert.InDelta(t, withdrawal.Amount, withdrawal.GSTAmount+withdrawal.NetAmount, 0.01)
}

func TestRequestWithdrawalInvalidAmount(t *testing.T) {
    db, svc := setupService(t)
    user := createUser(t, db, 500)

    _, err := svc.RequestWithdrawal(user.ID, 0, models.MethodUPI, "user@upi")
    assert.ErrorIs(t, err, ledger.ErrInvalidAmount)

    _, err = svc.RequestWithdrawal(user.ID, -10, models.MethodUPI, "user@upi")
    assert.ErrorIs(t, err, ledger.ErrInvalidAmount)

    assert.Equal(t, 500.0, reloadUser(t, db, user.ID).Balance)
}

func TestRequestWithdrawalInsufficientFunds(t *testing.T) {
    db, svc := setupService(t)
    user := createUser(t, db, 100)

    _, err := svc.RequestWithdrawal(user.ID, 200, models.MethodUPI, "user@upi")
    assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
    assert.Equal(t, 100.0, reloadUser(t, db, user.ID).Balance)
}

func TestRequestWithdrawalRateLimited(t *testing.T) {
    db, svc := setupService(t)
    user := createUser(t, db, 1000)

    _, err := svc.RequestWithdrawal(user.ID, 100, models.MethodUPI, "user@upi")
    require.NoError(t, err)

    _, err = svc.RequestWithdrawal(user.ID, 100, models.MethodUPI, "user@upi")
    assert.ErrorIs(t, err, ledger.ErrRateLimited)
    assert.Equal(t, 900.0, reloadUser(t, db, user.ID).Balance)
}

func TestRequestWithdrawalAllowedAfterWindow(t *testing.T) {
    db, svc := setupService(t)
    user := createUser(t, db, 1000)

    // A withdrawal older than the rolling 24h window does not block.
    old := models.Withdrawal{
        UserID:      user.ID,
        Amount:      100,
        GSTAmount:   18,
        NetAmount:   82,
        Method:      models.MethodUPI,
        Details:     "user@upi",
        Status:      models.StatusApproved,
        RequestDate: time.Now().Add(-25 * time.Hour),
    }
    require.NoError(t, db.Create(&old).Error)

    _, err := svc.RequestWithdrawal(user.ID, 100, models.MethodUPI, "user@upi")
    assert.NoError(t, err)
}

func TestRejectWithdrawalRefunds(t *testing.T) {
    db, svc := setupService(t)
    user := createUser(t, db, 500)

    _, err := svc.RequestWithdrawal(user.ID, 200, models.MethodUPI, "user@upi")
    require.NoError(t, err)
    assert.Equal(t, 300.0, reloadUser(t, db, user.ID).Balance)

    var withdrawal models.Withdrawal
    require.NoError(t, db.Where("user_id = ?", user.ID).First(&withdrawal).Error)

    require.NoError(t, svc.RejectWithdrawal(withdrawal.ID))

    assert.Equal(t, 500.0, reloadUser(t, db, user.ID).Balance)
    require.NoError(t, db.First(&withdrawal, withdrawal.ID).Error)
    assert.Equal(t, models.StatusRejected, withdrawal.Status)
    assert.NotNil(t, withdrawal.ProcessedDate)
}

func TestApproveWithdrawalNoBalanceChange(t *testing.T) {
    db, svc := setupService(t)
    user := createUser(t, db, 500)

    _, err := svc.RequestWithdrawal(user.ID, 200, models.MethodBank, "acct 123456")
    require.NoError(t, err)

    var withdrawal models.Withdrawal
    require.NoError(t, db.Where("user_id = ?", user.ID).First(&withdrawal).Error)

    require.NoError(t, svc.ApproveWithdrawal(withdrawal.ID))

    // Funds were reserved at request time; approval pays out off-platform.
    assert.Equal(t, 300.0, reloadUser(t, db, user.ID).Balance)
    require.NoError(t, db.First(&withdrawal, withdrawal.ID).Error)
    assert.Equal(t, models.StatusApproved, withdrawal.Status)
    assert.NotNil(t, withdrawal.ProcessedDate)
}

func TestWithdrawalTerminalStateImmutable(t *testing.T) {
    db, svc := setupService(t)
    user := createUser(t, db, 500)

    _, err := svc.RequestWithdrawal(user.ID, 200, models.MethodUPI, "user@upi")
    require.NoError(t, err)

    var withdrawal models.Withdrawal
    require.NoError(t, db.Where("user_id = ?", user.ID).First(&withdrawal).Error)
    require.NoError(t, svc.ApproveWithdrawal(withdrawal.ID))

    balanceBefore := reloadUser(t, db, user.ID).Balance

    assert.ErrorIs(t, svc.ApproveWithdrawal(withdrawal.ID), ledger.ErrInvalidState)
    assert.ErrorIs(t, svc.RejectWithdrawal(withdrawal.ID), ledger.ErrInvalidState)

    // A rejected re-attempt on an approved record must not re-credit.
    assert.Equal(t, balanceBefore, reloadUser(t, db, user.ID).Balance)
}

func TestWithdrawalAdminOpsNotFound(t *testing.T) {
    _, svc := setupService(t)

    assert.ErrorIs(t, svc.ApproveWithdrawal(999), ledger.ErrNotFound)
    assert.ErrorIs(t, svc.RejectWithdrawal(999), ledger.ErrNotFound)
}
