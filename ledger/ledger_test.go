package ledger_test

import (
    "sync"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"
    "gorm.io/gorm/logger"

    "investpro/config"
    "investpro/database"
    "investpro/ledger"
    "investpro/models"
)

func setupService(t *testing.T) (*gorm.DB, *ledger.Service) {
    t.Helper()

    db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
        Logger: logger.Default.LogMode(logger.Silent),
    })
    require.NoError(t, err)

    // Drop tables if exist to ensure clean state between tests sharing the
    // in-memory cache.
    db.Migrator().DropTable(
        &models.User{}, &models.Plan{}, &models.Investment{},
        &models.Recharge{}, &models.Withdrawal{}, &models.BalanceAdjustment{},
    )
    require.NoError(t, db.AutoMigrate(
        &models.User{}, &models.Plan{}, &models.Investment{},
        &models.Recharge{}, &models.Withdrawal{}, &models.BalanceAdjustment{},
    ))
    require.NoError(t, database.SeedPlans(db))

    cfg := &config.Config{
        GSTRate:      0.18,
        UTRMinLength: 5,
    }
    return db, ledger.New(db, cfg)
}

func setupServiceWithUTRPolicy(t *testing.T, minLength int, numeric bool) (*gorm.DB, *ledger.Service) {
    t.Helper()
    db, _ := setupService(t)
    cfg := &config.Config{
        GSTRate:      0.18,
        UTRMinLength: minLength,
        UTRNumeric:   numeric,
    }
    return db, ledger.New(db, cfg)
}

func createUser(t *testing.T, db *gorm.DB, balance float64) models.User {
    t.Helper()
    user := models.User{
        Name:     "Test User",
        Email:    "user@example.com",
        Password: "not-a-real-hash",
        Balance:  balance,
        IsActive: true,
    }
    require.NoError(t, db.Create(&user).Error)
    return user
}

func reloadUser(t *testing.T, db *gorm.DB, id uint) models.User {
    t.Helper()
    var user models.User
    require.NoError(t, db.First(&user, id).Error)
    return user
}

func TestConcurrentWithdrawalsNeverOverdraw(t *testing.T) {
    db, svc := setupService(t)
    user := createUser(t, db, 100)

    var wg sync.WaitGroup
    results := make([]error, 2)
    for i := 0; i < 2; i++ {
        wg.Add(1)
        go func(i int) {
            defer wg.Done()
            _, results[i] = svc.RequestWithdrawal(user.ID, 80, models.MethodUPI, "user@upi")
        }(i)
    }
    wg.Wait()

    var successes, insufficient int
    for _, err := range results {
        switch err {
        case nil:
            successes++
        case ledger.ErrInsufficientFunds:
            insufficient++
        default:
            t.Fatalf("unexpected error: %v", err)
        }
    }
    assert.Equal(t, 1, successes)
    assert.Equal(t, 1, insufficient)

    assert.Equal(t, 20.0, reloadUser(t, db, user.ID).Balance)

    var pendingCount int64
    require.NoError(t, db.Model(&models.Withdrawal{}).
        Where("user_id = ? AND status = ?", user.ID, models.StatusPending).
        Count(&pendingCount).Error)
    assert.Equal(t, int64(1), pendingCount)
}

func TestAdjustBalance(t *testing.T) {
    db, svc := setupService(t)
    user := createUser(t, db, 100)

    newBalance, err := svc.AdjustBalance(99, user.ID, 250, "manual recharge correction")
    require.NoError(t, err)
    assert.Equal(t, 350.0, newBalance)
    assert.Equal(t, 350.0, reloadUser(t, db, user.ID).Balance)

    var adjustment models.BalanceAdjustment
    require.NoError(t, db.Where("user_id = ?", user.ID).First(&adjustment).Error)
    assert.Equal(t, 250.0, adjustment.Amount)
    assert.Equal(t, uint(99), adjustment.AdminID)
    assert.NotEmpty(t, adjustment.Reference)
}

func TestAdjustBalanceCannotGoNegative(t *testing.T) {
    db, svc := setupService(t)
    user := createUser(t, db, 100)

    _, err := svc.AdjustBalance(99, user.ID, -150, "clawback")
    assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
    assert.Equal(t, 100.0, reloadUser(t, db, user.ID).Balance)
}

func TestAdjustBalanceUnknownUser(t *testing.T) {
    _, svc := setupService(t)

    _, err := svc.AdjustBalance(99, 12345, 10, "ghost")
    assert.ErrorIs(t, err, ledger.ErrUserNotFound)
}
