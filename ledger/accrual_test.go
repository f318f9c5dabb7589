package ledger_test

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "gorm.io/gorm"

    "investpro/models"
)

func createInvestment(t *testing.T, db *gorm.DB, userID uint, dailyIncome float64, daysLeft int) models.Investment {
    t.Helper()
    inv := models.Investment{
        UserID:       userID,
        PlanID:       1,
        PlanName:     "Basic Plan",
        Amount:       500,
        DailyIncome:  dailyIncome,
        DurationDays: 30,
        DaysLeft:     daysLeft,
        PurchaseDate: time.Now().Add(-48 * time.Hour),
        Status:       models.InvestmentActive,
    }
    require.NoError(t, db.Create(&inv).Error)
    return inv
}

func TestAccrueDailyCreditsIncome(t *testing.T) {
    db, svc := setupService(t)
    user := createUser(t, db, 100)
    inv := createInvestment(t, db, user.ID, 50, 30)

    credited, err := svc.AccrueDaily()
    require.NoError(t, err)
    assert.Equal(t, 1, credited)

    reloaded := reloadUser(t, db, user.ID)
    assert.Equal(t, 150.0, reloaded.Balance)
    assert.Equal(t, 50.0, reloaded.TotalEarnings)

    require.NoError(t, db.First(&inv, inv.ID).Error)
    assert.Equal(t, 29, inv.DaysLeft)
    assert.Equal(t, models.InvestmentActive, inv.Status)
    assert.Equal(t, time.Now().Format("2006-01-02"), inv.LastAccruedOn)
}

func TestAccrueDailyIsIdempotentPerDay(t *testing.T) {
    db, svc := setupService(t)
    user := createUser(t, db, 0)
    createInvestment(t, db, user.ID, 50, 30)

    credited, err := svc.AccrueDaily()
    require.NoError(t, err)
    assert.Equal(t, 1, credited)

    // Re-running the sweep on the same day must not double-credit.
    credited, err = svc.AccrueDaily()
    require.NoError(t, err)
    assert.Equal(t, 0, credited)

    assert.Equal(t, 50.0, reloadUser(t, db, user.ID).Balance)
}

func TestAccrueDailyCompletesInvestment(t *testing.T) {
    db, svc := setupService(t)
    user := createUser(t, db, 0)
    inv := createInvestment(t, db, user.ID, 50, 1)

    credited, err := svc.AccrueDaily()
    require.NoError(t, err)
    assert.Equal(t, 1, credited)

    require.NoError(t, db.First(&inv, inv.ID).Error)
    assert.Equal(t, 0, inv.DaysLeft)
    assert.Equal(t, models.InvestmentCompleted, inv.Status)
    assert.Equal(t, 50.0, reloadUser(t, db, user.ID).Balance)
}

func TestAccrueDailySkipsCompleted(t *testing.T) {
    db, svc := setupService(t)
    user := createUser(t, db, 0)
    inv := createInvestment(t, db, user.ID, 50, 0)
    require.NoError(t, db.Model(&inv).Update("status", models.InvestmentCompleted).Error)

    credited, err := svc.AccrueDaily()
    require.NoError(t, err)
    assert.Equal(t, 0, credited)
    assert.Equal(t, 0.0, reloadUser(t, db, user.ID).Balance)
}

func TestAccrueDailyMultipleUsers(t *testing.T) {
    db, svc := setupService(t)

    alice := models.User{Name: "Alice", Email: "alice@example.com", Password: "x", IsActive: true}
    bob := models.User{Name: "Bob", Email: "bob@example.com", Password: "x", IsActive: true}
    require.NoError(t, db.Create(&alice).Error)
    require.NoError(t, db.Create(&bob).Error)

    createInvestment(t, db, alice.ID, 50, 30)
    createInvestment(t, db, bob.ID, 120, 30)

    credited, err := svc.AccrueDaily()
    require.NoError(t, err)
    assert.Equal(t, 2, credited)

    assert.Equal(t, 50.0, reloadUser(t, db, alice.ID).Balance)
    assert.Equal(t, 120.0, reloadUser(t, db, bob.ID).Balance)
}
