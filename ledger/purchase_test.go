package ledger_test

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "investpro/ledger"
    "investpro/models"
)

func TestListPlansCatalog(t *testing.T) {
    _, svc := setupService(t)

    plans, err := svc.ListPlans()
    require.NoError(t, err)
    require.Len(t, plans, 4)

    for _, plan := range plans {
        assert.GreaterOrEqual(t, plan.TotalReturn, plan.Price, "plan %s must promise net-positive return", plan.Name)
        assert.Greater(t, plan.DurationDays, 0)
    }
    assert.Equal(t, "Basic Plan", plans[0].Name)
    assert.Equal(t, 500.0, plans[0].Price)
}

func TestGetPlanNotFound(t *testing.T) {
    _, svc := setupService(t)

    _, err := svc.GetPlan(999)
    assert.ErrorIs(t, err, ledger.ErrInvalidPlan)
}

func TestPurchasePlan(t *testing.T) {
    db, svc := setupService(t)
    user := createUser(t, db, 1000)

    newBalance, err := svc.PurchasePlan(user.ID, 1) // Basic Plan, 500
    require.NoError(t, err)
    assert.Equal(t, 500.0, newBalance)
    assert.Equal(t, 500.0, reloadUser(t, db, user.ID).Balance)

    var investment models.Investment
    require.NoError(t, db.Where("user_id = ?", user.ID).First(&investment).Error)
    assert.Equal(t, models.InvestmentActive, investment.Status)
    assert.Equal(t, "Basic Plan", investment.PlanName)
    assert.Equal(t, 500.0, investment.Amount)
    assert.Equal(t, 50.0, investment.DailyIncome)
    assert.Equal(t, 30, investment.DurationDays)
    assert.Equal(t, 30, investment.DaysLeft)
}

func TestPurchasePlanInvalidPlan(t *testing.T) {
    db, svc := setupService(t)
    user := createUser(t, db, 1000)

    _, err := svc.PurchasePlan(user.ID, 999)
    assert.ErrorIs(t, err, ledger.ErrInvalidPlan)
    assert.Equal(t, 1000.0, reloadUser(t, db, user.ID).Balance)
}

func TestPurchasePlanInsufficientBalance(t *testing.T) {
    db, svc := setupService(t)
    user := createUser(t, db, 400)

    _, err := svc.PurchasePlan(user.ID, 1)
    assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
    assert.Equal(t, 400.0, reloadUser(t, db, user.ID).Balance)

    var count int64
    require.NoError(t, db.Model(&models.Investment{}).Where("user_id = ?", user.ID).Count(&count).Error)
    assert.Equal(t, int64(0), count)
}

func TestPurchasePlanMonthlyLimit(t *testing.T) {
    db, svc := setupService(t)
    user := createUser(t, db, 10000)

    _, err := svc.PurchasePlan(user.ID, 1)
    require.NoError(t, err)

    // Second purchase in the same calendar month, even of a different plan.
    _, err = svc.PurchasePlan(user.ID, 2)
    assert.ErrorIs(t, err, ledger.ErrMonthlyLimit)
    assert.Equal(t, 9500.0, reloadUser(t, db, user.ID).Balance)

    var count int64
    require.NoError(t, db.Model(&models.Investment{}).Where("user_id = ?", user.ID).Count(&count).Error)
    assert.Equal(t, int64(1), count)
}

func TestPurchasePlanUnknownUser(t *testing.T) {
    _, svc := setupService(t)

    _, err := svc.PurchasePlan(12345, 1)
    assert.ErrorIs(t, err, ledger.ErrUserNotFound)
}
