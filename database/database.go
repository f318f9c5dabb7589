package database

import (
    "strings"

    "gorm.io/driver/postgres"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"
    "gorm.io/gorm/logger"

    "investpro/models"
)

// Initialize opens the database and migrates the schema. A postgres:// DSN
// selects the postgres driver; anything else is treated as a sqlite file path.
func Initialize(databaseURL string) (*gorm.DB, error) {
    var dialector gorm.Dialector
    if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
        dialector = postgres.Open(databaseURL)
    } else {
        dialector = sqlite.Open(databaseURL)
    }

    db, err := gorm.Open(dialector, &gorm.Config{
        Logger: logger.Default.LogMode(logger.Info),
    })
    if err != nil {
        return nil, err
    }

    err = db.AutoMigrate(
        &models.User{},
        &models.Plan{},
        &models.Investment{},
        &models.Recharge{},
        &models.Withdrawal{},
        &models.BalanceAdjustment{},
        &models.AuditLog{},
    )
    if err != nil {
        return nil, err
    }

    if err := SeedPlans(db); err != nil {
        return nil, err
    }

    return db, nil
}

// SeedPlans inserts the plan catalog if it is not already present. Plans are
// keyed by name so redeployments do not duplicate rows.
func SeedPlans(db *gorm.DB) error {
    plans := []models.Plan{
        {Name: "Basic Plan", Price: 500, DailyIncome: 50, TotalReturn: 1500, DurationDays: 30, Category: "beginner"},
        {Name: "Silver Plan", Price: 1000, DailyIncome: 120, TotalReturn: 3600, DurationDays: 30, Category: "intermediate"},
        {Name: "Gold Plan", Price: 5000, DailyIncome: 650, TotalReturn: 19500, DurationDays: 30, Category: "advanced"},
        {Name: "Platinum Plan", Price: 10000, DailyIncome: 1400, TotalReturn: 42000, DurationDays: 30, Category: "premium"},
    }

    for _, plan := range plans {
        if err := db.Where(models.Plan{Name: plan.Name}).FirstOrCreate(&plan).Error; err != nil {
            return err
        }
    }
    return nil
}
