package ledger

import (
    "gorm.io/gorm"

    "investpro/models"
)

func (s *Service) ListPlans() ([]models.Plan, error) {
    var plans []models.Plan
    if err := s.db.Order("id ASC").Find(&plans).Error; err != nil {
        return nil, err
    }
    return plans, nil
}

func (s *Service) GetPlan(planID uint) (*models.Plan, error) {
    var plan models.Plan
    if err := s.db.First(&plan, planID).Error; err != nil {
        if err == gorm.ErrRecordNotFound {
            return nil, ErrInvalidPlan
        }
        return nil, err
    }
    return &plan, nil
}
