package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/buzaev-fedor/stepik-week-4/models"
)

type goalRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewGoalRepo(db *gorm.DB, logger *zap.Logger) GoalRepository {
	return &goalRepo{db: db, logger: logger}
}

func (r *goalRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Goal{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count goals: %w", err)
	}
	return n, nil
}

func (r *goalRepo) CreateAll(ctx context.Context, goals []*models.Goal) error {
	if len(goals) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&goals).Error; err != nil {
		r.logger.Error("failed to insert goals", zap.Int("count", len(goals)), zap.Error(err))
		return fmt.Errorf("create goals: %w", err)
	}
	return nil
}

func (r *goalRepo) List(ctx context.Context) ([]models.Goal, error) {
	var goals []models.Goal
	if err := r.db.WithContext(ctx).Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

func (r *goalRepo) GetByAlias(ctx context.Context, alias string) (*models.Goal, error) {
	var goal models.Goal
	if err := r.db.WithContext(ctx).Where("alias = ?", alias).First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}
