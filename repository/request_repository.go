package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/buzaev-fedor/stepik-week-4/models"
)

type requestRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewRequestRepo(db *gorm.DB, logger *zap.Logger) RequestRepository {
	return &requestRepo{db: db, logger: logger}
}

func (r *requestRepo) Create(ctx context.Context, request *models.Request) error {
	if err := r.db.WithContext(ctx).Omit("Goal").Create(request).Error; err != nil {
		r.logger.Error("failed to insert request",
			zap.Uint("goal_id", request.GoalID),
			zap.Error(err))
		return fmt.Errorf("create request: %w", err)
	}
	return nil
}
