package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/buzaev-fedor/stepik-week-4/models"
	"github.com/buzaev-fedor/stepik-week-4/repository"
)

// RequestService records "match me with a teacher" inquiries.
type RequestService interface {
	Create(ctx context.Context, goalAlias, freeTime, name, phone string) (*models.Request, error)
}

type requestService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewRequestService(repo *repository.Repository, logger *zap.Logger) RequestService {
	return &requestService{repo: repo, logger: logger}
}

func (s *requestService) Create(ctx context.Context, goalAlias, freeTime, name, phone string) (*models.Request, error) {
	goal, err := s.repo.Goal.GetByAlias(ctx, goalAlias)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}

	request := &models.Request{
		FreeTime: freeTime,
		GoalID:   goal.ID,
		Goal:     *goal,
		Name:     name,
		Phone:    phone,
	}
	if err := s.repo.Request.Create(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info("request created",
		zap.Uint("request_id", request.ID),
		zap.String("goal", goalAlias))
	return request, nil
}
