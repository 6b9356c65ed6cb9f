package services

import (
	"context"
	"errors"
	"math/rand"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/buzaev-fedor/stepik-week-4/models"
	"github.com/buzaev-fedor/stepik-week-4/repository"
)

// TeacherService is the read side of the teacher directory.
type TeacherService interface {
	List(ctx context.Context) ([]models.Teacher, error)
	// Sample returns n teachers chosen uniformly at random without
	// replacement. n is clamped to the directory size.
	Sample(ctx context.Context, n int) ([]models.Teacher, error)
	// FilterByGoal returns the teachers serving the goal, ordered by
	// rating descending.
	FilterByGoal(ctx context.Context, alias string) ([]models.Teacher, error)
	GetByID(ctx context.Context, id uint) (*models.Teacher, error)
	RankByRating(ctx context.Context) ([]models.Teacher, error)
}

type teacherService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewTeacherService(repo *repository.Repository, logger *zap.Logger) TeacherService {
	return &teacherService{repo: repo, logger: logger}
}

func (s *teacherService) List(ctx context.Context) ([]models.Teacher, error) {
	return s.repo.Teacher.List(ctx)
}

func (s *teacherService) Sample(ctx context.Context, n int) ([]models.Teacher, error) {
	all, err := s.repo.Teacher.List(ctx)
	if err != nil {
		return nil, err
	}
	if n > len(all) {
		n = len(all)
	}
	if n < 0 {
		n = 0
	}

	picked := make([]models.Teacher, len(all))
	copy(picked, all)
	rand.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked[:n], nil
}

func (s *teacherService) FilterByGoal(ctx context.Context, alias string) ([]models.Teacher, error) {
	if _, err := s.repo.Goal.GetByAlias(ctx, alias); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}

	ranked, err := s.repo.Teacher.ListByRating(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Teacher, 0, len(ranked))
	for _, t := range ranked {
		if t.HasGoal(alias) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (s *teacherService) GetByID(ctx context.Context, id uint) (*models.Teacher, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("failed to look up teacher", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return teacher, nil
}

func (s *teacherService) RankByRating(ctx context.Context) ([]models.Teacher, error) {
	return s.repo.Teacher.ListByRating(ctx)
}
