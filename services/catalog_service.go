package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/buzaev-fedor/stepik-week-4/models"
	"github.com/buzaev-fedor/stepik-week-4/repository"
	"github.com/buzaev-fedor/stepik-week-4/seed"
)

// CatalogService owns the goal catalog and the coupled startup seeding
// of goals and teachers.
type CatalogService interface {
	// Seed populates the store from the static seed data. It is a
	// no-op when goals already exist; otherwise goals are inserted
	// first and teachers are linked to them by alias. A teacher
	// referencing an unknown alias fails the whole seeding instead of
	// being silently dropped.
	Seed(ctx context.Context, goals map[string]string, teachers []seed.TeacherRecord) error
	List(ctx context.Context) ([]models.Goal, error)
	GetByAlias(ctx context.Context, alias string) (*models.Goal, error)
}

type catalogService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewCatalogService(repo *repository.Repository, logger *zap.Logger) CatalogService {
	return &catalogService{repo: repo, logger: logger}
}

func (s *catalogService) Seed(ctx context.Context, goals map[string]string, teachers []seed.TeacherRecord) error {
	// Bad seed data must fail before the first write, and the writes
	// themselves run in one transaction: a half-built catalog would
	// trip the count guard on the next start and never be repaired.
	for _, rec := range teachers {
		for _, alias := range rec.Goals {
			if _, ok := goals[alias]; !ok {
				return fmt.Errorf("teacher %q references %q: %w", rec.Name, alias, ErrUnknownGoalAlias)
			}
		}
	}

	return s.repo.Tx(ctx, func(r *repository.Repository) error {
		count, err := r.Goal.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			s.logger.Info("catalog already seeded", zap.Int64("goals", count))
			return nil
		}

		aliases := make([]string, 0, len(goals))
		for alias := range goals {
			aliases = append(aliases, alias)
		}
		sort.Strings(aliases)

		goalRows := make([]*models.Goal, 0, len(aliases))
		for _, alias := range aliases {
			goalRows = append(goalRows, &models.Goal{Name: goals[alias], Alias: alias})
		}
		if err := r.Goal.CreateAll(ctx, goalRows); err != nil {
			return err
		}

		byAlias := make(map[string]*models.Goal, len(goalRows))
		for _, g := range goalRows {
			byAlias[g.Alias] = g
		}

		teacherRows := make([]*models.Teacher, 0, len(teachers))
		for _, rec := range teachers {
			free, err := rec.Free.Encode()
			if err != nil {
				return fmt.Errorf("teacher %q: %w", rec.Name, err)
			}

			teacher := &models.Teacher{
				Name:    rec.Name,
				About:   rec.About,
				Rating:  rec.Rating,
				Picture: rec.Picture,
				Price:   rec.Price,
				Email:   rec.Email,
				Free:    free,
			}
			for _, alias := range rec.Goals {
				teacher.Goals = append(teacher.Goals, byAlias[alias])
			}
			teacherRows = append(teacherRows, teacher)
		}
		if err := r.Teacher.CreateAll(ctx, teacherRows); err != nil {
			return err
		}

		s.logger.Info("catalog seeded",
			zap.Int("goals", len(goalRows)),
			zap.Int("teachers", len(teacherRows)))
		return nil
	})
}

func (s *catalogService) List(ctx context.Context) ([]models.Goal, error) {
	return s.repo.Goal.List(ctx)
}

func (s *catalogService) GetByAlias(ctx context.Context, alias string) (*models.Goal, error) {
	goal, err := s.repo.Goal.GetByAlias(ctx, alias)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		s.logger.Error("failed to look up goal", zap.String("alias", alias), zap.Error(err))
		return nil, err
	}
	return goal, nil
}
