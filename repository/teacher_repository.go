package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/buzaev-fedor/stepik-week-4/models"
)

type teacherRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewTeacherRepo(db *gorm.DB, logger *zap.Logger) TeacherRepository {
	return &teacherRepo{db: db, logger: logger}
}

// CreateAll inserts teachers together with their goal associations.
func (r *teacherRepo) CreateAll(ctx context.Context, teachers []*models.Teacher) error {
	if len(teachers) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&teachers).Error; err != nil {
		r.logger.Error("failed to insert teachers", zap.Int("count", len(teachers)), zap.Error(err))
		return fmt.Errorf("create teachers: %w", err)
	}
	return nil
}

func (r *teacherRepo) List(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := r.db.WithContext(ctx).Preload("Goals").Order("id ASC").Find(&teachers).Error; err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// ListByRating returns every teacher ordered by rating descending,
// ties broken by id ascending for determinism.
func (r *teacherRepo) ListByRating(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	err := r.db.WithContext(ctx).
		Preload("Goals").
		Order("rating DESC, id ASC").
		Find(&teachers).Error
	if err != nil {
		return nil, fmt.Errorf("list teachers by rating: %w", err)
	}
	return teachers, nil
}

func (r *teacherRepo) GetByID(ctx context.Context, id uint) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := r.db.WithContext(ctx).Preload("Goals").First(&teacher, id).Error; err != nil {
		return nil, err
	}
	return &teacher, nil
}
