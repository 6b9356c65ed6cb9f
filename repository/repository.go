package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/buzaev-fedor/stepik-week-4/models"
)

type GoalRepository interface {
	Count(ctx context.Context) (int64, error)
	CreateAll(ctx context.Context, goals []*models.Goal) error
	List(ctx context.Context) ([]models.Goal, error)
	GetByAlias(ctx context.Context, alias string) (*models.Goal, error)
}

type TeacherRepository interface {
	CreateAll(ctx context.Context, teachers []*models.Teacher) error
	List(ctx context.Context) ([]models.Teacher, error)
	ListByRating(ctx context.Context) ([]models.Teacher, error)
	GetByID(ctx context.Context, id uint) (*models.Teacher, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
}

type RequestRepository interface {
	Create(ctx context.Context, request *models.Request) error
}

// Repository aggregates the per-entity repositories.
//
// Tx runs fn against a repository bound to a single transaction:
// every write fn makes commits or rolls back as one unit.
type Repository struct {
	Goal    GoalRepository
	Teacher TeacherRepository
	Booking BookingRepository
	Request RequestRepository

	Tx func(ctx context.Context, fn func(*Repository) error) error
}

func New(db *gorm.DB, logger *zap.Logger) *Repository {
	repo := &Repository{
		Goal:    NewGoalRepo(db, logger),
		Teacher: NewTeacherRepo(db, logger),
		Booking: NewBookingRepo(db, logger),
		Request: NewRequestRepo(db, logger),
	}
	repo.Tx = func(ctx context.Context, fn func(*Repository) error) error {
		return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(New(tx, logger))
		})
	}
	return repo
}
