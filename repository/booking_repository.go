package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/buzaev-fedor/stepik-week-4/models"
)

type bookingRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewBookingRepo(db *gorm.DB, logger *zap.Logger) BookingRepository {
	return &bookingRepo{db: db, logger: logger}
}

func (r *bookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if err := r.db.WithContext(ctx).Omit("Teacher").Create(booking).Error; err != nil {
		r.logger.Error("failed to insert booking",
			zap.Uint("teacher_id", booking.TeacherID),
			zap.String("day", booking.Day),
			zap.String("hour", booking.Hour),
			zap.Error(err))
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}
