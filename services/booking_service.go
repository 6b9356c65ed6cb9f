package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/buzaev-fedor/stepik-week-4/models"
	"github.com/buzaev-fedor/stepik-week-4/repository"
)

// BookingService records confirmed time-slot reservations.
type BookingService interface {
	// Create inserts one booking for the teacher. The time token is
	// the URL form ("1400"); the stored hour is its hour portion
	// ("14"). Bookings are not checked against the teacher's
	// availability and duplicate slots are not rejected.
	Create(ctx context.Context, teacherID uint, clientName, clientPhone, weekday, timeToken string) (*models.Booking, error)
}

type bookingService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

func NewBookingService(repo *repository.Repository, logger *zap.Logger) BookingService {
	return &bookingService{repo: repo, logger: logger}
}

func (s *bookingService) Create(ctx context.Context, teacherID uint, clientName, clientPhone, weekday, timeToken string) (*models.Booking, error) {
	if !models.IsWeekday(weekday) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWeekday, weekday)
	}
	hour, err := models.ParseTimeToken(timeToken)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Teacher.GetByID(ctx, teacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}

	booking := &models.Booking{
		Day:       weekday,
		Hour:      hour,
		TeacherID: teacherID,
		Name:      clientName,
		Phone:     clientPhone,
	}
	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.Uint("booking_id", booking.ID),
		zap.Uint("teacher_id", teacherID),
		zap.String("day", weekday),
		zap.String("hour", hour))
	return booking, nil
}
