package models

import "time"

// Booking is a confirmed reservation of a teacher's time slot.
// Bookings are append-only: they are never updated or deleted.
type Booking struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Day       string  `gorm:"size:10;not null" json:"day"`
	Hour      string  `gorm:"size:5;not null" json:"hour"`
	TeacherID uint    `gorm:"not null" json:"teacher_id"`
	Teacher   Teacher `gorm:"foreignKey:TeacherID" json:"-"`
	Name      string  `gorm:"size:255;not null" json:"name"`
	Phone     string  `gorm:"size:50;not null" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
}
