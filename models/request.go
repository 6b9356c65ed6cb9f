package models

import "time"

// Request is a "match me with a teacher" inquiry for a goal,
// not yet tied to a specific teacher. Append-only.
type Request struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FreeTime string `gorm:"size:50;not null" json:"free_time"`
	GoalID   uint   `gorm:"not null" json:"goal_id"`
	Goal     Goal   `gorm:"foreignKey:GoalID" json:"goal"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Phone    string `gorm:"size:50;not null" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
}
