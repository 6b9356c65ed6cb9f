package models

// Goal is a reason a student looks for a tutor ("for travel", "for work").
// Goals are created once at seed time and never change afterwards.
type Goal struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:255;not null" json:"name"`
	Alias string `gorm:"size:50;not null;uniqueIndex" json:"alias"`
}
