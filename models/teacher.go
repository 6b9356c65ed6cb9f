package models

type Teacher struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"size:255;not null" json:"name"`
	About   string  `gorm:"type:text;not null" json:"about"`
	Rating  float64 `json:"rating"`
	Picture string  `gorm:"size:255" json:"picture"`
	Price   float64 `json:"price"`
	Email   string  `gorm:"size:255;not null" json:"email"`
	// Free holds the weekly availability serialized as JSON,
	// weekday key -> list of "HH:00" labels.
	Free  string  `gorm:"type:text;not null" json:"-"`
	Goals []*Goal `gorm:"many2many:teachers_goals;" json:"goals"`
}

// FreeTime decodes the stored weekly availability.
func (t *Teacher) FreeTime() (Weekly, error) {
	return DecodeWeekly(t.Free)
}

// HasGoal reports whether the teacher serves the given goal alias.
func (t *Teacher) HasGoal(alias string) bool {
	for _, g := range t.Goals {
		if g.Alias == alias {
			return true
		}
	}
	return false
}
