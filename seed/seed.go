// Package seed loads the static catalog data the service is
// bootstrapped from: a goal alias -> display-name mapping and a list
// of teacher records.
package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/buzaev-fedor/stepik-week-4/models"
)

// TeacherRecord is one entry of the teachers seed file.
type TeacherRecord struct {
	Name    string        `json:"name"`
	About   string        `json:"about"`
	Rating  float64       `json:"rating"`
	Picture string        `json:"picture"`
	Price   float64       `json:"price"`
	Email   string        `json:"email"`
	Free    models.Weekly `json:"free"`
	Goals   []string      `json:"goals"`
}

// LoadGoals reads the alias -> display-name mapping.
func LoadGoals(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read goals file: %w", err)
	}
	var goals map[string]string
	if err := json.Unmarshal(data, &goals); err != nil {
		return nil, fmt.Errorf("parse goals file %s: %w", path, err)
	}
	return goals, nil
}

// LoadTeachers reads the teacher seed records.
func LoadTeachers(path string) ([]TeacherRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read teachers file: %w", err)
	}
	var teachers []TeacherRecord
	if err := json.Unmarshal(data, &teachers); err != nil {
		return nil, fmt.Errorf("parse teachers file %s: %w", path, err)
	}
	return teachers, nil
}
