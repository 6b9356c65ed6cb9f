package services

import "errors"

var (
	ErrTeacherNotFound  = errors.New("teacher not found")
	ErrGoalNotFound     = errors.New("goal not found")
	ErrUnknownGoalAlias = errors.New("unknown goal alias in seed data")
	ErrInvalidWeekday   = errors.New("unknown weekday")
)
