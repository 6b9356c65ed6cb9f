package services

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/buzaev-fedor/stepik-week-4/models"
	"github.com/buzaev-fedor/stepik-week-4/repository"
)

// In-memory repository fakes backing the service tests.

type mockGoalRepo struct {
	goals  []*models.Goal
	nextID uint
}

func newMockGoalRepo() *mockGoalRepo { return &mockGoalRepo{nextID: 1} }

func (m *mockGoalRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.goals)), nil
}

func (m *mockGoalRepo) CreateAll(_ context.Context, goals []*models.Goal) error {
	for _, g := range goals {
		g.ID = m.nextID
		m.nextID++
		m.goals = append(m.goals, g)
	}
	return nil
}

func (m *mockGoalRepo) List(_ context.Context) ([]models.Goal, error) {
	out := make([]models.Goal, 0, len(m.goals))
	for _, g := range m.goals {
		out = append(out, *g)
	}
	return out, nil
}

func (m *mockGoalRepo) GetByAlias(_ context.Context, alias string) (*models.Goal, error) {
	for _, g := range m.goals {
		if g.Alias == alias {
			goal := *g
			return &goal, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type mockTeacherRepo struct {
	teachers []*models.Teacher
	nextID   uint
}

func newMockTeacherRepo() *mockTeacherRepo { return &mockTeacherRepo{nextID: 1} }

func (m *mockTeacherRepo) CreateAll(_ context.Context, teachers []*models.Teacher) error {
	for _, t := range teachers {
		t.ID = m.nextID
		m.nextID++
		m.teachers = append(m.teachers, t)
	}
	return nil
}

func (m *mockTeacherRepo) List(_ context.Context) ([]models.Teacher, error) {
	out := make([]models.Teacher, 0, len(m.teachers))
	for _, t := range m.teachers {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockTeacherRepo) ListByRating(_ context.Context) ([]models.Teacher, error) {
	out, _ := m.List(context.Background())
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id uint) (*models.Teacher, error) {
	for _, t := range m.teachers {
		if t.ID == id {
			teacher := *t
			return &teacher, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type mockBookingRepo struct {
	bookings []*models.Booking
	nextID   uint
}

func newMockBookingRepo() *mockBookingRepo { return &mockBookingRepo{nextID: 1} }

func (m *mockBookingRepo) Create(_ context.Context, booking *models.Booking) error {
	booking.ID = m.nextID
	m.nextID++
	stored := *booking
	m.bookings = append(m.bookings, &stored)
	return nil
}

type mockRequestRepo struct {
	requests []*models.Request
	nextID   uint
}

func newMockRequestRepo() *mockRequestRepo { return &mockRequestRepo{nextID: 1} }

func (m *mockRequestRepo) Create(_ context.Context, request *models.Request) error {
	request.ID = m.nextID
	m.nextID++
	stored := *request
	m.requests = append(m.requests, &stored)
	return nil
}

type testRepos struct {
	goal    *mockGoalRepo
	teacher *mockTeacherRepo
	booking *mockBookingRepo
	request *mockRequestRepo
}

func newTestRepos() (*repository.Repository, *testRepos) {
	mocks := &testRepos{
		goal:    newMockGoalRepo(),
		teacher: newMockTeacherRepo(),
		booking: newMockBookingRepo(),
		request: newMockRequestRepo(),
	}
	repo := &repository.Repository{
		Goal:    mocks.goal,
		Teacher: mocks.teacher,
		Booking: mocks.booking,
		Request: mocks.request,
	}
	repo.Tx = func(_ context.Context, fn func(*repository.Repository) error) error {
		return fn(repo)
	}
	return repo, mocks
}
