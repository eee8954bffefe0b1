package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "powerfed/internal/errors"
	"powerfed/internal/model"
	"powerfed/internal/repository"
)

// MockResultRepository is a mock implementation of ResultRepository.
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) Create(ctx context.Context, result *model.Result) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockResultRepository) Update(ctx context.Context, result *model.Result) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockResultRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockResultRepository) FindByID(ctx context.Context, id uint) (*model.Result, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Result), args.Error(1)
}

func (m *MockResultRepository) List(ctx context.Context) ([]model.Result, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Result), args.Error(1)
}

func (m *MockResultRepository) ListByAthlete(ctx context.Context, athleteID uint) ([]model.Result, error) {
	args := m.Called(ctx, athleteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Result), args.Error(1)
}

func (m *MockResultRepository) PerformanceHistory(ctx context.Context, athleteID uint) ([]repository.PerformanceRow, error) {
	args := m.Called(ctx, athleteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.PerformanceRow), args.Error(1)
}

// MockAthleteRepository is a mock implementation of AthleteRepository.
type MockAthleteRepository struct {
	mock.Mock
}

func (m *MockAthleteRepository) Create(ctx context.Context, athlete *model.Athlete) error {
	args := m.Called(ctx, athlete)
	return args.Error(0)
}

func (m *MockAthleteRepository) Update(ctx context.Context, athlete *model.Athlete) error {
	args := m.Called(ctx, athlete)
	return args.Error(0)
}

func (m *MockAthleteRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAthleteRepository) FindByID(ctx context.Context, id uint) (*model.Athlete, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Athlete), args.Error(1)
}

func (m *MockAthleteRepository) List(ctx context.Context) ([]model.Athlete, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Athlete), args.Error(1)
}

func TestResultService_Create_DerivesTotalAndWilks(t *testing.T) {
	mockRepo := new(MockResultRepository)
	mockAthletes := new(MockAthleteRepository)

	mockAthletes.On("FindByID", mock.Anything, uint(5)).
		Return(&model.Athlete{ID: 5, Gender: model.GenderMale}, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Result")).Return(nil)

	service := NewResultService(mockRepo, mockAthletes, nil)
	result := &model.Result{
		AthleteID:      5,
		CompetitionID:  1,
		Squat:          200,
		BenchPress:     140,
		Deadlift:       260,
		WeightCategory: 80,
		// Client-supplied derived values must be overwritten.
		Total:      1,
		WilksScore: 999,
	}

	err := service.Create(context.Background(), result)
	assert.NoError(t, err)
	assert.Equal(t, float64(600), result.Total)
	assert.InDelta(t, WilksScore(600, 80, false), result.WilksScore, 1e-9)
	mockRepo.AssertExpectations(t)
	mockAthletes.AssertExpectations(t)
}

func TestResultService_Create_FemaleCoefficients(t *testing.T) {
	mockRepo := new(MockResultRepository)
	mockAthletes := new(MockAthleteRepository)

	mockAthletes.On("FindByID", mock.Anything, uint(7)).
		Return(&model.Athlete{ID: 7, Gender: model.GenderFemale}, nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Result")).Return(nil)

	service := NewResultService(mockRepo, mockAthletes, nil)
	result := &model.Result{
		AthleteID:      7,
		CompetitionID:  1,
		Squat:          120,
		BenchPress:     70,
		Deadlift:       150,
		WeightCategory: 60,
	}

	err := service.Create(context.Background(), result)
	assert.NoError(t, err)
	assert.Equal(t, float64(340), result.Total)
	assert.InDelta(t, WilksScore(340, 60, true), result.WilksScore, 1e-9)
	assert.Greater(t, result.WilksScore, result.Total*1.0)
}

func TestResultService_Create_UnknownAthlete(t *testing.T) {
	mockRepo := new(MockResultRepository)
	mockAthletes := new(MockAthleteRepository)

	mockAthletes.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewResultService(mockRepo, mockAthletes, nil)
	err := service.Create(context.Background(), &model.Result{AthleteID: 99, WeightCategory: 80})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestResultService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockResultRepository)
	mockRepo.On("FindByID", mock.Anything, uint(12)).Return(nil, gorm.ErrRecordNotFound)

	service := NewResultService(mockRepo, new(MockAthleteRepository), nil)
	err := service.Delete(context.Background(), 12)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Delete")
}
