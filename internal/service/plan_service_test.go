package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "powerfed/internal/errors"
	"powerfed/internal/llm"
	"powerfed/internal/model"
)

// MockPlanRepository is a mock implementation of PlanRepository.
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) CreateNutritionPlan(ctx context.Context, plan *model.NutritionPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) NutritionPlansByAthlete(ctx context.Context, athleteID uint) ([]model.NutritionPlan, error) {
	args := m.Called(ctx, athleteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.NutritionPlan), args.Error(1)
}

func (m *MockPlanRepository) CreateTrainingPlan(ctx context.Context, plan *model.TrainingPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) TrainingPlansByAthlete(ctx context.Context, athleteID uint) ([]model.TrainingPlan, error) {
	args := m.Called(ctx, athleteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TrainingPlan), args.Error(1)
}

// fakeGenerator returns a canned answer or error.
type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	return f.text, f.err
}

func nutritionRequest() NutritionPlanRequest {
	return NutritionPlanRequest{
		AthleteID:     3,
		Goal:          "Ganar fuerza",
		CurrentWeight: 80,
		ActivityLevel: "moderado",
		DurationWeeks: 8,
	}
}

func athletesWith(id uint) *MockAthleteRepository {
	m := new(MockAthleteRepository)
	m.On("FindByID", mock.Anything, id).Return(&model.Athlete{ID: id}, nil)
	return m
}

func TestPlanService_GenerateNutritionPlan_UsesGeneratedJSON(t *testing.T) {
	mockPlans := new(MockPlanRepository)
	mockPlans.On("CreateNutritionPlan", mock.Anything, mock.AnythingOfType("*model.NutritionPlan")).Return(nil)

	generated := "```json\n{\"plan_detallado\":\"Plan generado\",\"calorias_diarias\":2600}\n```"
	service := NewPlanService(mockPlans, athletesWith(3), &fakeGenerator{text: generated}, nil)

	plan, err := service.GenerateNutritionPlan(context.Background(), nutritionRequest())
	assert.NoError(t, err)
	assert.NotNil(t, plan)
	assert.Equal(t, uint(3), plan.AthleteID)

	var payload map[string]any
	assert.NoError(t, json.Unmarshal([]byte(plan.Payload), &payload))
	assert.Equal(t, "Plan generado", payload["plan_detallado"])
	assert.Equal(t, float64(2600), payload["calorias_diarias"])
	mockPlans.AssertExpectations(t)
}

func TestPlanService_GenerateNutritionPlan_FallbackWhenUnconfigured(t *testing.T) {
	mockPlans := new(MockPlanRepository)
	mockPlans.On("CreateNutritionPlan", mock.Anything, mock.AnythingOfType("*model.NutritionPlan")).Return(nil)

	service := NewPlanService(mockPlans, athletesWith(3), &fakeGenerator{err: llm.ErrNotConfigured}, nil)

	plan, err := service.GenerateNutritionPlan(context.Background(), nutritionRequest())
	assert.NoError(t, err)

	var payload map[string]any
	assert.NoError(t, json.Unmarshal([]byte(plan.Payload), &payload))
	// 80kg at moderate activity: 80 * 30 kcal.
	assert.Equal(t, float64(2400), payload["calorias_diarias"])
	macros := payload["macros"].(map[string]any)
	assert.Equal(t, float64(176), macros["proteinas"])
	assert.Equal(t, float64(320), macros["carbohidratos"])
	assert.Equal(t, float64(80), macros["grasas"])
}

func TestPlanService_GenerateNutritionPlan_UnparseableAnswerKeepsRawText(t *testing.T) {
	mockPlans := new(MockPlanRepository)
	mockPlans.On("CreateNutritionPlan", mock.Anything, mock.AnythingOfType("*model.NutritionPlan")).Return(nil)

	service := NewPlanService(mockPlans, athletesWith(3), &fakeGenerator{text: "Aquí tienes tu plan: come bien y descansa."}, nil)

	plan, err := service.GenerateNutritionPlan(context.Background(), nutritionRequest())
	assert.NoError(t, err)

	var payload map[string]any
	assert.NoError(t, json.Unmarshal([]byte(plan.Payload), &payload))
	assert.Equal(t, "Aquí tienes tu plan: come bien y descansa.", payload["plan_detallado"])
	assert.Contains(t, payload, "calorias_diarias")
}

func TestPlanService_GenerateNutritionPlan_UnknownAthlete(t *testing.T) {
	mockAthletes := new(MockAthleteRepository)
	mockAthletes.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
	mockPlans := new(MockPlanRepository)

	service := NewPlanService(mockPlans, mockAthletes, &fakeGenerator{err: llm.ErrNotConfigured}, nil)

	req := nutritionRequest()
	req.AthleteID = 99
	plan, err := service.GenerateNutritionPlan(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, plan)
	mockPlans.AssertNotCalled(t, "CreateNutritionPlan")
}

func TestPlanService_NutritionPlans(t *testing.T) {
	plans := []model.NutritionPlan{
		{AthleteID: 3, Goal: "Ganar fuerza", CurrentWeight: 80},
		{AthleteID: 3, Goal: "Bajar de peso", CurrentWeight: 78},
	}

	mockPlans := new(MockPlanRepository)
	mockPlans.On("NutritionPlansByAthlete", mock.Anything, uint(3)).Return(plans, nil)

	service := NewPlanService(mockPlans, new(MockAthleteRepository), &fakeGenerator{}, nil)
	got, err := service.NutritionPlans(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, plans, got)
	mockPlans.AssertExpectations(t)
}

func TestPlanService_TrainingPlans(t *testing.T) {
	plans := []model.TrainingPlan{
		{AthleteID: 4, Goal: "Competencia nacional", Level: "Avanzado"},
	}

	mockPlans := new(MockPlanRepository)
	mockPlans.On("TrainingPlansByAthlete", mock.Anything, uint(4)).Return(plans, nil)

	service := NewPlanService(mockPlans, new(MockAthleteRepository), &fakeGenerator{}, nil)
	got, err := service.TrainingPlans(context.Background(), 4)

	assert.NoError(t, err)
	assert.Equal(t, plans, got)
	mockPlans.AssertExpectations(t)
}

func TestPlanCacheKeys(t *testing.T) {
	assert.Equal(t, "planes:alimentacion:3", nutritionPlansCacheKey(3))
	assert.Equal(t, "planes:entrenamiento:4", trainingPlansCacheKey(4))
}

func TestPlanService_GenerateTrainingPlan_Fallback(t *testing.T) {
	mockPlans := new(MockPlanRepository)
	mockPlans.On("CreateTrainingPlan", mock.Anything, mock.AnythingOfType("*model.TrainingPlan")).Return(nil)

	service := NewPlanService(mockPlans, athletesWith(4), &fakeGenerator{err: llm.ErrNotConfigured}, nil)

	plan, err := service.GenerateTrainingPlan(context.Background(), TrainingPlanRequest{
		AthleteID:     4,
		Goal:          "Competencia nacional",
		Level:         "Avanzado",
		DaysPerWeek:   4,
		DurationWeeks: 12,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Avanzado", plan.Level)

	var payload map[string]any
	assert.NoError(t, json.Unmarshal([]byte(plan.Payload), &payload))
	exercises := payload["ejercicios"].([]any)
	assert.Len(t, exercises, 3)
	first := exercises[0].(map[string]any)
	assert.Equal(t, "Sentadilla Trasera", first["nombre"])
}
