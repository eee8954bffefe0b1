package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"

	"powerfed/internal/cache"
	apperrors "powerfed/internal/errors"
	"powerfed/internal/llm"
	"powerfed/internal/model"
	"powerfed/internal/repository"
)

const (
	nutritionSystemPrompt = "Eres un nutricionista deportivo con especialización en powerlifting y 10 años de experiencia. Siempre respondes en español con información nutricional precisa."
	trainingSystemPrompt  = "Eres un entrenador experto en powerlifting con 15 años de experiencia. Siempre respondes en español y con información técnicamente correcta."

	planCacheTTL = 5 * time.Minute
)

func nutritionPlansCacheKey(athleteID uint) string {
	return fmt.Sprintf("planes:alimentacion:%d", athleteID)
}

func trainingPlansCacheKey(athleteID uint) string {
	return fmt.Sprintf("planes:entrenamiento:%d", athleteID)
}

// NutritionPlanRequest carries the parameters for nutrition plan generation.
type NutritionPlanRequest struct {
	AthleteID     uint    `json:"atleta_id" validate:"required"`
	Goal          string  `json:"objetivo" validate:"required"`
	CurrentWeight float64 `json:"peso_actual" validate:"required,gt=0"`
	TargetWeight  float64 `json:"peso_objetivo"`
	ActivityLevel string  `json:"actividad_nivel" validate:"required,oneof=ligero moderado intenso"`
	Restrictions  string  `json:"restricciones"`
	Preferences   string  `json:"preferencias"`
	DurationWeeks int     `json:"duracion" validate:"required,gt=0"`
}

// TrainingPlanRequest carries the parameters for training plan generation.
type TrainingPlanRequest struct {
	AthleteID     uint   `json:"atleta_id" validate:"required"`
	Goal          string `json:"objetivo" validate:"required"`
	Level         string `json:"nivel" validate:"required"`
	DaysPerWeek   int    `json:"frecuencia" validate:"required,min=1,max=7"`
	DurationWeeks int    `json:"duracion" validate:"required,gt=0"`
	Limitations   string `json:"limitaciones"`
}

// PlanService generates and stores nutrition and training plans. Generation
// delegates to the LLM client and falls back to deterministic output when the
// upstream is unconfigured, unreachable or returns unparseable text.
type PlanService interface {
	GenerateNutritionPlan(ctx context.Context, req NutritionPlanRequest) (*model.NutritionPlan, error)
	NutritionPlans(ctx context.Context, athleteID uint) ([]model.NutritionPlan, error)
	GenerateTrainingPlan(ctx context.Context, req TrainingPlanRequest) (*model.TrainingPlan, error)
	TrainingPlans(ctx context.Context, athleteID uint) ([]model.TrainingPlan, error)
}

type planService struct {
	planRepo    repository.PlanRepository
	athleteRepo repository.AthleteRepository
	generator   llm.Generator
	cache       *cache.Client
}

// NewPlanService creates a new plan service.
func NewPlanService(planRepo repository.PlanRepository, athleteRepo repository.AthleteRepository, generator llm.Generator, cache *cache.Client) PlanService {
	return &planService{
		planRepo:    planRepo,
		athleteRepo: athleteRepo,
		generator:   generator,
		cache:       cache,
	}
}

// GenerateNutritionPlan produces and persists a nutrition plan for an athlete.
func (s *planService) GenerateNutritionPlan(ctx context.Context, req NutritionPlanRequest) (*model.NutritionPlan, error) {
	if err := s.athleteExists(ctx, req.AthleteID); err != nil {
		return nil, err
	}

	payload := s.generatePayload(ctx, nutritionSystemPrompt, nutritionPrompt(req), func() map[string]any {
		return fallbackNutritionPayload(req)
	})

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode plan payload: %w", err)
	}

	plan := &model.NutritionPlan{
		AthleteID:     req.AthleteID,
		Goal:          req.Goal,
		CurrentWeight: req.CurrentWeight,
		TargetWeight:  req.TargetWeight,
		ActivityLevel: req.ActivityLevel,
		Restrictions:  req.Restrictions,
		DurationWeeks: req.DurationWeeks,
		Payload:       string(encoded),
	}
	if err := s.planRepo.CreateNutritionPlan(ctx, plan); err != nil {
		return nil, fmt.Errorf("store nutrition plan: %w", err)
	}
	_ = s.cache.Delete(ctx, nutritionPlansCacheKey(req.AthleteID))
	return plan, nil
}

// NutritionPlans lists an athlete's nutrition plans with caching. Generation
// invalidates the key.
func (s *planService) NutritionPlans(ctx context.Context, athleteID uint) ([]model.NutritionPlan, error) {
	// Try cache first
	if data, _ := s.cache.Get(ctx, nutritionPlansCacheKey(athleteID)); data != nil {
		var cached []model.NutritionPlan
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	plans, err := s.planRepo.NutritionPlansByAthlete(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	// Cache the result
	if payload, err := json.Marshal(plans); err == nil {
		_ = s.cache.Set(ctx, nutritionPlansCacheKey(athleteID), payload, planCacheTTL)
	}

	return plans, nil
}

// GenerateTrainingPlan produces and persists a training plan for an athlete.
func (s *planService) GenerateTrainingPlan(ctx context.Context, req TrainingPlanRequest) (*model.TrainingPlan, error) {
	if err := s.athleteExists(ctx, req.AthleteID); err != nil {
		return nil, err
	}

	payload := s.generatePayload(ctx, trainingSystemPrompt, trainingPrompt(req), fallbackTrainingPayload)

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode plan payload: %w", err)
	}

	plan := &model.TrainingPlan{
		AthleteID:     req.AthleteID,
		Goal:          req.Goal,
		Level:         req.Level,
		DaysPerWeek:   req.DaysPerWeek,
		DurationWeeks: req.DurationWeeks,
		Payload:       string(encoded),
	}
	if err := s.planRepo.CreateTrainingPlan(ctx, plan); err != nil {
		return nil, fmt.Errorf("store training plan: %w", err)
	}
	_ = s.cache.Delete(ctx, trainingPlansCacheKey(req.AthleteID))
	return plan, nil
}

// TrainingPlans lists an athlete's training plans with caching. Generation
// invalidates the key.
func (s *planService) TrainingPlans(ctx context.Context, athleteID uint) ([]model.TrainingPlan, error) {
	// Try cache first
	if data, _ := s.cache.Get(ctx, trainingPlansCacheKey(athleteID)); data != nil {
		var cached []model.TrainingPlan
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	plans, err := s.planRepo.TrainingPlansByAthlete(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	// Cache the result
	if payload, err := json.Marshal(plans); err == nil {
		_ = s.cache.Set(ctx, trainingPlansCacheKey(athleteID), payload, planCacheTTL)
	}

	return plans, nil
}

func (s *planService) athleteExists(ctx context.Context, id uint) error {
	if _, err := s.athleteRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("load athlete %d: %w", id, err)
	}
	return nil
}

// generatePayload asks the generator for structured JSON. Anything other than
// a JSON object answer degrades to the fallback, with the raw text preserved
// under plan_detallado when available.
func (s *planService) generatePayload(ctx context.Context, system, prompt string, fallback func() map[string]any) map[string]any {
	text, err := s.generator.Generate(ctx, system, prompt)
	if err != nil {
		if !errors.Is(err, llm.ErrNotConfigured) {
			log.Printf("plan generation fell back to deterministic output: %v", err)
		}
		return fallback()
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(extractJSON(text)), &parsed); err != nil || len(parsed) == 0 {
		payload := fallback()
		payload["plan_detallado"] = text
		return payload
	}
	return parsed
}

// extractJSON strips markdown fences some models wrap around JSON answers.
func extractJSON(text string) string {
	trimmed := strings.TrimSpace(text)
	if start := strings.Index(trimmed, "{"); start >= 0 {
		if end := strings.LastIndex(trimmed, "}"); end > start {
			return trimmed[start : end+1]
		}
	}
	return trimmed
}

func nutritionPrompt(req NutritionPlanRequest) string {
	target := "No especificado"
	if req.TargetWeight > 0 {
		target = fmt.Sprintf("%.0fkg", req.TargetWeight)
	}
	restrictions := req.Restrictions
	if restrictions == "" {
		restrictions = "Ninguna"
	}
	preferences := req.Preferences
	if preferences == "" {
		preferences = "Ninguna"
	}
	return fmt.Sprintf(`Eres un nutricionista deportivo especializado en powerlifting. Genera un plan de alimentación detallado con las siguientes especificaciones:

- Objetivo: %s
- Peso actual: %.0fkg
- Peso objetivo: %s
- Nivel de actividad: %s
- Restricciones: %s
- Preferencias: %s
- Duración: %d semanas

El plan debe incluir la descripción general, calorías diarias, distribución de macronutrientes y un plan de comidas con al menos 5 comidas al día. Responde únicamente en formato JSON con las claves plan_detallado, calorias_diarias, macros y comidas.`,
		req.Goal, req.CurrentWeight, target, req.ActivityLevel, restrictions, preferences, req.DurationWeeks)
}

func trainingPrompt(req TrainingPlanRequest) string {
	limitations := req.Limitations
	if limitations == "" {
		limitations = "Ninguna"
	}
	return fmt.Sprintf(`Eres un entrenador experto en powerlifting. Genera un plan de entrenamiento detallado con las siguientes especificaciones:

- Objetivo: %s
- Nivel del atleta: %s
- Frecuencia: %d días por semana
- Duración: %d semanas
- Limitaciones: %s

El plan debe centrarse en sentadilla, press de banca y peso muerto, con ejercicios accesorios para el nivel. Responde únicamente en formato JSON con las claves plan_detallado y ejercicios (nombre, series, repeticiones, peso_sugerido, descanso, notas).`,
		req.Goal, req.Level, req.DaysPerWeek, req.DurationWeeks, limitations)
}

// fallbackNutritionPayload reproduces the deterministic macro arithmetic:
// calories scale with bodyweight by activity level, protein 2.2 g/kg,
// carbs 4 g/kg, fat 1 g/kg.
func fallbackNutritionPayload(req NutritionPlanRequest) map[string]any {
	perKg := 25.0
	switch req.ActivityLevel {
	case "moderado":
		perKg = 30
	case "intenso":
		perKg = 35
	}
	calories := math.Round(req.CurrentWeight * perKg)

	return map[string]any{
		"plan_detallado":   fmt.Sprintf("Plan de alimentación de %d semanas orientado a %s para un atleta de %.0fkg con actividad %s.", req.DurationWeeks, req.Goal, req.CurrentWeight, req.ActivityLevel),
		"calorias_diarias": calories,
		"macros": map[string]any{
			"proteinas":     math.Round(req.CurrentWeight * 2.2),
			"carbohidratos": math.Round(req.CurrentWeight * 4),
			"grasas":        math.Round(req.CurrentWeight * 1),
		},
		"comidas": []map[string]any{
			{
				"nombre":        "Desayuno",
				"horario":       "7:00 AM",
				"alimentos":     []string{"Avena", "Plátano", "Proteína en polvo"},
				"calorias":      math.Round(calories * 0.25),
				"proteinas":     math.Round(req.CurrentWeight * 0.5),
				"carbohidratos": math.Round(req.CurrentWeight * 1),
				"grasas":        math.Round(req.CurrentWeight * 0.2),
				"notas":         "Comida pre-entrenamiento",
			},
		},
	}
}

// fallbackTrainingPayload is the canned three-lift template used when no
// generated plan is available.
func fallbackTrainingPayload() map[string]any {
	return map[string]any{
		"plan_detallado": "Plan base centrado en los tres levantamientos principales con trabajo de técnica.",
		"ejercicios": []map[string]any{
			{
				"nombre":        "Sentadilla Trasera",
				"series":        4,
				"repeticiones":  "5-8",
				"peso_sugerido": "80-85% 1RM",
				"descanso":      "3-4 min",
				"notas":         "Enfoque en técnica",
			},
			{
				"nombre":        "Press de Banca",
				"series":        4,
				"repeticiones":  "5-8",
				"peso_sugerido": "80-85% 1RM",
				"descanso":      "3-4 min",
				"notas":         "Pausa en el pecho",
			},
			{
				"nombre":        "Peso Muerto",
				"series":        3,
				"repeticiones":  "5-8",
				"peso_sugerido": "80-85% 1RM",
				"descanso":      "4-5 min",
				"notas":         "Activación de glúteos",
			},
		},
	}
}
