package mapper

import (
	"flou-backend/internal/entity"
	"flou-backend/internal/model"
)

type WellnessMapper struct{}

func NewWellnessMapper() *WellnessMapper {
	return &WellnessMapper{}
}

func (m *WellnessMapper) CheckinToEntity(c *model.DailyCheckin) *entity.DailyCheckin {
	if c == nil {
		return nil
	}

	return &entity.DailyCheckin{
		Id:        c.Id,
		UserId:    c.UserId,
		MoodLabel: c.MoodLabel,
		MoodScore: c.MoodScore,
		Feelings:  jsonToStrings(c.Feelings),
		Note:      c.Note,
		CreatedAt: c.CreatedAt,
	}
}

func (m *WellnessMapper) CheckinToModel(c *entity.DailyCheckin) *model.DailyCheckin {
	if c == nil {
		return nil
	}

	return &model.DailyCheckin{
		Id:        c.Id,
		UserId:    c.UserId,
		MoodLabel: c.MoodLabel,
		MoodScore: c.MoodScore,
		Feelings:  stringsToJSON(c.Feelings),
		Note:      c.Note,
		CreatedAt: c.CreatedAt,
	}
}

func (m *WellnessMapper) CheckinsToEntities(checkins []*model.DailyCheckin) []*entity.DailyCheckin {
	entities := make([]*entity.DailyCheckin, len(checkins))
	for i, c := range checkins {
		entities[i] = m.CheckinToEntity(c)
	}
	return entities
}

func (m *WellnessMapper) ExerciseToEntity(e *model.RelaxationExercise) *entity.RelaxationExercise {
	if e == nil {
		return nil
	}

	return &entity.RelaxationExercise{
		Id:              e.Id,
		EnergyLevel:     entity.EnergyLevel(e.EnergyLevel),
		Language:        entity.LanguagePreference(e.Language),
		ExerciseType:    e.ExerciseType,
		Title:           e.Title,
		Description:     e.Description,
		DurationSeconds: e.DurationSeconds,
		Instructions:    jsonToStrings(e.Instructions),
		SortOrder:       e.SortOrder,
		CreatedAt:       e.CreatedAt,
	}
}

func (m *WellnessMapper) ExerciseToModel(e *entity.RelaxationExercise) *model.RelaxationExercise {
	if e == nil {
		return nil
	}

	return &model.RelaxationExercise{
		Id:              e.Id,
		EnergyLevel:     string(e.EnergyLevel),
		Language:        string(e.Language),
		ExerciseType:    e.ExerciseType,
		Title:           e.Title,
		Description:     e.Description,
		DurationSeconds: e.DurationSeconds,
		Instructions:    stringsToJSON(e.Instructions),
		SortOrder:       e.SortOrder,
		CreatedAt:       e.CreatedAt,
	}
}

func (m *WellnessMapper) ExercisesToEntities(exercises []*model.RelaxationExercise) []*entity.RelaxationExercise {
	entities := make([]*entity.RelaxationExercise, len(exercises))
	for i, e := range exercises {
		entities[i] = m.ExerciseToEntity(e)
	}
	return entities
}

func (m *WellnessMapper) CompletionToEntity(c *model.ExerciseCompletion) *entity.ExerciseCompletion {
	if c == nil {
		return nil
	}

	return &entity.ExerciseCompletion{
		Id:              c.Id,
		UserId:          c.UserId,
		ExerciseType:    c.ExerciseType,
		EnergyLevel:     entity.EnergyLevel(c.EnergyLevel),
		DurationSeconds: c.DurationSeconds,
		CompletedAt:     c.CompletedAt,
	}
}

func (m *WellnessMapper) CompletionToModel(c *entity.ExerciseCompletion) *model.ExerciseCompletion {
	if c == nil {
		return nil
	}

	return &model.ExerciseCompletion{
		Id:              c.Id,
		UserId:          c.UserId,
		ExerciseType:    c.ExerciseType,
		EnergyLevel:     string(c.EnergyLevel),
		DurationSeconds: c.DurationSeconds,
		CompletedAt:     c.CompletedAt,
	}
}

func (m *WellnessMapper) MessageToEntity(msg *model.MotivationalMessage) *entity.MotivationalMessage {
	if msg == nil {
		return nil
	}

	return &entity.MotivationalMessage{
		Id:        msg.Id,
		Language:  entity.LanguagePreference(msg.Language),
		Message:   msg.Message,
		Author:    msg.Author,
		Category:  msg.Category,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *WellnessMapper) MessageToModel(msg *entity.MotivationalMessage) *model.MotivationalMessage {
	if msg == nil {
		return nil
	}

	return &model.MotivationalMessage{
		Id:        msg.Id,
		Language:  string(msg.Language),
		Message:   msg.Message,
		Author:    msg.Author,
		Category:  msg.Category,
		CreatedAt: msg.CreatedAt,
	}
}
