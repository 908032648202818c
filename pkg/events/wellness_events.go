package events

import "time"

const (
	TypeCheckinRecorded   = "CHECKIN_RECORDED"
	TypeExerciseCompleted = "EXERCISE_COMPLETED"
	TypeCrisisFlagged     = "CRISIS_FLAGGED"
	TypeStrategyAccepted  = "STRATEGY_ACCEPTED"
	TypeStreakMilestone   = "STREAK_MILESTONE"
	TypeFeedbackSubmitted = "FEEDBACK_SUBMITTED"
)

func NewCheckinRecorded(userId, moodLabel string, moodScore int) Event {
	return BaseEvent{
		Type: TypeCheckinRecorded,
		Data: map[string]interface{}{
			"user_id":    userId,
			"mood_label": moodLabel,
			"mood_score": moodScore,
		},
		OccurredAt: time.Now(),
	}
}

func NewExerciseCompleted(userId, exerciseType, energyLevel string) Event {
	return BaseEvent{
		Type: TypeExerciseCompleted,
		Data: map[string]interface{}{
			"user_id":       userId,
			"exercise_type": exerciseType,
			"energy_level":  energyLevel,
		},
		OccurredAt: time.Now(),
	}
}

// NewCrisisFlagged carries ids only, never message content.
func NewCrisisFlagged(userId, sessionId string, confidence float64) Event {
	return BaseEvent{
		Type: TypeCrisisFlagged,
		Data: map[string]interface{}{
			"user_id":    userId,
			"session_id": sessionId,
			"confidence": confidence,
		},
		OccurredAt: time.Now(),
	}
}

func NewStreakMilestone(userId string, streak int) Event {
	return BaseEvent{
		Type: TypeStreakMilestone,
		Data: map[string]interface{}{
			"user_id": userId,
			"streak":  streak,
		},
		OccurredAt: time.Now(),
	}
}

func NewFeedbackSubmitted(userId, targetType string, rating int) Event {
	return BaseEvent{
		Type: TypeFeedbackSubmitted,
		Data: map[string]interface{}{
			"user_id":     userId,
			"target_type": targetType,
			"rating":      rating,
		},
		OccurredAt: time.Now(),
	}
}

func NewStrategyAccepted(userId, sessionId, strategyId string) Event {
	return BaseEvent{
		Type: TypeStrategyAccepted,
		Data: map[string]interface{}{
			"user_id":     userId,
			"session_id":  sessionId,
			"strategy_id": strategyId,
		},
		OccurredAt: time.Now(),
	}
}
