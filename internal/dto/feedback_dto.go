package dto

import "time"

type CreateFeedbackRequest struct {
	Rating     int     `json:"rating" validate:"required,min=1,max=5"`
	Comment    *string `json:"comment" validate:"omitempty,max=1000"`
	TargetType string  `json:"target_type" validate:"required,oneof=chat_session exercise general feature"`
	TargetId   *string `json:"target_id" validate:"omitempty,max=100"`
}

type CreateFeedbackResponse struct {
	Id int64 `json:"id"`
}

type FeedbackHistoryItem struct {
	Id         int64     `json:"id"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment"`
	TargetType string    `json:"target_type"`
	TargetId   *string   `json:"target_id"`
	CreatedAt  time.Time `json:"created_at"`
}
