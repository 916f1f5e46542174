package dto

import (
	"time"

	"edukasiku_backend/internals/features/quiz/quizzes/model"
)

// ============================
// Response DTO
// ============================

type QuizDTO struct {
	QuizID               string    `json:"quiz_id"`
	QuizTitle            string    `json:"quiz_title"`
	QuizInstructions     *string   `json:"quiz_instructions,omitempty"`
	QuizTimeLimitMinutes int       `json:"quiz_time_limit_minutes"`
	QuizIsPublished      bool      `json:"quiz_is_published"`
	QuizCreatedAt        time.Time `json:"quiz_created_at"`
	QuizUpdatedAt        time.Time `json:"quiz_updated_at"`
}

// ============================
// Create / Update Request DTO
// ============================

type CreateQuizRequest struct {
	QuizTitle            string  `json:"quiz_title" validate:"required,max=255"`
	QuizInstructions     *string `json:"quiz_instructions,omitempty"`
	QuizTimeLimitMinutes int     `json:"quiz_time_limit_minutes" validate:"gte=0,lte=1440"`
	QuizIsPublished      bool    `json:"quiz_is_published"`
}

type UpdateQuizRequest struct {
	QuizTitle            *string `json:"quiz_title,omitempty" validate:"omitempty,max=255"`
	QuizInstructions     *string `json:"quiz_instructions,omitempty"`
	QuizTimeLimitMinutes *int    `json:"quiz_time_limit_minutes,omitempty" validate:"omitempty,gte=0,lte=1440"`
	QuizIsPublished      *bool   `json:"quiz_is_published,omitempty"`
}

// ============================
// Converter
// ============================

func ToQuizDTO(m model.QuizModel) QuizDTO {
	return QuizDTO{
		QuizID:               m.QuizID,
		QuizTitle:            m.QuizTitle,
		QuizInstructions:     m.QuizInstructions,
		QuizTimeLimitMinutes: m.QuizTimeLimitMinutes,
		QuizIsPublished:      m.QuizIsPublished,
		QuizCreatedAt:        m.QuizCreatedAt,
		QuizUpdatedAt:        m.QuizUpdatedAt,
	}
}
