package dto

import (
	"time"

	"edukasiku_backend/internals/features/quiz/attempts/model"
	"edukasiku_backend/internals/features/quiz/session"
)

// ============================
// Request DTO (aksi sesi)
// ============================

type SelectAnswerRequest struct {
	QuestionID       string `json:"question_id" validate:"required,uuid"`
	SelectedOptionID string `json:"selected_option_id" validate:"required,uuid"`
}

// Navigate: kirim index eksplisit ATAU direction next/previous.
type NavigateRequest struct {
	Index     *int    `json:"index,omitempty" validate:"omitempty,gte=0"`
	Direction *string `json:"direction,omitempty" validate:"omitempty,oneof=next previous"`
}

type SubmitRequest struct {
	// true = submit walau belum lengkap (konfirmasi user / auto-submit)
	Force bool `json:"force"`
}

// ============================
// Response DTO
// ============================

type QuizAttemptDTO struct {
	QuizAttemptID              string     `json:"quiz_attempt_id"`
	QuizAttemptQuizID          string     `json:"quiz_attempt_quiz_id"`
	QuizAttemptStatus          string     `json:"quiz_attempt_status"`
	QuizAttemptStartedAt       time.Time  `json:"quiz_attempt_started_at"`
	QuizAttemptSubmittedAt     *time.Time `json:"quiz_attempt_submitted_at,omitempty"`
	QuizAttemptAnsweredCount   int        `json:"quiz_attempt_answered_count"`
	QuizAttemptCorrectCount    int        `json:"quiz_attempt_correct_count"`
	QuizAttemptScore           float64    `json:"quiz_attempt_score"`
	QuizAttemptDurationSeconds int        `json:"quiz_attempt_duration_seconds"`
	QuizAttemptTimedOut        bool       `json:"quiz_attempt_timed_out"`
}

// StartAttemptDTO: attempt + state sesi hasil restore (resume) atau fresh.
type StartAttemptDTO struct {
	Attempt QuizAttemptDTO `json:"attempt"`
	Session session.View   `json:"session"`
}

// ============================
// Converter
// ============================

func ToQuizAttemptDTO(m model.QuizAttemptModel) QuizAttemptDTO {
	return QuizAttemptDTO{
		QuizAttemptID:              m.QuizAttemptID,
		QuizAttemptQuizID:          m.QuizAttemptQuizID,
		QuizAttemptStatus:          m.QuizAttemptStatus,
		QuizAttemptStartedAt:       m.QuizAttemptStartedAt,
		QuizAttemptSubmittedAt:     m.QuizAttemptSubmittedAt,
		QuizAttemptAnsweredCount:   m.QuizAttemptAnsweredCount,
		QuizAttemptCorrectCount:    m.QuizAttemptCorrectCount,
		QuizAttemptScore:           m.QuizAttemptScore,
		QuizAttemptDurationSeconds: m.QuizAttemptDurationSeconds,
		QuizAttemptTimedOut:        m.QuizAttemptTimedOut,
	}
}
