package dto

import (
	"time"

	"edukasiku_backend/internals/features/quiz/questions/model"
)

// ============================
// Response DTO (user-facing: tanpa kunci jawaban)
// ============================

type QuizQuestionOptionDTO struct {
	QuizQuestionOptionID       string  `json:"quiz_question_option_id"`
	QuizQuestionOptionLabel    *string `json:"quiz_question_option_label,omitempty"`
	QuizQuestionOptionImageURL *string `json:"quiz_question_option_image_url,omitempty"`
	QuizQuestionOptionPosition int     `json:"quiz_question_option_position"`
}

type QuizQuestionDTO struct {
	QuizQuestionID       string                  `json:"quiz_question_id"`
	QuizQuestionQuizID   string                  `json:"quiz_question_quiz_id"`
	QuizQuestionBody     string                  `json:"quiz_question_body"`
	QuizQuestionImageURL *string                 `json:"quiz_question_image_url,omitempty"`
	QuizQuestionType     string                  `json:"quiz_question_type"`
	QuizQuestionPosition int                     `json:"quiz_question_position"`
	QuizQuestionOptions  []QuizQuestionOptionDTO `json:"quiz_question_options"`
}

// Versi admin: is_correct ikut (untuk editor soal).
type AdminQuizQuestionOptionDTO struct {
	QuizQuestionOptionDTO
	QuizQuestionOptionIsCorrect bool `json:"quiz_question_option_is_correct"`
}

type AdminQuizQuestionDTO struct {
	QuizQuestionID        string                       `json:"quiz_question_id"`
	QuizQuestionQuizID    string                       `json:"quiz_question_quiz_id"`
	QuizQuestionBody      string                       `json:"quiz_question_body"`
	QuizQuestionImageURL  *string                      `json:"quiz_question_image_url,omitempty"`
	QuizQuestionType      string                       `json:"quiz_question_type"`
	QuizQuestionPosition  int                          `json:"quiz_question_position"`
	QuizQuestionOptions   []AdminQuizQuestionOptionDTO `json:"quiz_question_options"`
	QuizQuestionCreatedAt time.Time                    `json:"quiz_question_created_at"`
}

// ============================
// Create / Update Request DTO
// ============================

type CreateQuizQuestionOptionRequest struct {
	QuizQuestionOptionLabel     *string `json:"quiz_question_option_label,omitempty" validate:"omitempty,max=2000"`
	QuizQuestionOptionImageURL  *string `json:"quiz_question_option_image_url,omitempty" validate:"omitempty,url"`
	QuizQuestionOptionIsCorrect bool    `json:"quiz_question_option_is_correct"`
}

type CreateQuizQuestionRequest struct {
	QuizQuestionBody     string                            `json:"quiz_question_body" validate:"required"`
	QuizQuestionImageURL *string                           `json:"quiz_question_image_url,omitempty" validate:"omitempty,url"`
	QuizQuestionType     string                            `json:"quiz_question_type" validate:"required,oneof=multiple_choice true_false"`
	QuizQuestionPosition int                               `json:"quiz_question_position" validate:"gte=0"`
	QuizQuestionOptions  []CreateQuizQuestionOptionRequest `json:"quiz_question_options" validate:"required,min=2,dive"`
}

type UpdateQuizQuestionRequest struct {
	QuizQuestionBody     *string `json:"quiz_question_body,omitempty"`
	QuizQuestionImageURL *string `json:"quiz_question_image_url,omitempty" validate:"omitempty,url"`
	QuizQuestionPosition *int    `json:"quiz_question_position,omitempty" validate:"omitempty,gte=0"`
}

// ============================
// Converter
// ============================

func ToQuizQuestionDTO(m model.QuizQuestionModel) QuizQuestionDTO {
	opts := make([]QuizQuestionOptionDTO, 0, len(m.QuizQuestionOptions))
	for _, o := range m.QuizQuestionOptions {
		opts = append(opts, QuizQuestionOptionDTO{
			QuizQuestionOptionID:       o.QuizQuestionOptionID,
			QuizQuestionOptionLabel:    o.QuizQuestionOptionLabel,
			QuizQuestionOptionImageURL: o.QuizQuestionOptionImage,
			QuizQuestionOptionPosition: o.QuizQuestionOptionPosition,
		})
	}
	return QuizQuestionDTO{
		QuizQuestionID:       m.QuizQuestionID,
		QuizQuestionQuizID:   m.QuizQuestionQuizID,
		QuizQuestionBody:     m.QuizQuestionBody,
		QuizQuestionImageURL: m.QuizQuestionImage,
		QuizQuestionType:     m.QuizQuestionType,
		QuizQuestionPosition: m.QuizQuestionPosition,
		QuizQuestionOptions:  opts,
	}
}

func ToAdminQuizQuestionDTO(m model.QuizQuestionModel) AdminQuizQuestionDTO {
	opts := make([]AdminQuizQuestionOptionDTO, 0, len(m.QuizQuestionOptions))
	for _, o := range m.QuizQuestionOptions {
		opts = append(opts, AdminQuizQuestionOptionDTO{
			QuizQuestionOptionDTO: QuizQuestionOptionDTO{
				QuizQuestionOptionID:       o.QuizQuestionOptionID,
				QuizQuestionOptionLabel:    o.QuizQuestionOptionLabel,
				QuizQuestionOptionImageURL: o.QuizQuestionOptionImage,
				QuizQuestionOptionPosition: o.QuizQuestionOptionPosition,
			},
			QuizQuestionOptionIsCorrect: o.QuizQuestionOptionIsCorrect,
		})
	}
	return AdminQuizQuestionDTO{
		QuizQuestionID:        m.QuizQuestionID,
		QuizQuestionQuizID:    m.QuizQuestionQuizID,
		QuizQuestionBody:      m.QuizQuestionBody,
		QuizQuestionImageURL:  m.QuizQuestionImage,
		QuizQuestionType:      m.QuizQuestionType,
		QuizQuestionPosition:  m.QuizQuestionPosition,
		QuizQuestionOptions:   opts,
		QuizQuestionCreatedAt: m.QuizQuestionCreatedAt,
	}
}
