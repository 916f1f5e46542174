package model

import (
	"time"
)

type QuizQuestionOptionModel struct {
	QuizQuestionOptionID         string `gorm:"column:quiz_question_option_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_question_option_id"`
	QuizQuestionOptionQuestionID string `gorm:"column:quiz_question_option_question_id;type:uuid;not null;index" json:"quiz_question_option_question_id"`

	// minimal salah satu dari label/image diisi (konvensi, tidak di-enforce)
	QuizQuestionOptionLabel *string `gorm:"column:quiz_question_option_label;type:text" json:"quiz_question_option_label,omitempty"`
	QuizQuestionOptionImage *string `gorm:"column:quiz_question_option_image_url;type:text" json:"quiz_question_option_image_url,omitempty"`

	// ❗ tidak pernah ikut ke response user — kunci jawaban
	QuizQuestionOptionIsCorrect bool `gorm:"column:quiz_question_option_is_correct;not null;default:false" json:"-"`

	QuizQuestionOptionPosition  int       `gorm:"column:quiz_question_option_position;not null;default:0" json:"quiz_question_option_position"`
	QuizQuestionOptionCreatedAt time.Time `gorm:"column:quiz_question_option_created_at;autoCreateTime" json:"quiz_question_option_created_at"`
}

func (QuizQuestionOptionModel) TableName() string {
	return "quiz_question_options"
}
