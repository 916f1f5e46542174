package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeTrueFalse      = "true_false"
)

type QuizQuestionModel struct {
	QuizQuestionID     string  `gorm:"column:quiz_question_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_question_id"`
	QuizQuestionQuizID string  `gorm:"column:quiz_question_quiz_id;type:uuid;not null;index" json:"quiz_question_quiz_id"`
	QuizQuestionBody   string  `gorm:"column:quiz_question_body;type:text;not null" json:"quiz_question_body"` // rich text
	QuizQuestionImage  *string `gorm:"column:quiz_question_image_url;type:text" json:"quiz_question_image_url,omitempty"`
	QuizQuestionType   string  `gorm:"column:quiz_question_type;type:varchar(20);not null" json:"quiz_question_type"` // multiple_choice | true_false

	// urutan tampil dalam quiz
	QuizQuestionPosition int `gorm:"column:quiz_question_position;not null;default:0" json:"quiz_question_position"`

	QuizQuestionCreatedAt time.Time      `gorm:"column:quiz_question_created_at;autoCreateTime" json:"quiz_question_created_at"`
	QuizQuestionUpdatedAt time.Time      `gorm:"column:quiz_question_updated_at;autoUpdateTime" json:"quiz_question_updated_at"`
	QuizQuestionDeletedAt gorm.DeletedAt `gorm:"column:quiz_question_deleted_at;index" json:"-"`

	QuizQuestionOptions []QuizQuestionOptionModel `gorm:"foreignKey:QuizQuestionOptionQuestionID;references:QuizQuestionID" json:"quiz_question_options,omitempty"`
}

func (QuizQuestionModel) TableName() string {
	return "quiz_questions"
}
