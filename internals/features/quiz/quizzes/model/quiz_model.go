package model

import (
	"time"

	"gorm.io/gorm"
)

type QuizModel struct {
	QuizID           string  `gorm:"column:quiz_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_id"`
	QuizTitle        string  `gorm:"column:quiz_title;type:varchar(255);not null" json:"quiz_title"`
	QuizInstructions *string `gorm:"column:quiz_instructions;type:text" json:"quiz_instructions,omitempty"`

	// 0 = tanpa batas waktu
	QuizTimeLimitMinutes int `gorm:"column:quiz_time_limit_minutes;not null;default:0" json:"quiz_time_limit_minutes"`

	QuizIsPublished bool `gorm:"column:quiz_is_published;not null;default:false" json:"quiz_is_published"`

	// timestamps
	QuizCreatedAt time.Time      `gorm:"column:quiz_created_at;autoCreateTime" json:"quiz_created_at"`
	QuizUpdatedAt time.Time      `gorm:"column:quiz_updated_at;autoUpdateTime" json:"quiz_updated_at"`
	QuizDeletedAt gorm.DeletedAt `gorm:"column:quiz_deleted_at;index" json:"-"`
}

func (QuizModel) TableName() string {
	return "quizzes"
}
