package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	AttemptStatusInProgress = "in_progress"
	AttemptStatusSubmitted  = "submitted"
	AttemptStatusAbandoned  = "abandoned"
)

type QuizAttemptModel struct {
	QuizAttemptID     string `gorm:"column:quiz_attempt_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_attempt_id"`
	QuizAttemptQuizID string `gorm:"column:quiz_attempt_quiz_id;type:uuid;not null;index" json:"quiz_attempt_quiz_id"`
	QuizAttemptUserID string `gorm:"column:quiz_attempt_user_id;type:uuid;not null;index" json:"quiz_attempt_user_id"`

	QuizAttemptStatus      string     `gorm:"column:quiz_attempt_status;type:varchar(20);not null;default:'in_progress'" json:"quiz_attempt_status"`
	QuizAttemptStartedAt   time.Time  `gorm:"column:quiz_attempt_started_at;not null" json:"quiz_attempt_started_at"`
	QuizAttemptSubmittedAt *time.Time `gorm:"column:quiz_attempt_submitted_at" json:"quiz_attempt_submitted_at,omitempty"`

	// array berurutan {question_id, selected_option_id}; hanya yang terjawab
	QuizAttemptAnswers datatypes.JSON `gorm:"column:quiz_attempt_answers;type:jsonb" json:"quiz_attempt_answers,omitempty"`

	QuizAttemptAnsweredCount   int     `gorm:"column:quiz_attempt_answered_count;not null;default:0" json:"quiz_attempt_answered_count"`
	QuizAttemptCorrectCount    int     `gorm:"column:quiz_attempt_correct_count;not null;default:0" json:"quiz_attempt_correct_count"`
	QuizAttemptScore           float64 `gorm:"column:quiz_attempt_score;not null;default:0" json:"quiz_attempt_score"`
	QuizAttemptDurationSeconds int     `gorm:"column:quiz_attempt_duration_seconds;not null;default:0" json:"quiz_attempt_duration_seconds"`

	// true kalau submit dipicu habisnya waktu, bukan aksi user
	QuizAttemptTimedOut bool `gorm:"column:quiz_attempt_timed_out;not null;default:false" json:"quiz_attempt_timed_out"`

	QuizAttemptCreatedAt time.Time `gorm:"column:quiz_attempt_created_at;autoCreateTime" json:"quiz_attempt_created_at"`
	QuizAttemptUpdatedAt time.Time `gorm:"column:quiz_attempt_updated_at;autoUpdateTime" json:"quiz_attempt_updated_at"`
}

func (QuizAttemptModel) TableName() string {
	return "quiz_attempts"
}
