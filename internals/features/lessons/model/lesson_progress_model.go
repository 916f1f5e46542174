package model

import (
	"time"
)

type LessonProgressModel struct {
	LessonProgressID          string    `gorm:"column:lesson_progress_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"lesson_progress_id"`
	LessonProgressLessonID    string    `gorm:"column:lesson_progress_lesson_id;type:uuid;not null;uniqueIndex:idx_lesson_progress_lesson_user" json:"lesson_progress_lesson_id"`
	LessonProgressUserID      string    `gorm:"column:lesson_progress_user_id;type:uuid;not null;uniqueIndex:idx_lesson_progress_lesson_user" json:"lesson_progress_user_id"`
	LessonProgressCompletedAt time.Time `gorm:"column:lesson_progress_completed_at;not null" json:"lesson_progress_completed_at"`

	LessonProgressCreatedAt time.Time `gorm:"column:lesson_progress_created_at;autoCreateTime" json:"lesson_progress_created_at"`
}

func (LessonProgressModel) TableName() string {
	return "lesson_progress"
}
