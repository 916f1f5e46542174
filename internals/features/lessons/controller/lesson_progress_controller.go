package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"edukasiku_backend/internals/features/lessons/model"
	helper "edukasiku_backend/internals/helpers"
)

type LessonProgressController struct {
	DB *gorm.DB
}

func NewLessonProgressController(db *gorm.DB) *LessonProgressController {
	return &LessonProgressController{DB: db}
}

// =============================
// ✅ Tandai lesson selesai (idempotent)
// =============================
// Dipanggil course player setiap user menuntaskan lesson; panggilan ulang
// untuk lesson yang sama tidak menggandakan baris.
func (ctrl *LessonProgressController) CompleteLesson(c *fiber.Ctx) error {
	lessonID := c.Params("lesson_id")
	if _, err := uuid.Parse(lessonID); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "lesson_id must be a valid uuid")
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	rec := model.LessonProgressModel{
		LessonProgressLessonID:    lessonID,
		LessonProgressUserID:      userID,
		LessonProgressCompletedAt: time.Now(),
	}
	if err := ctrl.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "lesson_progress_lesson_id"}, {Name: "lesson_progress_user_id"}},
			DoNothing: true,
		}).
		Create(&rec).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record lesson completion")
	}

	return helper.JsonOK(c, "Lesson completed", fiber.Map{
		"lesson_id":    lessonID,
		"completed_at": rec.LessonProgressCompletedAt,
	})
}

// =============================
// 📄 Lesson yang sudah selesai (milik user)
// =============================
func (ctrl *LessonProgressController) GetMyCompletedLessons(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var rows []model.LessonProgressModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("lesson_progress_user_id = ?", userID).
		Order("lesson_progress_completed_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve progress")
	}
	return helper.JsonList(c, "", rows, nil)
}
