package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edukasiku_backend/internals/features/quiz/attempts/dto"
	"edukasiku_backend/internals/features/quiz/attempts/model"
	helper "edukasiku_backend/internals/helpers"
)

type QuizAttemptAdminController struct {
	DB *gorm.DB
}

func NewQuizAttemptAdminController(db *gorm.DB) *QuizAttemptAdminController {
	return &QuizAttemptAdminController{DB: db}
}

// =============================
// 📄 Semua attempt satu quiz (monitoring admin)
// =============================
func (ctrl *QuizAttemptAdminController) GetAttemptsByQuiz(c *fiber.Ctx) error {
	quizID := c.Params("quiz_id")
	if quizID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "quiz_id is required")
	}
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.QuizAttemptModel{}).
		Where("quiz_attempt_quiz_id = ?", quizID)
	if status := c.Query("status"); status != "" {
		q = q.Where("quiz_attempt_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count attempts")
	}

	var rows []model.QuizAttemptModel
	if err := q.
		Order("quiz_attempt_started_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve attempts")
	}

	resp := make([]dto.QuizAttemptDTO, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dto.ToQuizAttemptDTO(r))
	}
	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", resp, &p)
}
