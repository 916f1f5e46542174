package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edukasiku_backend/internals/features/quiz/quizzes/dto"
	"edukasiku_backend/internals/features/quiz/quizzes/model"
	helper "edukasiku_backend/internals/helpers"
)

var validateQuiz = validator.New()

type QuizAdminController struct {
	DB *gorm.DB
}

func NewQuizAdminController(db *gorm.DB) *QuizAdminController {
	return &QuizAdminController{DB: db}
}

// =============================
// ➕ Create
// =============================
func (ctrl *QuizAdminController) CreateQuiz(c *fiber.Ctx) error {
	var body dto.CreateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuiz.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	rec := model.QuizModel{
		QuizTitle:            body.QuizTitle,
		QuizInstructions:     body.QuizInstructions,
		QuizTimeLimitMinutes: body.QuizTimeLimitMinutes,
		QuizIsPublished:      body.QuizIsPublished,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&rec).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create quiz")
	}

	return helper.JsonCreated(c, "Quiz created", dto.ToQuizDTO(rec))
}

// =============================
// 📄 Get All (paginated, optional ?q=)
// =============================
func (ctrl *QuizAdminController) GetAllQuizzes(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.QuizModel{})
	if kw := strings.TrimSpace(c.Query("q")); kw != "" {
		q = q.Where("quiz_title ILIKE ?", "%"+kw+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count quizzes")
	}

	var rows []model.QuizModel
	if err := q.
		Order("quiz_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve quizzes")
	}

	resp := make([]dto.QuizDTO, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dto.ToQuizDTO(r))
	}
	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", resp, &p)
}

// =============================
// 🔍 Get by ID
// =============================
func (ctrl *QuizAdminController) GetQuizByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var rec model.QuizModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&rec, "quiz_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve quiz")
	}
	return helper.JsonOK(c, "", dto.ToQuizDTO(rec))
}

// =============================
// ✏️ Update (partial)
// =============================
func (ctrl *QuizAdminController) UpdateQuiz(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.UpdateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuiz.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	var rec model.QuizModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&rec, "quiz_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve quiz")
	}

	updates := map[string]any{}
	if body.QuizTitle != nil {
		updates["quiz_title"] = *body.QuizTitle
	}
	if body.QuizInstructions != nil {
		updates["quiz_instructions"] = *body.QuizInstructions
	}
	if body.QuizTimeLimitMinutes != nil {
		updates["quiz_time_limit_minutes"] = *body.QuizTimeLimitMinutes
	}
	if body.QuizIsPublished != nil {
		updates["quiz_is_published"] = *body.QuizIsPublished
	}
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "No changes", dto.ToQuizDTO(rec))
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&rec).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update quiz")
	}
	return helper.JsonUpdated(c, "Quiz updated", dto.ToQuizDTO(rec))
}

// =============================
// 🗑️ Delete (soft; ?hard=true untuk permanen)
// =============================
func (ctrl *QuizAdminController) DeleteQuiz(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	hard := strings.EqualFold(c.Query("hard"), "true") || c.Query("hard") == "1"

	var db *gorm.DB
	if hard {
		db = ctrl.DB.WithContext(c.UserContext()).Unscoped().Delete(&model.QuizModel{}, "quiz_id = ?", id)
	} else {
		db = ctrl.DB.WithContext(c.UserContext()).Delete(&model.QuizModel{}, "quiz_id = ?", id)
	}
	if db.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete quiz")
	}
	if db.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
	}
	return helper.JsonDeleted(c, "Quiz deleted", fiber.Map{"quiz_id": id})
}
