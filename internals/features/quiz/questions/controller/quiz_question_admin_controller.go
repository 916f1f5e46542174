package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edukasiku_backend/internals/features/quiz/questions/dto"
	"edukasiku_backend/internals/features/quiz/questions/model"
	quizModel "edukasiku_backend/internals/features/quiz/quizzes/model"
	helper "edukasiku_backend/internals/helpers"
)

var validateQuestion = validator.New()

type QuizQuestionAdminController struct {
	DB *gorm.DB
}

func NewQuizQuestionAdminController(db *gorm.DB) *QuizQuestionAdminController {
	return &QuizQuestionAdminController{DB: db}
}

// Aturan bentuk soal yang tidak bisa diekspresikan tag validator:
// - tepat satu opsi benar
// - true_false harus tepat 2 opsi
// - tiap opsi minimal punya label atau gambar
func validateQuestionShape(body *dto.CreateQuizQuestionRequest) string {
	if body.QuizQuestionType == model.QuestionTypeTrueFalse && len(body.QuizQuestionOptions) != 2 {
		return "true_false question must have exactly 2 options"
	}
	correct := 0
	for _, o := range body.QuizQuestionOptions {
		if o.QuizQuestionOptionIsCorrect {
			correct++
		}
		hasLabel := o.QuizQuestionOptionLabel != nil && strings.TrimSpace(*o.QuizQuestionOptionLabel) != ""
		hasImage := o.QuizQuestionOptionImageURL != nil && strings.TrimSpace(*o.QuizQuestionOptionImageURL) != ""
		if !hasLabel && !hasImage {
			return "each option needs a label or an image"
		}
	}
	if correct != 1 {
		return "question must have exactly one correct option"
	}
	return ""
}

// =============================
// ➕ Create (soal + opsi sekaligus, satu transaksi)
// =============================
func (ctrl *QuizQuestionAdminController) CreateQuestion(c *fiber.Ctx) error {
	quizID := c.Params("quiz_id")
	if quizID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "quiz_id is required")
	}

	var body dto.CreateQuizQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuestion.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}
	if msg := validateQuestionShape(&body); msg != "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, msg)
	}

	var quiz quizModel.QuizModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&quiz, "quiz_id = ?", quizID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve quiz")
	}

	rec := model.QuizQuestionModel{
		QuizQuestionQuizID:   quizID,
		QuizQuestionBody:     body.QuizQuestionBody,
		QuizQuestionImage:    body.QuizQuestionImageURL,
		QuizQuestionType:     body.QuizQuestionType,
		QuizQuestionPosition: body.QuizQuestionPosition,
	}
	err := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
		for i, o := range body.QuizQuestionOptions {
			opt := model.QuizQuestionOptionModel{
				QuizQuestionOptionQuestionID: rec.QuizQuestionID,
				QuizQuestionOptionLabel:      o.QuizQuestionOptionLabel,
				QuizQuestionOptionImage:      o.QuizQuestionOptionImageURL,
				QuizQuestionOptionIsCorrect:  o.QuizQuestionOptionIsCorrect,
				QuizQuestionOptionPosition:   i,
			}
			if err := tx.Create(&opt).Error; err != nil {
				return err
			}
			rec.QuizQuestionOptions = append(rec.QuizQuestionOptions, opt)
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create question")
	}

	return helper.JsonCreated(c, "Question created", dto.ToAdminQuizQuestionDTO(rec))
}

// =============================
// 📄 List by quiz (versi admin, kunci jawaban ikut)
// =============================
func (ctrl *QuizQuestionAdminController) GetQuestionsByQuiz(c *fiber.Ctx) error {
	quizID := c.Params("quiz_id")
	if quizID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "quiz_id is required")
	}

	var rows []model.QuizQuestionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("QuizQuestionOptions", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_question_option_position ASC")
		}).
		Where("quiz_question_quiz_id = ?", quizID).
		Order("quiz_question_position ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve questions")
	}

	resp := make([]dto.AdminQuizQuestionDTO, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, dto.ToAdminQuizQuestionDTO(r))
	}
	return helper.JsonList(c, "", resp, nil)
}

// =============================
// ✏️ Update (partial, tanpa ganti opsi)
// =============================
func (ctrl *QuizQuestionAdminController) UpdateQuestion(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	var body dto.UpdateQuizQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuestion.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	updates := map[string]any{}
	if body.QuizQuestionBody != nil {
		updates["quiz_question_body"] = *body.QuizQuestionBody
	}
	if body.QuizQuestionImageURL != nil {
		updates["quiz_question_image_url"] = *body.QuizQuestionImageURL
	}
	if body.QuizQuestionPosition != nil {
		updates["quiz_question_position"] = *body.QuizQuestionPosition
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	db := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.QuizQuestionModel{}).
		Where("quiz_question_id = ?", id).
		Updates(updates)
	if db.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update question")
	}
	if db.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}
	return helper.JsonUpdated(c, "Question updated", fiber.Map{"quiz_question_id": id})
}

// =============================
// 🗑️ Delete (opsi ikut terhapus)
// =============================
func (ctrl *QuizQuestionAdminController) DeleteQuestion(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id is required")
	}

	err := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.QuizQuestionOptionModel{},
			"quiz_question_option_question_id = ?", id).Error; err != nil {
			return err
		}
		db := tx.Delete(&model.QuizQuestionModel{}, "quiz_question_id = ?", id)
		if db.Error != nil {
			return db.Error
		}
		if db.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err == gorm.ErrRecordNotFound {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete question")
	}
	return helper.JsonDeleted(c, "Question deleted", fiber.Map{"quiz_question_id": id})
}
