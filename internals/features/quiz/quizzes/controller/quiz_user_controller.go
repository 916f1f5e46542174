package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionDto "edukasiku_backend/internals/features/quiz/questions/dto"
	questionModel "edukasiku_backend/internals/features/quiz/questions/model"
	"edukasiku_backend/internals/features/quiz/quizzes/dto"
	"edukasiku_backend/internals/features/quiz/quizzes/model"
	helper "edukasiku_backend/internals/helpers"
)

type QuizUserController struct {
	DB *gorm.DB
}

func NewQuizUserController(db *gorm.DB) *QuizUserController {
	return &QuizUserController{DB: db}
}

type QuizWithQuestionsDTO struct {
	dto.QuizDTO
	QuizQuestions []questionDto.QuizQuestionDTO `json:"quiz_questions"`
}

// =============================
// 🔍 Get quiz + soal (tanpa kunci jawaban)
// =============================
func (ctrl *QuizUserController) GetQuizWithQuestions(c *fiber.Ctx) error {
	id := c.Params("quiz_id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "quiz_id is required")
	}

	var quiz model.QuizModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&quiz, "quiz_id = ? AND quiz_is_published = TRUE", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve quiz")
	}

	var questions []questionModel.QuizQuestionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("QuizQuestionOptions", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_question_option_position ASC")
		}).
		Where("quiz_question_quiz_id = ?", id).
		Order("quiz_question_position ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve questions")
	}

	resp := QuizWithQuestionsDTO{QuizDTO: dto.ToQuizDTO(quiz)}
	resp.QuizQuestions = make([]questionDto.QuizQuestionDTO, 0, len(questions))
	for _, q := range questions {
		resp.QuizQuestions = append(resp.QuizQuestions, questionDto.ToQuizQuestionDTO(q))
	}
	return helper.JsonOK(c, "", resp)
}
