package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edukasiku_backend/internals/features/quiz/attempts/dto"
	"edukasiku_backend/internals/features/quiz/attempts/model"
	"edukasiku_backend/internals/features/quiz/attempts/service"
	"edukasiku_backend/internals/features/quiz/session"
	helper "edukasiku_backend/internals/helpers"
)

var validateAttempt = validator.New()

// QuizAttemptUserController menjembatani HTTP ↔ state machine sesi.
// Semua endpoint di sini milik user login; attempt selalu discope ke
// (quiz, user) dari path + token.
type QuizAttemptUserController struct {
	DB       *gorm.DB
	Service  *service.AttemptService
	Registry *session.Registry
}

func NewQuizAttemptUserController(db *gorm.DB, svc *service.AttemptService, reg *session.Registry) *QuizAttemptUserController {
	return &QuizAttemptUserController{DB: db, Service: svc, Registry: reg}
}

// obtainSession memuat definisi quiz + attempt in_progress lalu mengambil
// (atau memulihkan) sesi dari registry.
func (ctrl *QuizAttemptUserController) obtainSession(c *fiber.Ctx) (*session.Session, model.QuizAttemptModel, error) {
	quizID := c.Params("quiz_id")
	if quizID == "" {
		return nil, model.QuizAttemptModel{}, helper.JsonError(c, fiber.StatusBadRequest, "quiz_id is required")
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, model.QuizAttemptModel{}, helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	attempt, err := ctrl.Service.FindInProgress(c.UserContext(), quizID, userID)
	if err != nil {
		if errors.Is(err, service.ErrAttemptNotFound) {
			return nil, model.QuizAttemptModel{}, helper.JsonError(c, fiber.StatusNotFound, "No attempt in progress for this quiz")
		}
		return nil, model.QuizAttemptModel{}, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attempt")
	}

	quiz, err := ctrl.Service.LoadSessionQuiz(c.UserContext(), quizID)
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			return nil, model.QuizAttemptModel{}, helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		return nil, model.QuizAttemptModel{}, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load quiz")
	}

	sess := ctrl.Registry.Obtain(c.UserContext(), quiz, attempt.QuizAttemptID, userID)
	return sess, attempt, nil
}

// sessionError memetakan error state machine ke response HTTP.
func sessionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, session.ErrTimeExpired):
		return helper.JsonError(c, fiber.StatusConflict, "Time is up for this attempt")
	case errors.Is(err, session.ErrSubmitInFlight):
		return helper.JsonError(c, fiber.StatusConflict, "Submission already in progress")
	case errors.Is(err, session.ErrSessionTerminal):
		return helper.JsonError(c, fiber.StatusConflict, "Attempt already finished")
	case errors.Is(err, session.ErrUnknownQuestion):
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown question for this quiz")
	case errors.Is(err, session.ErrUnknownOption):
		return helper.JsonError(c, fiber.StatusBadRequest, "Option does not belong to this question")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process session action")
	}
}

// =============================
// ▶️ Start / resume
// =============================
func (ctrl *QuizAttemptUserController) StartAttempt(c *fiber.Ctx) error {
	quizID := c.Params("quiz_id")
	if quizID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "quiz_id is required")
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	quiz, err := ctrl.Service.LoadSessionQuiz(c.UserContext(), quizID)
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load quiz")
	}

	attempt, err := ctrl.Service.StartAttempt(c.UserContext(), quizID, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to start attempt")
	}

	sess := ctrl.Registry.Obtain(c.UserContext(), quiz, attempt.QuizAttemptID, userID)
	return helper.JsonOK(c, "Attempt started", dto.StartAttemptDTO{
		Attempt: dto.ToQuizAttemptDTO(attempt),
		Session: sess.Snapshot(),
	})
}

// =============================
// 👁 State (resume setelah reload)
// =============================
func (ctrl *QuizAttemptUserController) GetState(c *fiber.Ctx) error {
	sess, attempt, err := ctrl.obtainSession(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.StartAttemptDTO{
		Attempt: dto.ToQuizAttemptDTO(attempt),
		Session: sess.Snapshot(),
	})
}

// =============================
// ✍️ Select answer
// =============================
func (ctrl *QuizAttemptUserController) SelectAnswer(c *fiber.Ctx) error {
	var body dto.SelectAnswerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAttempt.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	sess, _, err := ctrl.obtainSession(c)
	if err != nil {
		return err
	}
	if err := sess.SelectAnswer(c.UserContext(),
		session.QuestionID(body.QuestionID), session.OptionID(body.SelectedOptionID)); err != nil {
		return sessionError(c, err)
	}
	return helper.JsonOK(c, "Answer saved", sess.Snapshot())
}

// =============================
// 🧭 Navigate
// =============================
func (ctrl *QuizAttemptUserController) Navigate(c *fiber.Ctx) error {
	var body dto.NavigateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAttempt.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}
	if body.Index == nil && body.Direction == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "index or direction is required")
	}

	sess, _, err := ctrl.obtainSession(c)
	if err != nil {
		return err
	}

	switch {
	case body.Index != nil:
		err = sess.GoTo(c.UserContext(), *body.Index)
	case *body.Direction == "next":
		err = sess.Next(c.UserContext())
	default:
		err = sess.Previous(c.UserContext())
	}
	if err != nil {
		return sessionError(c, err)
	}
	return helper.JsonOK(c, "", sess.Snapshot())
}

// =============================
// 📤 Submit (manual)
// =============================
func (ctrl *QuizAttemptUserController) Submit(c *fiber.Ctx) error {
	var body dto.SubmitRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}
	}

	sess, attempt, err := ctrl.obtainSession(c)
	if err != nil {
		return err
	}

	if body.Force {
		err = sess.Submit(c.UserContext(), true)
	} else {
		err = sess.RequestSubmit(c.UserContext())
	}

	var incomplete *session.IncompleteAnswersError
	if errors.As(err, &incomplete) {
		// Gerbang kelengkapan: tidak ada call keluar, caller boleh ulangi
		// dengan force=true setelah konfirmasi user.
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success":         false,
			"message":         fmt.Sprintf("Only %d of %d questions answered", incomplete.Answered, incomplete.Total),
			"error_code":      "INCOMPLETE_ANSWERS",
			"answered_count":  incomplete.Answered,
			"total_questions": incomplete.Total,
		})
	}
	if err != nil {
		if errors.Is(err, session.ErrSessionTerminal) {
			return helper.JsonError(c, fiber.StatusConflict, "Attempt already finished")
		}
		// Recoverable: state & snapshot masih utuh, silakan retry.
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit attempt, please retry")
	}

	ctrl.Registry.Release(attempt.QuizAttemptQuizID, attempt.QuizAttemptID, attempt.QuizAttemptUserID)

	graded, err := ctrl.Service.FindByID(c.UserContext(), attempt.QuizAttemptID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attempt result")
	}
	return helper.JsonOK(c, "Attempt submitted", dto.ToQuizAttemptDTO(graded))
}

// =============================
// 🗑️ Cancel / abandon
// =============================
func (ctrl *QuizAttemptUserController) Cancel(c *fiber.Ctx) error {
	sess, attempt, err := ctrl.obtainSession(c)
	if err != nil {
		return err
	}
	if err := sess.Abandon(c.UserContext()); err != nil {
		if errors.Is(err, session.ErrSubmitInFlight) || errors.Is(err, session.ErrSessionTerminal) {
			return sessionError(c, err)
		}
		// Persist ke DB gagal; sesi lokal terlanjur terminal, dibuang
		// supaya retry mulai dari sesi baru dengan attempt in_progress.
		ctrl.Registry.Release(attempt.QuizAttemptQuizID, attempt.QuizAttemptID, attempt.QuizAttemptUserID)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to abandon attempt, please retry")
	}
	ctrl.Registry.Release(attempt.QuizAttemptQuizID, attempt.QuizAttemptID, attempt.QuizAttemptUserID)
	return helper.JsonDeleted(c, "Attempt abandoned", fiber.Map{"quiz_attempt_id": attempt.QuizAttemptID})
}

// =============================
// 📄 Riwayat attempt milik user
// =============================
func (ctrl *QuizAttemptUserController) GetMyAttempts(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.QuizAttemptModel{}).
		Where("quiz_attempt_user_id = ?", userID)
	if quizID := c.Query("quiz_id"); quizID != "" {
		q = q.Where("quiz_attempt_quiz_id = ?", quizID)
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
