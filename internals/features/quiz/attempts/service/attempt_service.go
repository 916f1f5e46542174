package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"edukasiku_backend/internals/features/quiz/attempts/model"
	questionModel "edukasiku_backend/internals/features/quiz/questions/model"
	quizModel "edukasiku_backend/internals/features/quiz/quizzes/model"
	"edukasiku_backend/internals/features/quiz/session"
)

var (
	ErrQuizNotFound    = errors.New("quiz not found or not published")
	ErrAttemptNotFound = errors.New("attempt not found")
)

// AttemptService memegang lifecycle attempt di DB dan menjadi Submitter
// untuk state machine sesi: grading + persist hasil terjadi di sini.
type AttemptService struct {
	DB *gorm.DB
}

func NewAttemptService(db *gorm.DB) *AttemptService {
	return &AttemptService{DB: db}
}

// =============================
// 📖 Definisi quiz untuk sesi
// =============================

// LoadSessionQuiz memetakan quiz + soal + opsi (terurut) ke bentuk
// read-only yang dipakai state machine.
func (s *AttemptService) LoadSessionQuiz(ctx context.Context, quizID string) (session.Quiz, error) {
	var quiz quizModel.QuizModel
	if err := s.DB.WithContext(ctx).
		First(&quiz, "quiz_id = ? AND quiz_is_published = TRUE", quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return session.Quiz{}, ErrQuizNotFound
		}
		return session.Quiz{}, err
	}

	var questions []questionModel.QuizQuestionModel
	if err := s.DB.WithContext(ctx).
		Preload("QuizQuestionOptions", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_question_option_position ASC")
		}).
		Where("quiz_question_quiz_id = ?", quizID).
		Order("quiz_question_position ASC").
		Find(&questions).Error; err != nil {
		return session.Quiz{}, err
	}

	out := session.Quiz{
		ID:               quiz.QuizID,
		Title:            quiz.QuizTitle,
		TimeLimitMinutes: quiz.QuizTimeLimitMinutes,
	}
	for _, q := range questions {
		sq := session.Question{
			ID:   session.QuestionID(q.QuizQuestionID),
			Type: session.QuestionType(q.QuizQuestionType),
		}
		for _, o := range q.QuizQuestionOptions {
			sq.Options = append(sq.Options, session.OptionID(o.QuizQuestionOptionID))
		}
		out.Questions = append(out.Questions, sq)
	}
	return out, nil
}

// =============================
// ▶️ Start / resume attempt
// =============================

// StartAttempt mengembalikan attempt in_progress yang ada (resume) atau
// membuat baru. Attempt dibuat server-side sebelum sesi dimulai.
func (s *AttemptService) StartAttempt(ctx context.Context, quizID, userID string) (model.QuizAttemptModel, error) {
	var attempt model.QuizAttemptModel
	err := s.DB.WithContext(ctx).
		Where("quiz_attempt_quiz_id = ? AND quiz_attempt_user_id = ? AND quiz_attempt_status = ?",
			quizID, userID, model.AttemptStatusInProgress).
		Order("quiz_attempt_started_at DESC").
		First(&attempt).Error
	if err == nil {
		return attempt, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.QuizAttemptModel{}, err
	}

	attempt = model.QuizAttemptModel{
		QuizAttemptQuizID:    quizID,
		QuizAttemptUserID:    userID,
		QuizAttemptStatus:    model.AttemptStatusInProgress,
		QuizAttemptStartedAt: time.Now(),
	}
	if err := s.DB.WithContext(ctx).Create(&attempt).Error; err != nil {
		return model.QuizAttemptModel{}, err
	}
	return attempt, nil
}

// FindInProgress mencari attempt in_progress milik user untuk quiz ini.
func (s *AttemptService) FindInProgress(ctx context.Context, quizID, userID string) (model.QuizAttemptModel, error) {
	var attempt model.QuizAttemptModel
	err := s.DB.WithContext(ctx).
		Where("quiz_attempt_quiz_id = ? AND quiz_attempt_user_id = ? AND quiz_attempt_status = ?",
			quizID, userID, model.AttemptStatusInProgress).
		Order("quiz_attempt_started_at DESC").
		First(&attempt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.QuizAttemptModel{}, ErrAttemptNotFound
	}
	return attempt, err
}

func (s *AttemptService) FindByID(ctx context.Context, attemptID string) (model.QuizAttemptModel, error) {
	var attempt model.QuizAttemptModel
	err := s.DB.WithContext(ctx).First(&attempt, "quiz_attempt_id = ?", attemptID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.QuizAttemptModel{}, ErrAttemptNotFound
	}
	return attempt, err
}

// =============================
// 🧮 Submitter (dipanggil state machine)
// =============================

// SubmitAttempt menilai jawaban dan menutup attempt dalam satu transaksi.
// Jawaban dengan question_id yang sudah tidak ada di set soal saat ini
// dibuang; option_id yang sudah tidak milik soalnya tetap disimpan tapi
// bernilai nol.
func (s *AttemptService) SubmitAttempt(ctx context.Context, res session.SubmitResult) error {
	quiz, err := s.LoadSessionQuiz(ctx, res.QuizID)
	if err != nil {
		return err
	}

	known := make(map[session.QuestionID]session.Question, len(quiz.Questions))
	for _, q := range quiz.Questions {
		known[q.ID] = q
	}

	correctByQuestion := make(map[session.QuestionID]session.OptionID)
	var options []questionModel.QuizQuestionOptionModel
	if err := s.DB.WithContext(ctx).
		Joins("JOIN quiz_questions ON quiz_questions.quiz_question_id = quiz_question_options.quiz_question_option_question_id").
		Where("quiz_questions.quiz_question_quiz_id = ? AND quiz_question_options.quiz_question_option_is_correct = TRUE", res.QuizID).
		Find(&options).Error; err != nil {
		return err
	}
	for _, o := range options {
		correctByQuestion[session.QuestionID(o.QuizQuestionOptionQuestionID)] = session.OptionID(o.QuizQuestionOptionID)
	}

	kept := make([]session.Answer, 0, len(res.Answers))
	correctCount := 0
	for _, a := range res.Answers {
		if _, ok := known[a.QuestionID]; !ok {
			continue // soal sudah dihapus di tengah attempt
		}
		kept = append(kept, a)
		if correctByQuestion[a.QuestionID] == a.SelectedOptionID {
			correctCount++
		}
	}

	score := 0.0
	if total := len(quiz.Questions); total > 0 {
		score = float64(correctCount) / float64(total) * 100
	}

	payload, err := json.Marshal(kept)
	if err != nil {
		return err
	}

	now := time.Now()
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var attempt model.QuizAttemptModel
		if err := tx.
			Where("quiz_attempt_id = ? AND quiz_attempt_user_id = ?", res.AttemptID, res.UserID).
			First(&attempt).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAttemptNotFound
			}
			return err
		}
		if attempt.QuizAttemptStatus != model.AttemptStatusInProgress {
			return fmt.Errorf("attempt %s already %s", attempt.QuizAttemptID, attempt.QuizAttemptStatus)
		}

		duration := int(now.Sub(attempt.QuizAttemptStartedAt).Seconds())
		if duration < 0 {
			duration = 0
		}
		return tx.Model(&attempt).Updates(map[string]any{
			"quiz_attempt_status":           model.AttemptStatusSubmitted,
			"quiz_attempt_submitted_at":     now,
			"quiz_attempt_answers":          datatypes.JSON(payload),
			"quiz_attempt_answered_count":   len(kept),
			"quiz_attempt_correct_count":    correctCount,
			"quiz_attempt_score":            score,
			"quiz_attempt_duration_seconds": duration,
			"quiz_attempt_timed_out":        res.AutoSubmitted,
		}).Error
	})
}

// AbandonAttempt menandai attempt dibatalkan user. Tidak ada grading.
func (s *AttemptService) AbandonAttempt(ctx context.Context, quizID, attemptID, userID string) error {
	db := s.DB.WithContext(ctx).
		Model(&model.QuizAttemptModel{}).
		Where("quiz_attempt_id = ? AND quiz_attempt_quiz_id = ? AND quiz_attempt_user_id = ? AND quiz_attempt_status = ?",
			attemptID, quizID, userID, model.AttemptStatusInProgress).
		Update("quiz_attempt_status", model.AttemptStatusAbandoned)
	if db.Error != nil {
		return db.Error
	}
	if db.RowsAffected == 0 {
		return ErrAttemptNotFound
	}
	return nil
}
