package session

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"
)

// =============================
// 🧩 Tipe dasar
// =============================

// QuestionID / OptionID: newtype di boundary supaya jawaban tidak bisa
// tertukar antara id pertanyaan dan id opsi.
type QuestionID string
type OptionID string

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeTrueFalse      QuestionType = "true_false"
)

// Quiz adalah definisi read-only selama sesi berjalan. Controller HTTP
// memetakan model GORM ke bentuk ini saat start.
type Quiz struct {
	ID               string
	Title            string
	TimeLimitMinutes int // 0 = tanpa batas waktu
	Questions        []Question
}

type Question struct {
	ID      QuestionID
	Type    QuestionType
	Options []OptionID
}

// Answer: satu pasangan (pertanyaan, opsi terpilih). Hanya pertanyaan yang
// terjawab yang punya entry.
type Answer struct {
	QuestionID       QuestionID `json:"question_id"`
	SelectedOptionID OptionID   `json:"selected_option_id"`
}

// Submitter menerima hasil akhir sesi (grading + persist attempt ada di
// layer attempts, bukan di sini).
type Submitter interface {
	SubmitAttempt(ctx context.Context, result SubmitResult) error
	AbandonAttempt(ctx context.Context, quizID, attemptID, userID string) error
}

type SubmitResult struct {
	QuizID        string
	AttemptID     string
	UserID        string
	Answers       []Answer // urutan jawaban, hanya yang terjawab
	AutoSubmitted bool     // true kalau dipicu habisnya waktu
}

// =============================
// 🔁 State machine
// =============================

type State string

const (
	StateUntimed      State = "untimed"
	StateTimedRunning State = "timed_running"
	StateTimedExpired State = "timed_expired"
	StateSubmitting   State = "submitting"
	StateSubmitted    State = "submitted"
	StateAbandoned    State = "abandoned"
)

// Session memegang seluruh state satu attempt. Semua mutasi lewat method
// di bawah; mutex per-sesi karena runner (tick) dan handler HTTP bisa
// menyentuh sesi yang sama.
type Session struct {
	mu sync.Mutex

	quiz      Quiz
	attemptID string
	userID    string

	answers          []Answer // ordered, upsert by question id
	currentIndex     int
	remainingSeconds int
	timed            bool
	timeExpired      bool
	submitInFlight   bool
	state            State
	lastActive       time.Time // interaksi user terakhir, bukan tick runner

	store     SnapshotStore
	submitter Submitter
	now       func() time.Time
}

// Deps: semua dependensi diinject supaya sesi bisa ditest tanpa Redis,
// tanpa jam asli, dan tanpa DB.
type Deps struct {
	Store     SnapshotStore
	Submitter Submitter
	Now       func() time.Time
}

// Initialize membuat sesi baru atau memulihkan dari snapshot.
//
// Kegagalan baca snapshot TIDAK fatal: diperlakukan seperti tidak ada
// snapshot (mulai fresh), karena yang hilang hanya kenyamanan resume.
func Initialize(ctx context.Context, quiz Quiz, attemptID, userID string, deps Deps) *Session {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	s := &Session{
		quiz:      quiz,
		attemptID: attemptID,
		userID:    userID,
		answers:   []Answer{},
		store:     deps.Store,
		submitter: deps.Submitter,
		now:       deps.Now,
	}
	s.lastActive = s.now()

	// 1) restore jawaban + posisi
	if raw, ok, err := s.store.Get(ctx, s.answersKey()); err != nil {
		log.Printf("[QUIZ-SESSION] snapshot read failed (answers), fresh start: %v", err)
	} else if ok {
		var snap answersSnapshot
		if err := json.Unmarshal(raw, &snap); err != nil {
			log.Printf("[QUIZ-SESSION] snapshot corrupt (answers), fresh start: %v", err)
		} else {
			s.answers = snap.Answers
			if s.answers == nil {
				s.answers = []Answer{}
			}
			s.currentIndex = clampIndex(snap.CurrentIndex, len(quiz.Questions))
		}
	}

	// 2) timer
	if quiz.TimeLimitMinutes <= 0 {
		s.state = StateUntimed
		return s
	}
	s.timed = true
	s.remainingSeconds = quiz.TimeLimitMinutes * 60

	if raw, ok, err := s.store.Get(ctx, s.timerKey()); err != nil {
		log.Printf("[QUIZ-SESSION] snapshot read failed (timer), full budget: %v", err)
	} else if ok {
		var snap timerSnapshot
		if err := json.Unmarshal(raw, &snap); err != nil {
			log.Printf("[QUIZ-SESSION] snapshot corrupt (timer), full budget: %v", err)
		} else {
			// Koreksi wall-clock: tab boleh tertutup berapa lama pun,
			// sisa waktu dihitung dari (remaining, saved_at), bukan
			// dari countdown mentah.
			elapsed := int(s.now().Sub(snap.SavedAt).Seconds())
			if elapsed < 0 {
				elapsed = 0
			}
			s.remainingSeconds = snap.RemainingSeconds - elapsed
		}
	}

	if s.remainingSeconds <= 0 {
		// User kembali setelah waktunya lewat saat tab tertutup.
		s.remainingSeconds = 0
		s.timeExpired = true
		s.state = StateTimedExpired
		return s
	}
	s.state = StateTimedRunning
	return s
}

func (s *Session) answersKey() string { return answersKey(s.quiz.ID, s.attemptID, s.userID) }
func (s *Session) timerKey() string   { return timerKey(s.quiz.ID, s.attemptID, s.userID) }

// =============================
// ✍️ Mutators
// =============================

// SelectAnswer meng-upsert jawaban lalu menulis snapshot write-through;
// crash di tengah sesi maksimal kehilangan satu tick timer, tidak pernah
// kehilangan jawaban.
func (s *Session) SelectAnswer(ctx context.Context, questionID QuestionID, optionID OptionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()

	if err := s.mutableLocked(); err != nil {
		return err
	}

	q, found := s.findQuestion(questionID)
	if !found {
		return ErrUnknownQuestion
	}
	if !optionBelongs(q, optionID) {
		return ErrUnknownOption
	}

	upserted := false
	for i := range s.answers {
		if s.answers[i].QuestionID == questionID {
			s.answers[i].SelectedOptionID = optionID
			upserted = true
			break
		}
	}
	if !upserted {
		s.answers = append(s.answers, Answer{QuestionID: questionID, SelectedOptionID: optionID})
	}

	s.persistAnswersLocked(ctx)
	return nil
}

// GoTo clamp ke [0, len-1]; index di luar range tidak mengubah posisi.
func (s *Session) GoTo(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goToLocked(ctx, index)
}

// Next/Previous menghitung target dari posisi sekarang di dalam satu
// critical section; posisi tidak bisa berubah di antara baca dan tulis.
func (s *Session) Next(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goToLocked(ctx, s.currentIndex+1)
}

func (s *Session) Previous(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goToLocked(ctx, s.currentIndex-1)
}

func (s *Session) goToLocked(ctx context.Context, index int) error {
	s.touchLocked()
	if err := s.mutableLocked(); err != nil {
		return err
	}
	if index < 0 || index >= len(s.quiz.Questions) {
		return nil
	}
	s.currentIndex = index
	s.persistAnswersLocked(ctx)
	return nil
}

// Tick dipanggil runner sekali per detik selama timed & belum expired &
// tidak sedang submit. Return true kalau tick ini memicu auto-submit.
func (s *Session) Tick(ctx context.Context) bool {
	s.mu.Lock()
	if !s.timed || s.timeExpired || s.submitInFlight || s.terminalLocked() {
		s.mu.Unlock()
		return false
	}

	s.remainingSeconds--
	if s.remainingSeconds > 0 {
		s.persistTimerLocked(ctx)
		s.mu.Unlock()
		return false
	}

	// 0 tercapai: transisi monotonic ke expired, timer berhenti.
	s.remainingSeconds = 0
	s.timeExpired = true
	s.state = StateTimedExpired
	s.persistTimerLocked(ctx)
	s.mu.Unlock()

	// Auto-submit: jawaban seadanya, tanpa cek kelengkapan. Kalau submit
	// manual sudah in-flight, guard di submit() membuatnya no-op.
	if err := s.Submit(ctx, true); err != nil {
		log.Printf("[QUIZ-SESSION] auto-submit failed (attempt=%s): %v", s.attemptID, err)
	}
	return true
}

// RequestSubmit: gerbang kelengkapan sebelum submit manual. Belum lengkap
// berarti IncompleteAnswersError dan TIDAK ada call keluar; konfirmasi
// "submit anyway" dilakukan caller via Submit(force=true).
func (s *Session) RequestSubmit(ctx context.Context) error {
	s.mu.Lock()
	answered := len(s.answers)
	total := len(s.quiz.Questions)
	s.mu.Unlock()

	if answered < total {
		return &IncompleteAnswersError{Answered: answered, Total: total}
	}
	return s.Submit(ctx, false)
}

// Submit mengirim jawaban ke Submitter. Idempotent lewat submitInFlight:
// pemanggilan kedua selama yang pertama berjalan adalah no-op (bukan
// error), supaya auto-submit dan manual submit tidak dobel.
func (s *Session) Submit(ctx context.Context, force bool) error {
	s.mu.Lock()
	s.touchLocked()
	if s.terminalLocked() {
		s.mu.Unlock()
		return ErrSessionTerminal
	}
	if s.submitInFlight {
		s.mu.Unlock()
		return nil
	}
	if !force && len(s.answers) < len(s.quiz.Questions) {
		answered, total := len(s.answers), len(s.quiz.Questions)
		s.mu.Unlock()
		return &IncompleteAnswersError{Answered: answered, Total: total}
	}

	prev := s.state
	auto := s.timeExpired
	s.submitInFlight = true
	s.state = StateSubmitting

	payload := make([]Answer, len(s.answers))
	copy(payload, s.answers)
	s.mu.Unlock()

	err := s.submitter.SubmitAttempt(ctx, SubmitResult{
		QuizID:        s.quiz.ID,
		AttemptID:     s.attemptID,
		UserID:        s.userID,
		Answers:       payload,
		AutoSubmitted: auto,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitInFlight = false
	if err != nil {
		// Recoverable: state & snapshot dipertahankan untuk retry.
		s.state = prev
		return err
	}

	s.state = StateSubmitted
	s.clearSnapshotsLocked(ctx)
	return nil
}

// Abandon: keluar eksplisit sebelum submit. Destruktif: snapshot dihapus,
// tidak ada yang bisa dipulihkan setelah ini. Kalau persist ke DB gagal,
// error diteruskan ke caller; sesi lokal sudah terminal, retry harus lewat
// sesi baru.
func (s *Session) Abandon(ctx context.Context) error {
	s.mu.Lock()
	s.touchLocked()
	if s.submitInFlight {
		s.mu.Unlock()
		return ErrSubmitInFlight
	}
	if s.terminalLocked() {
		s.mu.Unlock()
		return ErrSessionTerminal
	}
	s.state = StateAbandoned
	s.clearSnapshotsLocked(ctx)
	s.mu.Unlock()

	if err := s.submitter.AbandonAttempt(ctx, s.quiz.ID, s.attemptID, s.userID); err != nil {
		log.Printf("[QUIZ-SESSION] abandon persist failed (attempt=%s): %v", s.attemptID, err)
		return err
	}
	return nil
}

// =============================
// 👁 Read-only view
// =============================

type View struct {
	QuizID           string   `json:"quiz_id"`
	AttemptID        string   `json:"attempt_id"`
	State            State    `json:"state"`
	CurrentIndex     int      `json:"current_question_index"`
	Answers          []Answer `json:"answers"`
	AnsweredCount    int      `json:"answered_count"`
	TotalQuestions   int      `json:"total_questions"`
	Timed            bool     `json:"timed"`
	RemainingSeconds int      `json:"time_remaining_seconds"`
	TimeExpired      bool     `json:"time_expired"`
}

func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()

	answers := make([]Answer, len(s.answers))
	copy(answers, s.answers)
	return View{
		QuizID:           s.quiz.ID,
		AttemptID:        s.attemptID,
		State:            s.state,
		CurrentIndex:     s.currentIndex,
		Answers:          answers,
		AnsweredCount:    len(answers),
		TotalQuestions:   len(s.quiz.Questions),
		Timed:            s.timed,
		RemainingSeconds: s.remainingSeconds,
		TimeExpired:      s.timeExpired,
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastActive: kapan user terakhir menyentuh sesi ini. Tick runner tidak
// dihitung; dipakai registry untuk eviksi idle.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// =============================
// 🔒 Internal (dipanggil dengan lock)
// =============================

func (s *Session) touchLocked() {
	s.lastActive = s.now()
}

func (s *Session) mutableLocked() error {
	if s.timeExpired {
		return ErrTimeExpired
	}
	if s.submitInFlight {
		return ErrSubmitInFlight
	}
	if s.terminalLocked() {
		return ErrSessionTerminal
	}
	return nil
}

func (s *Session) terminalLocked() bool {
	return s.state == StateSubmitted || s.state == StateAbandoned
}

func (s *Session) findQuestion(id QuestionID) (Question, bool) {
	for _, q := range s.quiz.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

func optionBelongs(q Question, id OptionID) bool {
	for _, o := range q.Options {
		if o == id {
			return true
		}
	}
	return false
}

func (s *Session) persistAnswersLocked(ctx context.Context) {
	raw, err := json.Marshal(answersSnapshot{Answers: s.answers, CurrentIndex: s.currentIndex})
	if err != nil {
		log.Printf("[QUIZ-SESSION] snapshot marshal failed: %v", err)
		return
	}
	if err := s.store.Set(ctx, s.answersKey(), raw); err != nil {
		log.Printf("[QUIZ-SESSION] snapshot write failed (answers): %v", err)
	}
}

func (s *Session) persistTimerLocked(ctx context.Context) {
	raw, err := json.Marshal(timerSnapshot{RemainingSeconds: s.remainingSeconds, SavedAt: s.now()})
	if err != nil {
		log.Printf("[QUIZ-SESSION] snapshot marshal failed: %v", err)
		return
	}
	if err := s.store.Set(ctx, s.timerKey(), raw); err != nil {
		log.Printf("[QUIZ-SESSION] snapshot write failed (timer): %v", err)
	}
}

func (s *Session) clearSnapshotsLocked(ctx context.Context) {
	if err := s.store.Remove(ctx, s.answersKey(), s.timerKey()); err != nil {
		log.Printf("[QUIZ-SESSION] snapshot clear failed: %v", err)
	}
}

func clampIndex(idx, total int) int {
	if total <= 0 {
		return 0
	}
	if idx < 0 {
		return 0
	}
	if idx >= total {
		return total - 1
	}
	return idx
}
