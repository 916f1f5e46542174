package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeSubmitter struct {
	mu         sync.Mutex
	submits    []SubmitResult
	abandons   int
	err        error
	abandonErr error
	gate       chan struct{} // kalau non-nil, SubmitAttempt menunggu di sini
	entered    chan struct{}
}

func (f *fakeSubmitter) SubmitAttempt(_ context.Context, res SubmitResult) error {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.submits = append(f.submits, res)
	return nil
}

func (f *fakeSubmitter) AbandonAttempt(_ context.Context, _, _, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.abandonErr != nil {
		return f.abandonErr
	}
	f.abandons++
	return nil
}

func (f *fakeSubmitter) submitCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.submits)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("store down")
}
func (failingStore) Set(context.Context, string, []byte) error { return errors.New("store down") }
func (failingStore) Remove(context.Context, ...string) error   { return errors.New("store down") }

func testQuiz(numQuestions, timeLimitMinutes int) Quiz {
	q := Quiz{ID: "quiz-1", Title: "Go Basics", TimeLimitMinutes: timeLimitMinutes}
	for i := 0; i < numQuestions; i++ {
		q.Questions = append(q.Questions, Question{
			ID:      QuestionID(fmt.Sprintf("q%d", i+1)),
			Type:    QuestionTypeMultipleChoice,
			Options: []OptionID{OptionID(fmt.Sprintf("q%d-a", i+1)), OptionID(fmt.Sprintf("q%d-b", i+1))},
		})
	}
	return q
}

func frozenClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// ---- tests ----

func TestResumeAfterReload(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sub := &fakeSubmitter{}
	quiz := testQuiz(5, 0)

	s := Initialize(ctx, quiz, "att-1", "user-1", Deps{Store: store, Submitter: sub})
	require.Equal(t, StateUntimed, s.State())

	require.NoError(t, s.SelectAnswer(ctx, "q2", "q2-b"))
	require.NoError(t, s.SelectAnswer(ctx, "q1", "q1-a"))
	require.NoError(t, s.SelectAnswer(ctx, "q2", "q2-a")) // ganti jawaban
	require.NoError(t, s.GoTo(ctx, 3))

	// simulasi reload: initialize ulang dari store yang sama
	restored := Initialize(ctx, quiz, "att-1", "user-1", Deps{Store: store, Submitter: sub})
	view := restored.Snapshot()

	require.Equal(t, 3, view.CurrentIndex)
	require.Equal(t, []Answer{
		{QuestionID: "q2", SelectedOptionID: "q2-a"},
		{QuestionID: "q1", SelectedOptionID: "q1-a"},
	}, view.Answers)
}

func TestTimerCountsDownToExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sub := &fakeSubmitter{}
	quiz := testQuiz(2, 1) // 60 detik

	s := Initialize(ctx, quiz, "att-1", "user-1", Deps{Store: store, Submitter: sub})
	require.Equal(t, StateTimedRunning, s.State())
	require.Equal(t, 60, s.Snapshot().RemainingSeconds)

	prev := 60
	for i := 0; i < 59; i++ {
		fired := s.Tick(ctx)
		require.False(t, fired)
		cur := s.Snapshot().RemainingSeconds
		require.Less(t, cur, prev)
		require.False(t, s.Snapshot().TimeExpired)
		prev = cur
	}
	require.Equal(t, 1, prev)

	fired := s.Tick(ctx)
	require.True(t, fired)
	view := s.Snapshot()
	require.Equal(t, 0, view.RemainingSeconds)
	require.True(t, view.TimeExpired)
}

func TestRestoreCorrectsForElapsedWallClock(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sub := &fakeSubmitter{}
	quiz := testQuiz(2, 5)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	raw, err := json.Marshal(timerSnapshot{RemainingSeconds: 100, SavedAt: base})
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, timerKey(quiz.ID, "att-1", "user-1"), raw))

	// kembali 130 detik kemudian: sisa 100 - 130 => sudah lewat
	s := Initialize(ctx, quiz, "att-1", "user-1", Deps{
		Store: store, Submitter: sub, Now: frozenClock(base.Add(130 * time.Second)),
	})
	view := s.Snapshot()
	require.Equal(t, 0, view.RemainingSeconds)
	require.True(t, view.TimeExpired)
	require.Equal(t, StateTimedExpired, s.State())

	// masih dalam budget: sisa 100 - 40 = 60
	store2 := NewMemoryStore()
	require.NoError(t, store2.Set(ctx, timerKey(quiz.ID, "att-1", "user-1"), raw))
	s2 := Initialize(ctx, quiz, "att-1", "user-1", Deps{
		Store: store2, Submitter: sub, Now: frozenClock(base.Add(40 * time.Second)),
	})
	require.Equal(t, 60, s2.Snapshot().RemainingSeconds)
	require.Equal(t, StateTimedRunning, s2.State())
}

func TestNoDoubleSubmit(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sub := &fakeSubmitter{gate: make(chan struct{}), entered: make(chan struct{}, 1)}
	quiz := testQuiz(1, 0)

	s := Initialize(ctx, quiz, "att-1", "user-1", Deps{Store: store, Submitter: sub})
	require.NoError(t, s.SelectAnswer(ctx, "q1", "q1-a"))

	done := make(chan error, 1)
	go func() { done <- s.Submit(ctx, false) }()
	<-sub.entered // submit pertama sedang in-flight

	// submit kedua: no-op karena guard, tidak menunggu dan tidak memanggil submitter
	require.NoError(t, s.Submit(ctx, false))

	close(sub.gate)
	require.NoError(t, <-done)
	require.Equal(t, 1, sub.submitCount())
	require.Equal(t, StateSubmitted, s.State())
}

func TestAutoSubmitOnExpiryBypassesCompleteness(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sub := &fakeSubmitter{}
	quiz := testQuiz(5, 1)

	s := Initialize(ctx, quiz, "att-1", "user-1", Deps{Store: store, Submitter: sub})
	require.NoError(t, s.SelectAnswer(ctx, "q1", "q1-a"))
	require.NoError(t, s.SelectAnswer(ctx, "q4", "q4-b"))

	for i := 0; i < 60; i++ {
		s.Tick(ctx)
	}

	require.Equal(t, 1, sub.submitCount())
	res := sub.submits[0]
	require.True(t, res.AutoSubmitted)
	require.Equal(t, []Answer{
		{QuestionID: "q1", SelectedOptionID: "q1-a"},
		{QuestionID: "q4", SelectedOptionID: "q4-b"},
	}, res.Answers)
	require.Equal(t, StateSubmitted, s.State())

	// timer berhenti: tick lanjutan tidak melakukan apa-apa
	require.False(t, s.Tick(ctx))
	require.Equal(t, 1, sub.submitCount())
}

func TestRequestSubmitRejectsIncomplete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sub := &fakeSubmitter{}
	quiz := testQuiz(5, 0)

	s := Initialize(ctx, quiz, "att-1", "user-1", Deps{Store: store, Submitter: sub})
	require.NoError(t, s.SelectAnswer(ctx, "q1", "q1-a"))
	require.NoError(t, s.SelectAnswer(ctx, "q2", "q2-a"))

	err := s.RequestSubmit(ctx)
	var incomplete *IncompleteAnswersError
	require.ErrorAs(t, err, &incomplete)
	require.Equal(t, 2, incomplete.Answered)
	require.Equal(t, 5, incomplete.Total)
	require.Equal(t, 0, sub.submitCount())

	// konfirmasi "submit anyway"
	require.NoError(t, s.Submit(ctx, true))
	require.Equal(t, 1, sub.submitCount())
}

func TestAbandonClearsState(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sub := &fakeSubmitter{}
	quiz := testQuiz(3, 2)

	s := Initialize(ctx, quiz, "att-1", "user-1", Deps{Store: store, Submitter: sub})
	require.NoError(t, s.SelectAnswer(ctx, "q1", "q1-b"))
	require.NoError(t, s.GoTo(ctx, 2))
	s.Tick(ctx)

	require.NoError(t, s.Abandon(ctx))
	require.Equal(t, StateAbandoned, s.State())
	require.Equal(t, 1, sub.abandons)
	require.Equal(t, 0, store.Len())

	fresh := Initialize(ctx, quiz, "att-1", "user-1", Deps{Store: store, Submitter: sub})
	view := fresh.Snapshot()
	require.Empty(t, view.Answers)
	require.Equal(t, 0, view.CurrentIndex)
	require.Equal(t, 120, view.RemainingSeconds)
}

func TestNavigationClamps(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sub := &fakeSubmitter{}
	quiz := testQuiz(5, 0)

	s := Initialize(ctx, quiz, "att-1", "user-1", Deps{Store: store, Submitter: sub})
	require.NoError(t, s.GoTo(ctx, 2))

	require.NoError(t, s.GoTo(ctx, -1))
	require.Equal(t, 2, s.Snapshot().CurrentIndex)
	require.NoError(t, s.GoTo(ctx, 5))
	require.Equal(t, 2, s.Snapshot().CurrentIndex)

	require.NoError(t, s.Next(ctx))
	require.Equal(t, 3, s.Snapshot().CurrentIndex)
	require.NoError(t, s.Previous(ctx))
	require.NoError(t, s.Previous(ctx))
	require.Equal(t, 1, s.Snapshot().CurrentIndex)
}

func TestAnswerRejectedWhenExpiredOrUnknown(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sub := &fakeSubmitter{}
	quiz := testQuiz(2, 0)

	s := Initialize(ctx, quiz, "att-1", "user-1", Deps{Store: store, Submitter: sub})
	require.ErrorIs(t, s.SelectAnswer(ctx, "nope", "q1-a"), ErrUnknownQuestion)
	require.ErrorIs(t, s.SelectAnswer(ctx, "q1", "q2-a"), ErrUnknownOption)

	timed := testQuiz(2, 1)
	s2 := Initialize(ctx, timed, "att-2", "user-1", Deps{Store: store, Submitter: sub})
	for i := 0; i < 60; i++ {
		s2.Tick(ctx)
	}
	require.ErrorIs(t, s2.SelectAnswer(ctx, "q1", "q1-a"), ErrTimeExpired)
	require.ErrorIs(t, s2.GoTo(ctx, 1), ErrTimeExpired)
}

func TestSubmitFailureIsRecoverable(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sub := &fakeSubmitter{err: errors.New("network down")}
	quiz := testQuiz(1, 0)

	s := Initialize(ctx, quiz, "att-1", "user-1", Deps{Store: store, Submitter: sub})
	require.NoError(t, s.SelectAnswer(ctx, "q1", "q1-a"))

	require.Error(t, s.Submit(ctx, false))
	require.Equal(t, StateUntimed, s.State()) // kembali ke state sebelumnya
	require.NotZero(t, store.Len())           // snapshot tidak dihapus

	// retry setelah jaringan pulih
	sub.mu.Lock()
	sub.err = nil
	sub.mu.Unlock()
	require.NoError(t, s.Submit(ctx, false))
	require.Equal(t, StateSubmitted, s.State())
	require.Equal(t, 0, store.Len())
}

func TestStorageFailureDegradesToFreshState(t *testing.T) {
	ctx := context.Background()
	sub := &fakeSubmitter{}
	quiz := testQuiz(3, 1)

	// store mati total: sesi tetap jalan, hanya resume yang hilang
	s := Initialize(ctx, quiz, "att-1", "user-1", Deps{Store: failingStore{}, Submitter: sub})
	require.Equal(t, StateTimedRunning, s.State())
	require.Equal(t, 60, s.Snapshot().RemainingSeconds)

	require.NoError(t, s.SelectAnswer(ctx, "q1", "q1-a"))
	require.NoError(t, s.GoTo(ctx, 1))
	s.Tick(ctx)
	require.Equal(t, 59, s.Snapshot().RemainingSeconds)
}

func TestRegistryObtainAndTickAll(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sub := &fakeSubmitter{}
	reg := NewRegistry(store, sub)
	quiz := testQuiz(2, 1)

	s1 := reg.Obtain(ctx, quiz, "att-1", "user-1")
	s2 := reg.Obtain(ctx, quiz, "att-1", "user-1")
	require.Same(t, s1, s2)

	other := reg.Obtain(ctx, quiz, "att-2", "user-2")
	require.NotSame(t, s1, other)

	reg.TickAll(ctx)
	require.Equal(t, 59, s1.Snapshot().RemainingSeconds)
	require.Equal(t, 59, other.Snapshot().RemainingSeconds)

	// terminal session dibuang saat tick berikutnya
	require.NoError(t, other.Abandon(ctx))
	reg.TickAll(ctx)
	_, ok := reg.Lookup(quiz.ID, "att-2", "user-2")
	require.False(t, ok)
	_, ok = reg.Lookup(quiz.ID, "att-1", "user-1")
	require.True(t, ok)
}

func TestRegistryEvictsIdleSessions(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sub := &fakeSubmitter{}
	reg := NewRegistry(store, sub)

	cur := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return cur }

	quiz := testQuiz(3, 0) // untimed: tidak ada timer yang menahan sesi
	s := reg.Obtain(ctx, quiz, "att-1", "user-1")
	require.NoError(t, s.SelectAnswer(ctx, "q1", "q1-a"))

	// masih di bawah ambang idle: tetap di registry
	cur = cur.Add(idleEvictAfter - time.Minute)
	reg.TickAll(ctx)
	_, ok := reg.Lookup(quiz.ID, "att-1", "user-1")
	require.True(t, ok)

	// lewat ambang: entry dibuang, state tetap pulih dari snapshot
	cur = cur.Add(2 * time.Minute)
	reg.TickAll(ctx)
	_, ok = reg.Lookup(quiz.ID, "att-1", "user-1")
	require.False(t, ok)

	restored := reg.Obtain(ctx, quiz, "att-1", "user-1")
	require.Equal(t,
		[]Answer{{QuestionID: "q1", SelectedOptionID: "q1-a"}},
		restored.Snapshot().Answers)
}

func TestRegistryKeepsIdleTimedRunningSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sub := &fakeSubmitter{}
	reg := NewRegistry(store, sub)

	cur := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return cur }

	quiz := testQuiz(3, 120)
	s := reg.Obtain(ctx, quiz, "att-1", "user-1")

	// user diam lama tapi timer masih berjalan: auto-submit harus tetap
	// bisa terjadi, jadi sesi tidak dieviksi
	cur = cur.Add(idleEvictAfter + time.Minute)
	reg.TickAll(ctx)
	_, ok := reg.Lookup(quiz.ID, "att-1", "user-1")
	require.True(t, ok)
	require.Equal(t, StateTimedRunning, s.State())
}

func TestConcurrentNextAppliesEveryStep(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sub := &fakeSubmitter{}
	quiz := testQuiz(20, 0)

	s := Initialize(ctx, quiz, "att-1", "user-1", Deps{Store: store, Submitter: sub})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Next(ctx)
		}()
	}
	wg.Wait()

	// baca-hitung-tulis dalam satu lock: tidak ada increment yang hilang
	require.Equal(t, 10, s.Snapshot().CurrentIndex)
}

func TestAbandonPersistFailureSurfaced(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sub := &fakeSubmitter{abandonErr: errors.New("db down")}
	quiz := testQuiz(3, 0)

	s := Initialize(ctx, quiz, "att-1", "user-1", Deps{Store: store, Submitter: sub})
	require.NoError(t, s.SelectAnswer(ctx, "q1", "q1-a"))

	err := s.Abandon(ctx)
	require.Error(t, err)

	// lokal tetap terminal dan snapshot sudah terlanjur dihapus; retry
	// berjalan lewat sesi baru
	require.Equal(t, StateAbandoned, s.State())
	require.Equal(t, 0, store.Len())
	require.Equal(t, 0, sub.abandons)
}
