package session

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// =============================
// 🗂 Registry sesi aktif
// =============================

// Sesi yang tidak disentuh user selama ini dibuang dari registry.
// Aman karena state-nya write-through ke snapshot store; Obtain berikutnya
// memulihkan persis dari sana. Sesi timed yang masih berjalan dikecualikan
// supaya auto-submit saat waktu habis tetap jalan.
const idleEvictAfter = 30 * time.Minute

// Registry memegang semua sesi hidup di proses ini. Satu sesi per
// (quiz, attempt, user); handler HTTP dan runner berbagi instance yang
// sama lewat sini.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	store     SnapshotStore
	submitter Submitter
	now       func() time.Time
}

func NewRegistry(store SnapshotStore, submitter Submitter) *Registry {
	return &Registry{
		sessions:  make(map[string]*Session),
		store:     store,
		submitter: submitter,
		now:       time.Now,
	}
}

func sessionKey(quizID, attemptID, userID string) string {
	return fmt.Sprintf("%s:%s:%s", quizID, attemptID, userID)
}

// Obtain mengembalikan sesi hidup kalau ada, atau Initialize (restore dari
// snapshot / fresh) kalau belum. Attempt yang sama selalu dapat instance
// yang sama selama proses hidup.
func (r *Registry) Obtain(ctx context.Context, quiz Quiz, attemptID, userID string) *Session {
	key := sessionKey(quiz.ID, attemptID, userID)

	r.mu.RLock()
	s, ok := r.sessions[key]
	r.mu.RUnlock()
	if ok {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[key]; ok {
		return s
	}
	s = Initialize(ctx, quiz, attemptID, userID, Deps{
		Store:     r.store,
		Submitter: r.submitter,
		Now:       r.now,
	})
	r.sessions[key] = s
	return s
}

// Lookup tanpa membuat sesi baru.
func (r *Registry) Lookup(quizID, attemptID, userID string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[sessionKey(quizID, attemptID, userID)]
	return s, ok
}

// Release membuang sesi dari registry (terminal state). Snapshot-nya
// sudah diurus oleh sesi sendiri.
func (r *Registry) Release(quizID, attemptID, userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionKey(quizID, attemptID, userID))
}

// TickAll menjalankan satu tick untuk semua sesi; sesi yang sudah terminal
// atau menganggur melewati idleEvictAfter dibuang sekalian. Dipanggil
// runner tiap detik.
func (r *Registry) TickAll(ctx context.Context) {
	r.mu.RLock()
	live := make(map[string]*Session, len(r.sessions))
	for k, s := range r.sessions {
		live[k] = s
	}
	r.mu.RUnlock()

	now := r.now()
	var done []string
	for key, s := range live {
		s.Tick(ctx)
		switch s.State() {
		case StateSubmitted, StateAbandoned:
			done = append(done, key)
		case StateTimedRunning:
			// timer masih jalan, biarkan sampai expired/submit
		default:
			if now.Sub(s.LastActive()) >= idleEvictAfter {
				done = append(done, key)
			}
		}
	}

	if len(done) > 0 {
		r.mu.Lock()
		for _, k := range done {
			delete(r.sessions, k)
		}
		r.mu.Unlock()
	}
}
