package session

import (
	"context"
	"fmt"
	"time"
)

// =============================
// 📦 Snapshot store port
// =============================

// SnapshotStore adalah port KV untuk snapshot sesi (Redis di produksi,
// in-memory di test). Value selalu JSON. Get mengembalikan ok=false kalau
// key tidak ada; error hanya untuk kegagalan store, bukan cache miss.
type SnapshotStore interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, keys ...string) error
}

// Dua key per (quiz, attempt, user): jawaban+posisi dan timer dipisah
// karena restore timer harus menghitung ulang waktu berjalan, bukan sekadar
// membaca sisa countdown.
func answersKey(quizID, attemptID, userID string) string {
	return fmt.Sprintf("quiz_session:%s:%s:%s:answers", quizID, attemptID, userID)
}

func timerKey(quizID, attemptID, userID string) string {
	return fmt.Sprintf("quiz_session:%s:%s:%s:timer", quizID, attemptID, userID)
}

// answersSnapshot: urutan jawaban dipertahankan supaya resume stabil.
type answersSnapshot struct {
	Answers      []Answer `json:"answers"`
	CurrentIndex int      `json:"current_index"`
}

type timerSnapshot struct {
	RemainingSeconds int       `json:"remaining_seconds"`
	SavedAt          time.Time `json:"saved_at"`
}
