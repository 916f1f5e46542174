package session

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeExpired: waktu habis, jawaban & navigasi ditolak.
	ErrTimeExpired = errors.New("quiz session: time expired")

	// ErrSubmitInFlight: sudah ada submit yang sedang berjalan.
	ErrSubmitInFlight = errors.New("quiz session: submission already in flight")

	// ErrSessionTerminal: sesi sudah submitted / abandoned.
	ErrSessionTerminal = errors.New("quiz session: session already finished")

	ErrUnknownQuestion = errors.New("quiz session: unknown question id")
	ErrUnknownOption   = errors.New("quiz session: option does not belong to question")

	ErrSessionNotFound = errors.New("quiz session: session not found")
)

// IncompleteAnswersError dikembalikan RequestSubmit ketika belum semua
// pertanyaan terjawab. Caller diharapkan minta konfirmasi, lalu Submit(force).
type IncompleteAnswersError struct {
	Answered int
	Total    int
}

func (e *IncompleteAnswersError) Error() string {
	return fmt.Sprintf("quiz session: only %d of %d questions answered", e.Answered, e.Total)
}
