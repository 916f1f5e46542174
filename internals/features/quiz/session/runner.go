package session

import (
	"context"
	"log"
	"time"
)

// Runner mendorong tick per detik ke semua sesi hidup dan mengeksekusi
// auto-submit saat waktu habis. Satu goroutine untuk seluruh proses;
// dihentikan lewat context saat shutdown.
type Runner struct {
	registry *Registry
	interval time.Duration
}

func NewRunner(registry *Registry) *Runner {
	return &Runner{registry: registry, interval: time.Second}
}

func (r *Runner) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		log.Println("[QUIZ-SESSION] runner started")
		for {
			select {
			case <-ctx.Done():
				log.Println("[QUIZ-SESSION] runner stopped")
				return
			case <-ticker.C:
				r.registry.TickAll(ctx)
			}
		}
	}()
}
