package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"edukasiku_backend/internals/configs"
)

var Redis *redis.Client

// ConnectRedis menyiapkan client Redis untuk snapshot sesi quiz.
// Gagal ping = fatal: tanpa Redis, jaminan resume sesi hilang.
func ConnectRedis() {
	log.Println("🔌 Koneksi ke Redis...")

	Redis = redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
		DB:       configs.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatalf("❌ Gagal konek Redis: %v", err)
	}
	log.Println("✅ Redis connected.")
}
