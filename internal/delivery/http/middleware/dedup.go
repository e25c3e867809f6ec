package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go-autoresponder-backend/internal/delivery/http/response"
	"go-autoresponder-backend/pkg/logger"
	"go-autoresponder-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

// DedupConfig holds configuration for webhook dedup
type DedupConfig struct {
	// How long a processed submission suppresses identical redeliveries
	Window time.Duration
	// Key prefix for Redis (default: "dedup:body:")
	KeyPrefix string
}

// DefaultDedupConfig returns the dedup config for the form webhook
func DefaultDedupConfig(window time.Duration) DedupConfig {
	return DedupConfig{
		Window:    window,
		KeyPrefix: "dedup:body:",
	}
}

// dedupEntry tracks when a seen submission key expires (in-memory fallback)
type dedupEntry struct {
	expiresAt time.Time
	mu        sync.Mutex
}

// inMemoryStore for dedup keys (fallback when Redis unavailable)
var (
	dedupStore       = sync.Map{}
	dedupCleanupOnce sync.Once
)

// startDedupCleanup runs a background goroutine to clean up expired entries
func startDedupCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			dedupStore.Range(func(key, value interface{}) bool {
				entry := value.(*dedupEntry)
				entry.mu.Lock()
				if now.After(entry.expiresAt) {
					dedupStore.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}()
}

// DedupMiddleware suppresses at-least-once webhook redeliveries. The
// idempotency key is the SHA-256 of the raw request body; a redelivered body
// inside the window is answered with the success wire shape without invoking
// the pipeline again, so the submitter gets exactly one acknowledgment email.
// Uses Redis when available, falls back to in-memory when not.
func DedupMiddleware(config DedupConfig) gin.HandlerFunc {
	// Start cleanup goroutine once (for fallback)
	dedupCleanupOnce.Do(startDedupCleanup)

	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Next()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		// Submissions without an email are rejected deterministically with
		// 400 and never reach the dispatcher; repeating them is harmless.
		email := submittedEmail(body)
		if email == "" {
			c.Next()
			return
		}

		sum := sha256.Sum256(body)
		key := config.KeyPrefix + hex.EncodeToString(sum[:])

		if !markFirstSeen(c.Request.Context(), key, config.Window) {
			logger.Log.Info("Duplicate webhook delivery suppressed", "emailSentTo", email)
			response.OK(c, "Auto-response already sent", email)
			c.Abort()
			return
		}

		c.Next()

		// A failed pipeline must stay retryable; only a delivered
		// acknowledgment holds its key for the full window. Collected
		// errors are checked too because the error middleware sitting
		// outside this one maps them to a status only after we return.
		if c.Writer.Status() != http.StatusOK || len(c.Errors) > 0 {
			forgetKey(key)
		}
	}
}

// markFirstSeen records the key and reports whether it was first seen within
// the window. Redis errors fail open into the in-memory store.
func markFirstSeen(ctx context.Context, key string, window time.Duration) bool {
	if client := redis.Client(); client != nil {
		ok, err := client.SetNX(ctx, key, 1, window).Result()
		if err == nil {
			return ok
		}
		logger.Log.Warn("Dedup redis error, using in-memory fallback", "error", err.Error())
	}
	return markFirstSeenInMemory(key, window, time.Now())
}

func markFirstSeenInMemory(key string, window time.Duration, now time.Time) bool {
	entryI, loaded := dedupStore.LoadOrStore(key, &dedupEntry{
		expiresAt: now.Add(window),
	})
	if !loaded {
		return true
	}

	entry := entryI.(*dedupEntry)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.expiresAt) {
		entry.expiresAt = now.Add(window)
		return true
	}
	return false
}

// forgetKey releases a key from both stores.
func forgetKey(key string) {
	if client := redis.Client(); client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		client.Del(ctx, key)
	}
	dedupStore.Delete(key)
}

// submittedEmail extracts the trimmed email field from the raw body, or an
// empty string when the body is not a JSON object carrying one.
func submittedEmail(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	email, _ := payload["email"].(string)
	return strings.TrimSpace(email)
}
