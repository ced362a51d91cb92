// internal/daily/daily.go
//
// Deterministic daily selection: every player gets the same secret on a
// given UTC date, and the choice cannot be predicted without the salt.
//
// Salt contract:
//   - The salt (DAILY_SALT) is the only secret. Anyone holding it can compute
//     every past and future answer.
//   - Changing it reshuffles every day, including today, so it must stay
//     fixed for the lifetime of a deployment.
//   - An empty salt is accepted (local play) but makes the schedule public.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Schedule maps UTC dates onto positions in a catalog of a given size.
type Schedule struct {
	key []byte
}

// NewSchedule returns the schedule derived from salt.
func NewSchedule(salt string) Schedule {
	return Schedule{key: []byte(salt)}
}

// Index returns the catalog position for date's UTC day, in [0, size).
// Sizes below 2 always yield 0.
func (s Schedule) Index(date time.Time, size int) int {
	if size < 2 {
		return 0
	}
	return int(s.sum(date) % uint64(size))
}

// sum is HMAC-SHA256(salt, YYYY-MM-DD) truncated to its first 8 bytes.
func (s Schedule) sum(date time.Time) uint64 {
	h := hmac.New(sha256.New, s.key)
	h.Write([]byte(DateKey(date)))
	return binary.BigEndian.Uint64(h.Sum(nil)[:8])
}
