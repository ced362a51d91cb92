package daily_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/pokedle/apps/go-server/internal/daily"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := time.Date(2026, 3, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-03-01", daily.DateKey(d))
}

func TestIndexIsStablePerDay(t *testing.T) {
	sched := daily.NewSchedule("salt")
	morning := time.Date(2026, 3, 1, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)

	a := sched.Index(morning, 46)
	assert.Equal(t, a, sched.Index(evening, 46))
	assert.Equal(t, a, daily.NewSchedule("salt").Index(morning, 46))
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 46)
}

func TestIndexFollowsUTCDay(t *testing.T) {
	sched := daily.NewSchedule("salt")
	loc := time.FixedZone("UTC-5", -5*60*60)
	// 22:00 on 1 March in UTC-5 is already 2 March in UTC.
	local := time.Date(2026, 3, 1, 22, 0, 0, 0, loc)
	utc := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, sched.Index(utc, 1000), sched.Index(local, 1000))
}

func TestIndexDegenerateSizes(t *testing.T) {
	sched := daily.NewSchedule("salt")
	now := time.Now()
	assert.Equal(t, 0, sched.Index(now, 0))
	assert.Equal(t, 0, sched.Index(now, -3))
	assert.Equal(t, 0, sched.Index(now, 1))
}

func TestIndexDependsOnSalt(t *testing.T) {
	// Over a month of dates two salts should not agree every day.
	a, b := daily.NewSchedule("a"), daily.NewSchedule("b")
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	differs := false
	for i := 0; i < 31; i++ {
		d := start.AddDate(0, 0, i)
		if a.Index(d, 1000) != b.Index(d, 1000) {
			differs = true
			break
		}
	}
	assert.True(t, differs)
}
