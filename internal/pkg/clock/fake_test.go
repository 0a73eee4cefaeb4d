package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/creature-forge/internal/pkg/clock"
)

func TestFakeAfterFunc(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	fake := clock.NewFake(start)

	var fired []string
	fake.AfterFunc(3*time.Second, func() { fired = append(fired, "late") })
	fake.AfterFunc(time.Second, func() { fired = append(fired, "early") })
	stopped := fake.AfterFunc(2*time.Second, func() { fired = append(fired, "stopped") })

	assert.True(t, stopped.Stop())
	assert.False(t, stopped.Stop())
	assert.Equal(t, 2, fake.Pending())

	fake.Advance(2 * time.Second)
	assert.Equal(t, []string{"early"}, fired)

	fake.Advance(time.Second)
	assert.Equal(t, []string{"early", "late"}, fired)
	assert.Equal(t, start.Add(3*time.Second), fake.Now())
	assert.Equal(t, 0, fake.Pending())
}
