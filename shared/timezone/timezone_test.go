package timezone_test

import (
	"testing"
	"time"

	"lodge/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2030, 5, 1, 17, 45, 12, 99, timezone.GetLocation())

	got := timezone.StartOfDay(in)

	assert.Equal(t, time.Date(2030, 5, 1, 0, 0, 0, 0, timezone.GetLocation()), got)
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.False(t, today.After(timezone.Now()))
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse(time.DateOnly, "2030-05-01")
	require.NoError(t, err)

	assert.Equal(t, timezone.GetLocation(), parsed.Location())
	assert.Equal(t, "2030-05-01", timezone.Format(parsed, time.DateOnly))

	_, err = timezone.Parse(time.DateOnly, "05/01/2030")
	assert.Error(t, err)
}
