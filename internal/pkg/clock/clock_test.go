package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownTimezone(t *testing.T) {
	_, err := New("Not/AZone")
	assert.Error(t, err)
}

func TestFixedToday(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	fixed := Fixed{Time: time.Date(2025, 6, 15, 23, 45, 12, 0, loc)}
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, loc), fixed.Today())
}

func TestMinuteBounds(t *testing.T) {
	at := time.Date(2025, 6, 15, 14, 30, 27, 500, time.UTC)
	start, end := MinuteBounds(at)

	assert.Equal(t, time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC), start)
	assert.True(t, end.Before(time.Date(2025, 6, 15, 14, 31, 0, 0, time.UTC)))
	assert.True(t, end.After(at))
}

func TestStartAndEndOfDay(t *testing.T) {
	at := time.Date(2025, 1, 2, 13, 14, 15, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), StartOfDay(at))
	assert.Equal(t, 23, EndOfDay(at).Hour())
	assert.Equal(t, "2025-01-02", FormatDate(at))
}
