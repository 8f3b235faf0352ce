package diary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DayBounds(t *testing.T) {
	start, end, err := DayBounds("2024-05-10")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 5, 10, 23, 59, 59, 999_000_000, time.UTC), end)

	// entries land inside [start, end); the last representable millisecond
	// of the day is excluded
	inside := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	assert.True(t, !inside.Before(start) && inside.Before(end))

	boundary := time.Date(2024, 5, 10, 23, 59, 59, 999_000_000, time.UTC)
	assert.False(t, boundary.Before(end))

	nextDay := time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)
	assert.False(t, nextDay.Before(end))
}

func Test_DayBoundsRejectsOtherLayouts(t *testing.T) {
	for _, bad := range []string{"", "05/10/2024", "2024-5-10", "2024-05-10T00:00:00Z", "yesterday"} {
		_, _, err := DayBounds(bad)
		assert.Error(t, err, "layout %q should be rejected", bad)
	}
}

func Test_ValidateImages(t *testing.T) {
	assert.NoError(t, ValidateImages(nil))
	assert.NoError(t, ValidateImages([]string{
		"data:image/png;base64,iVBORw0KGgo=",
		"data:image/jpeg;base64,/9j/4AAQ",
	}))

	err := ValidateImages([]string{"data:image/png;base64,ok", "https://example.com/cat.png"})
	assert.ErrorIs(t, err, ErrInvalidImage)
}
