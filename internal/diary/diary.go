// Package diary holds the diary entry model and its archive rules.
package diary

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is applied when an entry is created without one.
const DefaultCategory = "General"

var ErrInvalidImage = errors.New("invalid image format")

// Diary is a single journal entry. ArchivedAt is non-nil exactly when
// IsArchived is true.
type Diary struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"userId"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Category   string     `json:"category"`
	Date       time.Time  `json:"date"`
	Images     []string   `json:"images"`
	IsArchived bool       `json:"isArchived"`
	ArchivedAt *time.Time `json:"archivedAt"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// ValidateImages checks that every image is a data-URI encoded image blob.
func ValidateImages(images []string) error {
	for i, img := range images {
		if !strings.HasPrefix(img, "data:image/") {
			return fmt.Errorf("image %d: %w", i, ErrInvalidImage)
		}
	}
	return nil
}

// DayBounds converts a "YYYY-MM-DD" date string into the half-open UTC window
// [00:00:00.000Z, 23:59:59.999Z) of that calendar day. The string form is a
// fixed wire contract with the mobile client.
func DayBounds(date string) (start, end time.Time, err error) {
	start, err = time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("value '%s' could not be parsed as DATE: %w", date, err)
	}
	end = start.Add(24*time.Hour - time.Millisecond)
	return start, end, nil
}
