package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseTimestamp(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      time.Time
		expectErr bool
	}{
		{
			name:  "RFC 3339 UTC",
			input: "2024-05-10T09:30:00Z",
			want:  time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC),
		},
		{
			name:  "RFC 3339 with millis",
			input: "2024-05-10T09:30:00.250Z",
			want:  time.Date(2024, 5, 10, 9, 30, 0, 250_000_000, time.UTC),
		},
		{
			name:  "empty value is the zero time, no error",
			input: "",
			want:  time.Time{},
		},
		{
			name:      "date without time",
			input:     "2024-05-10",
			expectErr: true,
		},
		{
			name:      "garbage",
			input:     "yesterday-ish",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTimestamp(tt.input)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
		})
	}
}

func Test_ParseUUIDFromPath(t *testing.T) {
	knownID := uuid.New()

	tests := []struct {
		name      string
		pathValue string
		want      uuid.UUID
		expectErr bool
	}{
		{
			name:      "valid UUID",
			pathValue: knownID.String(),
			want:      knownID,
		},
		{
			name:      "missing parameter is uuid.Nil, no error",
			pathValue: "",
			want:      uuid.Nil,
		},
		{
			name:      "malformed UUID",
			pathValue: "not-a-uuid",
			want:      uuid.Nil,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.SetPathValue("todo_id", tt.pathValue)

			got, err := parseUUIDFromPath("todo_id", r)
			if tt.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
