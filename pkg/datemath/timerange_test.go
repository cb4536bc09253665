package datemath_test

import (
	"testing"
	"time"

	"github.com/dondeestakoko/easemyday/pkg/datemath"
)

func TestEndOfRange(t *testing.T) {
	start := time.Date(2025, 3, 10, 16, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		text  string
		start time.Time
		want  time.Time
	}{
		{
			name:  "hour range with dash",
			text:  "Réunion 16h-19h",
			start: start,
			want:  time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC),
		},
		{
			name:  "hour range with à",
			text:  "Rendez-vous 16h à 19h",
			start: start,
			want:  time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC),
		},
		{
			name:  "minutes on both sides",
			text:  "Atelier 16h30-18h45",
			start: time.Date(2025, 3, 10, 16, 30, 0, 0, time.UTC),
			want:  time.Date(2025, 3, 10, 18, 45, 0, 0, time.UTC),
		},
		{
			name:  "colon notation",
			text:  "Cours 16:00-19:00",
			start: start,
			want:  time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC),
		},
		{
			name:  "range crossing midnight rolls a day",
			text:  "Soirée 23h-1h",
			start: time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC),
			want:  time.Date(2025, 3, 11, 1, 0, 0, 0, time.UTC),
		},
		{
			name:  "no range falls back to one hour",
			text:  "Réunion",
			start: start,
			want:  time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := datemath.EndOfRange(tc.text, tc.start)
			if !got.Equal(tc.want) {
				t.Errorf("EndOfRange(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}
