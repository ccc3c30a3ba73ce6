package clock

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		t        time.Time
		wantDate string
		wantTime string
	}{
		{"afternoon", time.Date(2024, 2, 1, 15, 4, 5, 0, time.UTC), "2024年2月1日星期四", "15:04:05"},
		{"midnight", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), "2024年12月31日星期二", "00:00:00"},
		{"sunday", time.Date(2023, 1, 1, 23, 59, 59, 0, time.UTC), "2023年1月1日星期日", "23:59:59"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.t)
			if got.Date != tt.wantDate {
				t.Errorf("Date = %q, want %q", got.Date, tt.wantDate)
			}
			if got.Time != tt.wantTime {
				t.Errorf("Time = %q, want %q", got.Time, tt.wantTime)
			}
		})
	}
}

func TestFormatUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	instant := time.Date(2024, 2, 1, 20, 0, 0, 0, time.UTC)
	got := Format(instant.In(loc))
	if got.Date != "2024年2月2日星期五" || got.Time != "04:00:00" {
		t.Errorf("got %+v", got)
	}
}
