package lunar

import (
	"errors"
	"testing"
)

func TestChineseConvert(t *testing.T) {
	tests := []struct {
		name       string
		date       [3]int
		wantMonth  string
		wantDay    string
		wantLeap   bool
		wantTerm   string
		wantString string
	}{
		{
			name:       "lunar new year 2024",
			date:       [3]int{2024, 2, 10},
			wantMonth:  "正",
			wantDay:    "初一",
			wantString: "农历正月初一",
		},
		{
			name:       "new year's eve 2022 in a short month",
			date:       [3]int{2022, 1, 31},
			wantMonth:  "腊",
			wantDay:    "廿九",
			wantString: "农历腊月廿九",
		},
		{
			name:      "leap eleventh month",
			date:      [3]int{2033, 12, 22},
			wantMonth: "冬",
			wantDay:   "初一",
			wantLeap:  true,
		},
		{
			name:     "winter solstice carries a solar term",
			date:     [3]int{2021, 12, 21},
			wantTerm: "冬至",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Chinese{}.Convert(tt.date[0], tt.date[1], tt.date[2])
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if tt.wantMonth != "" && got.Month != tt.wantMonth {
				t.Errorf("Month = %q, want %q", got.Month, tt.wantMonth)
			}
			if tt.wantDay != "" && got.Day != tt.wantDay {
				t.Errorf("Day = %q, want %q", got.Day, tt.wantDay)
			}
			if got.Leap != tt.wantLeap {
				t.Errorf("Leap = %v, want %v", got.Leap, tt.wantLeap)
			}
			if tt.wantTerm != "" && got.SolarTerm != tt.wantTerm {
				t.Errorf("SolarTerm = %q, want %q", got.SolarTerm, tt.wantTerm)
			}
			if tt.wantString != "" && got.String() != tt.wantString {
				t.Errorf("String() = %q, want %q", got.String(), tt.wantString)
			}
		})
	}
}

func TestChineseConvertInvalidDateDoesNotPanic(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
	}{
		{"month out of range", 2024, 13, 1},
		{"february 30", 2023, 2, 30},
		{"day zero", 2024, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Chinese{}.Convert(tt.year, tt.month, tt.day)
			var convErr *ConversionError
			if !errors.As(err, &convErr) {
				t.Fatalf("Convert() error = %v, want *ConversionError", err)
			}
			if convErr.Year != tt.year || convErr.Month != tt.month || convErr.Day != tt.day {
				t.Errorf("ConversionError date = %d-%d-%d", convErr.Year, convErr.Month, convErr.Day)
			}
		})
	}
}

func TestUnsupported(t *testing.T) {
	_, err := Unsupported{}.Convert(2024, 2, 1)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Convert() error = %v, want ErrUnavailable", err)
	}
}

func TestText(t *testing.T) {
	label := Label{Month: "腊", Day: "廿五", SolarTerm: "立春"}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"label", nil, "农历腊月廿五 立春"},
		{"unavailable", ErrUnavailable, UnavailableText},
		{"conversion failure", &ConversionError{Year: 2024, Month: 2, Day: 30, Err: errors.New("wrong day")}, FailureText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(label, tt.err); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}
