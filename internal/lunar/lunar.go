// Package lunar converts Gregorian dates into Chinese lunar-calendar labels.
//
// The calendar engine treats conversion as an opaque collaborator that may
// fail or be missing entirely, so every converter returns an error instead of
// panicking and callers fall back to the fixed placeholders below.
package lunar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/6tail/lunar-go/calendar"
)

const (
	// FailureText replaces a label when conversion failed for a date.
	FailureText = "农历计算失败"
	// UnavailableText replaces a label when no converter is available at all.
	UnavailableText = "农历暂不可用"

	leapMarker = "闰"
)

// ErrUnavailable is returned by converters that cannot produce lunar dates.
var ErrUnavailable = errors.New("lunar conversion unavailable")

// ConversionError reports a date the converter rejected.
type ConversionError struct {
	Year, Month, Day int
	Err              error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("lunar conversion of %04d-%02d-%02d failed: %v", e.Year, e.Month, e.Day, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// Label is the lunar-calendar reading of a single Gregorian day.
type Label struct {
	Month      string // e.g. "正", "冬", "腊"; never carries the leap marker
	Day        string // e.g. "初一", "廿九"
	Leap       bool
	SolarTerm  string // empty unless the day is one of the 24 solar terms
	YearGanZhi string
	Zodiac     string
}

// String renders the label as 农历[闰]{month}月{day}, followed by the solar term
// when the day has one.
func (l Label) String() string {
	var b strings.Builder
	b.WriteString("农历")
	if l.Leap {
		b.WriteString(leapMarker)
	}
	b.WriteString(l.Month)
	b.WriteString("月")
	b.WriteString(l.Day)
	if l.SolarTerm != "" {
		b.WriteString(" ")
		b.WriteString(l.SolarTerm)
	}
	return b.String()
}

// Converter turns a Gregorian date (month 1..12) into a lunar label.
type Converter interface {
	Convert(year, month, day int) (Label, error)
}

// Text returns the label string, or the matching placeholder when err is set.
func Text(label Label, err error) string {
	switch {
	case err == nil:
		return label.String()
	case errors.Is(err, ErrUnavailable):
		return UnavailableText
	default:
		return FailureText
	}
}

// Chinese is a Converter backed by lunar-go.
type Chinese struct{}

// Convert implements Converter. lunar-go panics on dates it does not accept,
// so the panic is recovered and reported as a *ConversionError.
func (Chinese) Convert(year, month, day int) (label Label, err error) {
	defer func() {
		if r := recover(); r != nil {
			label = Label{}
			err = &ConversionError{Year: year, Month: month, Day: day, Err: fmt.Errorf("%v", r)}
		}
	}()

	l := calendar.NewSolarFromYmd(year, month, day).GetLunar()
	return Label{
		Month:      strings.TrimPrefix(l.GetMonthInChinese(), leapMarker),
		Day:        l.GetDayInChinese(),
		Leap:       l.GetMonth() < 0,
		SolarTerm:  l.GetJieQi(),
		YearGanZhi: l.GetYearInGanZhi(),
		Zodiac:     l.GetYearShengXiao(),
	}, nil
}

// Unsupported is the converter used when lunar support is switched off.
type Unsupported struct{}

// Convert always reports ErrUnavailable.
func (Unsupported) Convert(year, month, day int) (Label, error) {
	return Label{}, ErrUnavailable
}

// Func adapts a plain function to the Converter interface.
type Func func(year, month, day int) (Label, error)

// Convert calls f.
func (f Func) Convert(year, month, day int) (Label, error) {
	return f(year, month, day)
}
