// Package clock formats the board's date and time readout.
package clock

import (
	"fmt"
	"time"

	"github.com/julianstephens/infoboard/internal/constants"
)

// Interval is how often the readout is refreshed.
const Interval = constants.ClockInterval

var weekdays = [7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"}

// Reading is the formatted date and time for one instant.
type Reading struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// Format renders t in its own location, e.g. "2024年2月1日星期四" and "15:04:05".
func Format(t time.Time) Reading {
	return Reading{
		Date: fmt.Sprintf("%d年%d月%d日%s", t.Year(), int(t.Month()), t.Day(), weekdays[t.Weekday()]),
		Time: t.Format(constants.TimeFormat),
	}
}

// Now formats the current local time.
func Now() Reading {
	return Format(time.Now())
}
