package calendar

import (
	"fmt"

	"github.com/julianstephens/infoboard/internal/logger"
	"github.com/julianstephens/infoboard/internal/lunar"
)

// DetailErrorText replaces the whole detail line when the date is unusable.
const DetailErrorText = "日期信息加载失败"

// FormatDayDetail composes "{y}年{m}月{d}日 {weekday} | {lunarText}".
func FormatDayDetail(year, month, day int, lunarText string) string {
	return fmt.Sprintf("%d年%d月%d日 %s | %s", year, month+1, day, WeekdayName(year, month, day), lunarText)
}

// Detail renders the detail line for a 0-indexed date. A lunar failure only
// degrades the lunar segment; an invalid date yields DetailErrorText.
func Detail(conv lunar.Converter, year, month, day int) string {
	if !ValidDate(year, month, day) {
		logger.Warn("day detail for invalid date", "year", year, "month", month+1, "day", day)
		return DetailErrorText
	}
	if conv == nil {
		conv = lunar.Unsupported{}
	}
	label, err := conv.Convert(year, month+1, day)
	if err != nil {
		logger.Warn("lunar conversion failed", "err", err)
	}
	return FormatDayDetail(year, month, day, lunar.Text(label, err))
}
