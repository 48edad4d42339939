package log

import (
	"fmt"
	"sync/atomic"
)

const (
	maxCount   uint32 = 999
	timeFormat string = "060102 15:04:05.000"

	rightArrow = "▶"
)

const (
	colorRed     = "\033[31m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
	endColor     = "\033[0m"
)

var counter atomic.Uint32

func (s Severity) String() string {
	switch s {
	case TraceLevel:
		return "TRAC"
	case DebugLevel:
		return "DEBU"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARN"
	case ErrorLevel:
		return "ERRO"
	case CriticalLevel:
		return "CRIT"
	default:
		return "NONE"
	}
}

func (s Severity) color() string {
	switch s {
	case DebugLevel:
		return colorCyan
	case InfoLevel:
		return colorBlue
	case WarningLevel:
		return colorYellow
	case ErrorLevel:
		return colorRed
	case CriticalLevel:
		return colorMagenta
	default:
		return ""
	}
}

func formatLine(line Message, duplicates uint64, useColor bool) string {
	colorStart := ""
	colorEnd := ""
	if useColor {
		colorStart = line.Severity().color()
		colorEnd = endColor
	}

	count := counter.Add(1) % (maxCount + 1)

	if line.LineNumber() == 0 {
		return fmt.Sprintf("%s%s ? %s %s %03d%s%s %s", colorStart, line.Time().Format(timeFormat), rightArrow, line.Severity().String(), count, formatDuplicates(duplicates), colorEnd, line.Text())
	}

	file := line.File()
	fPartStart := len(file) - 10
	if fPartStart < 0 {
		fPartStart = 0
	}
	return fmt.Sprintf("%s%s %s:%03d %s %s %03d%s%s %s", colorStart, line.Time().Format(timeFormat), file[fPartStart:], line.LineNumber(), rightArrow, line.Severity().String(), count, formatDuplicates(duplicates), colorEnd, line.Text())
}

func formatDuplicates(duplicates uint64) string {
	if duplicates == 0 {
		return ""
	}
	return fmt.Sprintf(" [%dx]", duplicates+1)
}
