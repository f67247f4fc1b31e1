// Package importer parses and renders the historical expense text format:
// one record per line, six comma-separated fields
// (year,month,day,amount,description,categoryName).
package importer

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/cyxnb666/AccountingApp/internal/model"
)

const fieldCount = 6

// Result is the outcome of parsing one import blob. SkippedLines holds the
// 1-based line numbers of malformed lines so callers can tell "nothing to
// import" apart from "everything was malformed".
type Result struct {
	Imported     []model.Expense
	SkippedLines []int
}

// Parse converts a text blob into expense records. Malformed lines are
// skipped, never fatal: a wrong field count, non-integer date parts, or a
// non-numeric amount drop the single offending line and the rest of the
// batch proceeds. Blank lines are ignored entirely.
func Parse(text string) Result {
	var res Result

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lineNo := i + 1
		if strings.TrimSpace(line) == "" {
			continue
		}

		exp, ok := parseLine(line)
		if !ok {
			res.SkippedLines = append(res.SkippedLines, lineNo)
			slog.Debug("skipped malformed import line", "line", lineNo)
			continue
		}
		res.Imported = append(res.Imported, exp)
	}

	return res
}

func parseLine(line string) (model.Expense, bool) {
	fields := strings.Split(line, ",")
	if len(fields) != fieldCount {
		return model.Expense{}, false
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	year, err := strconv.Atoi(fields[0])
	if err != nil {
		return model.Expense{}, false
	}
	month, err := strconv.Atoi(fields[1])
	if err != nil {
		return model.Expense{}, false
	}
	day, err := strconv.Atoi(fields[2])
	if err != nil {
		return model.Expense{}, false
	}
	amount, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return model.Expense{}, false
	}

	description := fields[4]
	category := model.CategoryIDForName(fields[5])

	return model.NewExpense(amount, description, category, makeDate(year, month, day)), true
}

// makeDate builds a local-calendar date from its parts. Impossible dates
// (February 30th, month 13) fall back to now rather than rejecting the
// line; the record is kept, its date is not.
func makeDate(year, month, day int) time.Time {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Now()
	}
	return d
}
