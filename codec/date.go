package codec

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var packedMonthCodes = map[string]int{
	"JAN": 1, "FEB": 2, "MAR": 3, "APR": 4, "MAY": 5, "JUN": 6,
	"JUL": 7, "AUG": 8, "SEP": 9, "OCT": 10, "NOV": 11, "DEC": 12,
}

// CompressDate packs a textual date into a YYYYMMDD integer. A bare
// 4-digit year packs as YYYY0101; a day/month/year date ("20/07/1929"
// or "20 JUL 1929") zero-pads day and month. The second result is
// false for anything unparsable.
func CompressDate(date string) (int, bool) {
	date = strings.TrimSpace(date)
	if date == "" {
		return 0, false
	}

	if year, ok := parseYear(date); ok {
		return year*10000 + 101, true
	}

	if day, month, year, ok := splitDayMonthYear(date); ok {
		return year*10000 + month*100 + day, true
	}
	return 0, false
}

// DecompressDate re-expands a packed date. A packed January-1st
// collapses to the bare year string: a true January-1st full date and a
// year-only compressed date are indistinguishable after a round trip.
func DecompressDate(packed int) string {
	year := packed / 10000
	month := packed / 100 % 100
	day := packed % 100

	if month == 1 && day == 1 {
		return strconv.Itoa(year)
	}
	return fmt.Sprintf("%02d/%02d/%04d", day, month, year)
}

func parseYear(s string) (int, bool) {
	if len(s) != 4 {
		return 0, false
	}
	year, err := strconv.Atoi(s)
	if err != nil || year <= 0 {
		return 0, false
	}
	return year, true
}

// splitDayMonthYear accepts "DD/MM/YYYY" and the whitespace form with a
// 3-letter month code, "DD MON YYYY".
func splitDayMonthYear(s string) (day, month, year int, ok bool) {
	var dayTok, monTok, yearTok string
	if parts := strings.Split(s, "/"); len(parts) == 3 {
		dayTok, monTok, yearTok = parts[0], parts[1], parts[2]
	} else if fields := strings.Fields(s); len(fields) == 3 {
		dayTok, monTok, yearTok = fields[0], fields[1], fields[2]
	} else {
		return 0, 0, 0, false
	}

	day, err := strconv.Atoi(strings.TrimSpace(dayTok))
	if err != nil {
		return 0, 0, 0, false
	}
	year, ok = parseYear(strings.TrimSpace(yearTok))
	if !ok {
		return 0, 0, 0, false
	}

	monTok = strings.TrimSpace(monTok)
	if m, found := packedMonthCodes[strings.ToUpper(monTok)]; found {
		month = m
	} else if m, err := strconv.Atoi(monTok); err == nil {
		month = m
	} else {
		return 0, 0, 0, false
	}

	if day < 1 || day > 31 || month < 1 || month > 12 {
		return 0, 0, 0, false
	}
	if _, err := time.Parse("2006-1-2", fmt.Sprintf("%04d-%d-%d", year, month, day)); err != nil {
		return 0, 0, 0, false
	}
	return day, month, year, true
}
