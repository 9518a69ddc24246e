package event

import (
	"strconv"
	"strings"
	"time"
)

// sentinelDate stands in for absent or unparsable dates during
// ordering and span computation. It is never surfaced to output.
var sentinelDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

var monthCodes = map[string]time.Month{
	"JAN": time.January,
	"FEB": time.February,
	"MAR": time.March,
	"APR": time.April,
	"MAY": time.May,
	"JUN": time.June,
	"JUL": time.July,
	"AUG": time.August,
	"SEP": time.September,
	"OCT": time.October,
	"NOV": time.November,
	"DEC": time.December,
}

// orderingDate parses a textual date for relative ordering only. Tokens
// split on whitespace: three tokens are day, 3-letter month code, year;
// two are month and year; one is a bare year. Anything else falls back
// to the sentinel.
func orderingDate(date *string) time.Time {
	if date == nil {
		return sentinelDate
	}
	tokens := strings.Fields(*date)

	var dayTok, monTok, yearTok string
	switch len(tokens) {
	case 3:
		dayTok, monTok, yearTok = tokens[0], tokens[1], tokens[2]
	case 2:
		monTok, yearTok = tokens[0], tokens[1]
	case 1:
		yearTok = tokens[0]
	default:
		return sentinelDate
	}

	year, err := strconv.Atoi(yearTok)
	if err != nil || year <= 0 {
		return sentinelDate
	}

	month := time.January
	if monTok != "" {
		m, ok := monthCodes[strings.ToUpper(monTok)]
		if !ok {
			return sentinelDate
		}
		month = m
	}

	day := 1
	if dayTok != "" {
		d, err := strconv.Atoi(dayTok)
		if err != nil || d < 1 || d > 31 {
			return sentinelDate
		}
		day = d
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
