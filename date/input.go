package date

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	relativeDateRE = regexp.MustCompile(`^([+-])(\d+)([dwmy])$`)
	monthDayDateRE = regexp.MustCompile(`^(?:(\d{1,2})-)?(\d{1,2})$`)
)

// ParseInput parses a day typed by a user, relative to today.
//
// Supported forms:
//   - "0d" or "" for today
//   - relative offsets like "-1d", "+2w", "-1m", "+1y"
//   - "DD" or "MM-DD" in the current year, "0" meaning the last day of the previous month
//   - a canonical "YYYY-MM-DD" key
func ParseInput(str string) (Date, error) {
	return parseInput(str, Today())
}

// ParseInputFrom is ParseInput relative to a given today.
func ParseInputFrom(str string, today Date) (Date, error) { return parseInput(str, today) }

func parseInput(str string, today Date) (Date, error) {
	str = strings.TrimSpace(str)
	if str == "" || str == "0d" {
		return today, nil
	}

	if match := relativeDateRE.FindStringSubmatch(str); match != nil {
		num, err := strconv.Atoi(match[2])
		if err != nil {
			return Date{}, fmt.Errorf("invalid number in relative date %q: %w", str, err)
		}
		if match[1] == "-" {
			num = -num
		}
		switch match[3] {
		case "d":
			return today.Add(num), nil
		case "w":
			return today.Add(num * 7), nil
		case "m":
			return today.AddMonth(num), nil
		case "y":
			return New(today.Year()+num, today.Month(), today.Day()), nil
		}
	}

	if match := monthDayDateRE.FindStringSubmatch(str); match != nil {
		day, _ := strconv.Atoi(match[2])
		year, month := today.Year(), today.Month()
		if match[1] != "" {
			m, _ := strconv.Atoi(match[1])
			if m == 0 {
				year--
				month = time.December
			} else {
				month = time.Month(m)
			}
		}
		return New(year, month, day), nil
	}

	return Parse(str)
}
