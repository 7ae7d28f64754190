package types

import "time"

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// First returns the first day of the month.
func (m Month) First() Date {
	return Date(time.Time(m))
}

// Last returns the last day of the month.
func (m Month) Last() Date {
	return m.AddDate(0, 1).First().AddDays(-1)
}

// Day returns the given day of the month.
//
// Days that do not exist in the month (e.g. February 30th) resolve to
// the first day of the next month minus one day.
func (m Month) Day(day int) Date {
	if day < 1 {
		return m.First()
	}

	year, month, _ := time.Time(m).Date()
	if t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC); t.Month() == month {
		return Date(t)
	}

	return m.Last()
}
