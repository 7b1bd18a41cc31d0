package tool

import "time"

const secondsInDay = 24 * 60 * 60

// RoundToDate округляет дату в t до круглого дня
func RoundToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween количество полных суток между from и to (отрицательное, если to раньше from).
// Считается через Unix-время, поэтому не переполняется на датах вроде time.Time{}
func DaysBetween(from, to time.Time) int {
	return int((to.Unix() - from.Unix()) / secondsInDay)
}
