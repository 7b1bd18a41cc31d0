package model

import (
	"time"

	"github.com/juju/errors"
)

const (
	// DateFormatISO формат даты при выводе персоны (yyyy-MM-dd)
	DateFormatISO = "2006-01-02"
	// DateFormatLong формат даты вступления в команду (dd-MMM-yyyy)
	DateFormatLong = "02-Jan-2006"
)

// Поддерживаемые форматы входной даты. Проверяются по порядку, побеждает первый подошедший
var dateFormats = []string{
	"2006-01-02", // yyyy-MM-dd
	"2006/01/02", // yyyy/MM/dd
	"01/02/06",   // MM/dd/yy
	"02-Jan-06",  // dd-MMM-yy
	"02-Jan-2006",
}

// ParseDate разбирает дату в одном из поддерживаемых форматов. Результат - полночь по UTC.
// Если ни один формат не подошёл, возвращается ErrInvalidDateFormat
func ParseDate(text string) (time.Time, error) {
	for _, layout := range dateFormats {
		if t, err := time.ParseInLocation(layout, text, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Annotatef(ErrInvalidDateFormat, "%q", text)
}
