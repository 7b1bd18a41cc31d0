package model

import "github.com/juju/errors"

// Gender пол персоны
type Gender int

const (
	// GenderK женский
	GenderK Gender = iota
	// GenderM мужской
	GenderM
)

// String буквенное обозначение пола
func (g Gender) String() string {
	switch g {
	case GenderK:
		return "K"
	case GenderM:
		return "M"
	}
	return "?"
}

// ParseGender разбирает буквенное обозначение пола (только K или M)
func ParseGender(s string) (Gender, error) {
	switch s {
	case "K":
		return GenderK, nil
	case "M":
		return GenderM, nil
	}
	return 0, errors.Annotatef(ErrInvalidGender, "%q", s)
}
