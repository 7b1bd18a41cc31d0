package model

import "github.com/juju/errors"

var (
	// ErrInvalidDateFormat дата не подходит ни под один из поддерживаемых форматов
	ErrInvalidDateFormat = errors.New("некорректный формат даты")

	// ErrMissingLeader у команды не назначен лидер
	ErrMissingLeader = errors.New("у команды нет лидера")

	// ErrInvalidGender пол указан не как K или M
	ErrInvalidGender = errors.New("некорректный пол")
)
