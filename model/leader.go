package model

import (
	"strconv"

	"github.com/juju/errors"
)

// TeamLeader лидер команды. Создаётся через NewTeamLeader
type TeamLeader struct {
	Person

	// Опыт в годах
	YearsOfExperience int
}

// NewTeamLeader конструктор TeamLeader
func NewTeamLeader(name, surname, birthDate, pesel string, gender Gender, yearsOfExperience int) (*TeamLeader, error) {
	if yearsOfExperience < 0 {
		return nil, errors.NotValidf("опыт %d лет", yearsOfExperience)
	}
	person, err := newPerson(name, surname, birthDate, pesel, gender)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return &TeamLeader{
		Person:            person,
		YearsOfExperience: yearsOfExperience,
	}, nil
}

func (l *TeamLeader) person() *Person {
	if l == nil {
		return nil
	}
	return &l.Person
}

// Duplicate независимая копия лидера
func (l *TeamLeader) Duplicate() *TeamLeader {
	return &TeamLeader{
		Person:            l.Person.duplicate(),
		YearsOfExperience: l.YearsOfExperience,
	}
}

func (l *TeamLeader) describeLeader() string {
	return strconv.Itoa(l.YearsOfExperience)
}

// String описание персоны с опытом
func (l *TeamLeader) String() string {
	return Describe(l)
}
