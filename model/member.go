package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/juju/errors"
)

// TeamMember член команды. Создаётся через NewTeamMember
type TeamMember struct {
	Person

	// Функция (роль) в команде
	Function string

	joinDate     time.Time
	joinDateText string
}

// NewTeamMember конструктор TeamMember. Даты принимаются в любом из форматов ParseDate
func NewTeamMember(name, surname, birthDate, pesel string, gender Gender, function, joinDate string) (*TeamMember, error) {
	person, err := newPerson(name, surname, birthDate, pesel, gender)
	if err != nil {
		return nil, errors.Trace(err)
	}
	m := TeamMember{
		Person:   person,
		Function: function,
	}
	if err := m.SetJoinDate(joinDate); err != nil {
		return nil, errors.Trace(err)
	}
	return &m, nil
}

func (m *TeamMember) person() *Person {
	if m == nil {
		return nil
	}
	return &m.Person
}

// JoinDate дата вступления в команду
func (m *TeamMember) JoinDate() time.Time {
	return m.joinDate
}

// SetJoinDate меняет дату вступления в команду
func (m *TeamMember) SetJoinDate(text string) error {
	join, err := ParseDate(text)
	if err != nil {
		return errors.Annotate(err, "дата вступления")
	}
	m.joinDate = join
	m.joinDateText = text
	return nil
}

// Duplicate независимая копия члена команды
func (m *TeamMember) Duplicate() *TeamMember {
	res := TeamMember{
		Person:       m.Person.duplicate(),
		Function:     m.Function,
		joinDate:     m.joinDate,
		joinDateText: m.joinDateText,
	}
	if join, err := ParseDate(m.joinDateText); err == nil {
		res.joinDate = join
	}
	return &res
}

func (m *TeamMember) describeMember() string {
	return fmt.Sprintf("%s (%s)", m.Function, m.joinDate.Format(DateFormatLong))
}

// String описание персоны с функцией и датой вступления
func (m *TeamMember) String() string {
	return Describe(m)
}

// ByNameSurname порядок по имени, затем по фамилии
func ByNameSurname(a, b *TeamMember) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return strings.Compare(a.Surname, b.Surname)
}

// ByPesel порядок по номеру PESEL
func ByPesel(a, b *TeamMember) int {
	return strings.Compare(a.pesel, b.pesel)
}
