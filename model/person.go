package model

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/kirsrus/teams/pkg/tool"

	"github.com/juju/errors"
)

const (
	// PeselLength длина номера PESEL
	PeselLength = 11
	// DaysInYear приблизительная длина года при вычислении возраста
	DaysInYear = 365
)

// Текущее время. Подменяется в тестах
var now = time.Now

// Person общая часть описания персоны (члена команды или лидера). Отдельно не создаётся,
// встраивается в TeamMember и TeamLeader
type Person struct {
	Name    string
	Surname string

	birthDate     time.Time
	birthDateText string
	pesel         string
	gender        Gender
}

// Personal любой вариант персоны: TeamMember или TeamLeader
type Personal interface {
	fmt.Stringer
	person() *Person
}

func newPerson(name, surname, birthDate, pesel string, gender Gender) (Person, error) {
	if utf8.RuneCountInString(pesel) != PeselLength {
		return Person{}, errors.NotValidf("PESEL %q длиной не %d символов", pesel, PeselLength)
	}
	birth, err := ParseDate(birthDate)
	if err != nil {
		return Person{}, errors.Annotate(err, "дата рождения")
	}
	return Person{
		Name:          name,
		Surname:       surname,
		birthDate:     birth,
		birthDateText: birthDate,
		pesel:         pesel,
		gender:        gender,
	}, nil
}

func (p *Person) person() *Person {
	return p
}

// duplicate копия общей части с повторным разбором исходного текста даты
func (p *Person) duplicate() Person {
	res := *p
	if birth, err := ParseDate(p.birthDateText); err == nil {
		res.birthDate = birth
	}
	return res
}

// Pesel номер PESEL (неизменяемый)
func (p *Person) Pesel() string {
	return p.pesel
}

// Gender пол персоны
func (p *Person) Gender() Gender {
	return p.gender
}

// BirthDate дата рождения
func (p *Person) BirthDate() time.Time {
	return p.birthDate
}

// Age возраст в годах на текущий момент
func (p *Person) Age() int {
	return p.AgeAt(now())
}

// AgeAt возраст в годах на момент t: полные сутки от рождения, делённые на 365.
// Високосные годы не учитываются
func (p *Person) AgeAt(t time.Time) int {
	return tool.DaysBetween(p.birthDate, tool.RoundToDate(t.UTC())) / DaysInYear
}

// Equals персоны равны, если совпадает PESEL. Вариант и остальные поля не важны.
// С nil (в том числе типизированным) персона не равна
func (p *Person) Equals(other Personal) bool {
	if other == nil {
		return false
	}
	op := other.person()
	if op == nil {
		return false
	}
	return p.pesel == op.pesel
}

// String описание в виде "имя фамилия (возраст) дата-рождения pesel пол"
func (p *Person) String() string {
	return fmt.Sprintf("%s %s (%d) %s %s %s",
		p.Name, p.Surname, p.Age(),
		p.birthDate.Format(DateFormatISO),
		p.pesel,
		p.gender)
}

// Describe описание персоны с учётом её варианта. Для nil пустая строка
func Describe(p Personal) string {
	if p == nil || p.person() == nil {
		return ""
	}
	switch v := p.(type) {
	case *TeamMember:
		return v.Person.String() + " " + v.describeMember()
	case *TeamLeader:
		return v.Person.String() + " " + v.describeLeader()
	}
	return p.person().String()
}
