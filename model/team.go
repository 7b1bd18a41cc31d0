package model

import (
	"slices"
	"strings"

	"github.com/juju/errors"
	"github.com/samber/lo"
)

// Team команда: лидер и упорядоченный список членов. Нулевое значение готово к работе
type Team struct {
	// Название команды (пустое - не задано)
	Name string
	// Лидер команды. Хранится по ссылке, при создании команды не копируется
	Leader *TeamLeader

	members []*TeamMember
}

// NewTeam конструктор Team
func NewTeam(name string, leader *TeamLeader) *Team {
	return &Team{
		Name:    name,
		Leader:  leader,
		members: make([]*TeamMember, 0),
	}
}

// MemberCount количество членов команды
func (t *Team) MemberCount() int {
	return len(t.members)
}

// Members копия списка членов команды (сами члены не копируются)
func (t *Team) Members() []*TeamMember {
	return slices.Clone(t.members)
}

// AddMember добавляет члена в конец списка. Повторы не проверяются
func (t *Team) AddMember(member *TeamMember) {
	t.members = append(t.members, member)
}

// IsMember есть ли в команде член с указанным PESEL
func (t *Team) IsMember(pesel string) bool {
	return lo.ContainsBy(t.members, hasPesel(pesel))
}

// IsMemberByName есть ли в команде член с указанными именем и фамилией
func (t *Team) IsMemberByName(name, surname string) bool {
	return lo.ContainsBy(t.members, hasName(name, surname))
}

// RemoveMember удаляет всех членов с указанным PESEL
func (t *Team) RemoveMember(pesel string) {
	t.members = lo.Reject(t.members, func(m *TeamMember, _ int) bool {
		return hasPesel(pesel)(m)
	})
}

// RemoveMemberByName удаляет всех членов с указанными именем и фамилией
func (t *Team) RemoveMemberByName(name, surname string) {
	t.members = lo.Reject(t.members, func(m *TeamMember, _ int) bool {
		return hasName(name, surname)(m)
	})
}

// RemoveEveryone удаляет всех членов команды. Лидер остаётся
func (t *Team) RemoveEveryone() {
	t.members = make([]*TeamMember, 0)
}

// FindMembersByFunction члены с указанной функцией в порядке списка
func (t *Team) FindMembersByFunction(function string) []*TeamMember {
	return lo.Filter(t.members, func(m *TeamMember, _ int) bool {
		return m.Function == function
	})
}

// FindMembersByMonth члены, вступившие в команду в указанный месяц (1-12), в порядке списка
func (t *Team) FindMembersByMonth(month int) []*TeamMember {
	return lo.Filter(t.members, func(m *TeamMember, _ int) bool {
		return int(m.joinDate.Month()) == month
	})
}

// Sort упорядочивает членов по имени и фамилии
func (t *Team) Sort() {
	t.SortBy(ByNameSurname)
}

// SortByPesel упорядочивает членов по PESEL
func (t *Team) SortByPesel() {
	t.SortBy(ByPesel)
}

// SortBy устойчиво упорядочивает членов по cmp
func (t *Team) SortBy(cmp func(a, b *TeamMember) int) {
	slices.SortStableFunc(t.members, cmp)
}

// Clone глубокая копия команды: лидер и все члены копируются. Без лидера возвращает ErrMissingLeader
func (t *Team) Clone() (*Team, error) {
	if t.Leader == nil {
		return nil, errors.Trace(ErrMissingLeader)
	}
	res := NewTeam(t.Name, t.Leader.Duplicate())
	res.members = lo.Map(t.members, func(m *TeamMember, _ int) *TeamMember {
		return m.Duplicate()
	})
	return res, nil
}

// String описание команды: название, лидер и по строке на каждого члена
func (t *Team) String() string {
	var sb strings.Builder
	sb.WriteString("Team: " + t.Name + "\n")
	sb.WriteString("Leader: ")
	if t.Leader != nil {
		sb.WriteString(t.Leader.String())
	}
	sb.WriteString("\n")
	for _, m := range t.members {
		sb.WriteString(m.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

func hasPesel(pesel string) func(*TeamMember) bool {
	return func(m *TeamMember) bool {
		return m.pesel == pesel
	}
}

func hasName(name, surname string) func(*TeamMember) bool {
	return func(m *TeamMember) bool {
		return m.Name == name && m.Surname == surname
	}
}
