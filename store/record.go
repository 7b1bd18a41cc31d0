package store

import (
	"encoding/xml"
	"time"
	"unicode/utf8"

	"github.com/kirsrus/teams/model"
	"github.com/kirsrus/teams/pkg/validator"

	"github.com/google/uuid"
	"github.com/juju/errors"
	"github.com/samber/lo"
)

// SchemaVersion текущая версия схемы архива
const SchemaVersion = 1

const (
	// KindMember запись члена команды
	KindMember = "member"
	// KindLeader запись лидера команды
	KindLeader = "leader"
)

type (
	// TeamRecord версионированная схема команды, общая для всех форматов архива.
	// Ключи CBOR и имена XML стабильны и не меняются внутри версии
	TeamRecord struct {
		XMLName   xml.Name       `xml:"team" cbor:"-"`
		Version   int            `xml:"version,attr" cbor:"1,keyasint" validate:"required"`
		ID        string         `xml:"id,attr,omitempty" cbor:"2,keyasint,omitempty" validate:"omitempty,uuid"`
		CreatedAt string         `xml:"createdAt,attr,omitempty" cbor:"3,keyasint,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
		Name      string         `xml:"name,omitempty" cbor:"4,keyasint,omitempty"`
		Leader    *PersonRecord  `xml:"leader" cbor:"5,keyasint" validate:"required"`
		Members   []PersonRecord `xml:"members>member" cbor:"6,keyasint,omitempty" validate:"dive"`
	}

	// PersonRecord схема персоны. Function и JoinDate только у членов,
	// YearsOfExperience только у лидера. Строки хранятся как есть, без обрезки
	PersonRecord struct {
		Kind              string `xml:"kind,attr" cbor:"1,keyasint" validate:"oneof=member leader"`
		Pesel             string `xml:"pesel,attr" cbor:"2,keyasint" validate:"pesel"`
		Gender            string `xml:"gender,attr" cbor:"3,keyasint" validate:"oneof=K M"`
		Name              string `xml:"name" cbor:"4,keyasint"`
		Surname           string `xml:"surname" cbor:"5,keyasint"`
		BirthDate         string `xml:"birthDate" cbor:"6,keyasint" validate:"required"`
		Function          string `xml:"function,omitempty" cbor:"7,keyasint,omitempty"`
		JoinDate          string `xml:"joinDate,omitempty" cbor:"8,keyasint,omitempty"`
		YearsOfExperience int    `xml:"yearsOfExperience,omitempty" cbor:"9,keyasint,omitempty" validate:"gte=0"`
	}
)

// NewTeamRecord запись архива для команды. Команда без лидера не сохраняется.
// Запись проверяется теми же правилами, что и при чтении: то, что не прочитается, не пишется
func NewTeamRecord(team *model.Team) (*TeamRecord, error) {
	if team == nil {
		return nil, errors.New("не передана команда")
	}
	if team.Leader == nil {
		return nil, errors.Trace(model.ErrMissingLeader)
	}
	rec := &TeamRecord{
		Version:   SchemaVersion,
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Name:      team.Name,
		Leader:    LeaderRecord(team.Leader),
		Members: lo.Map(team.Members(), func(m *model.TeamMember, _ int) PersonRecord {
			return MemberRecord(m)
		}),
	}
	if err := rec.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return rec, nil
}

// LeaderRecord запись лидера
func LeaderRecord(l *model.TeamLeader) *PersonRecord {
	return &PersonRecord{
		Kind:              KindLeader,
		Pesel:             l.Pesel(),
		Gender:            l.Gender().String(),
		Name:              l.Name,
		Surname:           l.Surname,
		BirthDate:         l.BirthDate().Format(model.DateFormatISO),
		YearsOfExperience: l.YearsOfExperience,
	}
}

// MemberRecord запись члена команды
func MemberRecord(m *model.TeamMember) PersonRecord {
	return PersonRecord{
		Kind:      KindMember,
		Pesel:     m.Pesel(),
		Gender:    m.Gender().String(),
		Name:      m.Name,
		Surname:   m.Surname,
		BirthDate: m.BirthDate().Format(model.DateFormatISO),
		Function:  m.Function,
		JoinDate:  m.JoinDate().Format(model.DateFormatISO),
	}
}

// Validate проверяет версию и содержимое записи. Строки не изменяются
func (r *TeamRecord) Validate() error {
	if r.Version != SchemaVersion {
		return errors.Annotatef(ErrUnsupportedVersion, "версия %d", r.Version)
	}
	if err := validator.Get().Validate(r); err != nil {
		return Malformed(err, "ошибка валидации")
	}
	for _, s := range r.Texts() {
		if !utf8.ValidString(s) {
			return Malformed(nil, "строка %q не в UTF-8", s)
		}
	}
	if r.Leader.Kind != KindLeader {
		return Malformed(nil, "лидер записан как %q", r.Leader.Kind)
	}
	for i, m := range r.Members {
		if m.Kind != KindMember {
			return Malformed(nil, "член команды %d записан как %q", i, m.Kind)
		}
	}
	return nil
}

// Texts все текстовые значения записи, включая вложенные записи персон
func (r *TeamRecord) Texts() []string {
	res := []string{r.ID, r.CreatedAt, r.Name}
	if r.Leader != nil {
		res = append(res, r.Leader.texts()...)
	}
	for _, m := range r.Members {
		res = append(res, m.texts()...)
	}
	return res
}

func (p PersonRecord) texts() []string {
	return []string{p.Kind, p.Pesel, p.Gender, p.Name, p.Surname, p.BirthDate, p.Function, p.JoinDate}
}

// Team восстанавливает команду из записи, предварительно проверив её
func (r *TeamRecord) Team() (*model.Team, error) {
	if err := r.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	leader, err := r.Leader.leader()
	if err != nil {
		return nil, Malformed(err, "лидер %s", r.Leader.Pesel)
	}
	team := model.NewTeam(r.Name, leader)
	for _, rec := range r.Members {
		m, err := rec.member()
		if err != nil {
			return nil, Malformed(err, "член команды %s", rec.Pesel)
		}
		team.AddMember(m)
	}
	return team, nil
}

func (p *PersonRecord) leader() (*model.TeamLeader, error) {
	gender, err := model.ParseGender(p.Gender)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return model.NewTeamLeader(p.Name, p.Surname, p.BirthDate, p.Pesel, gender, p.YearsOfExperience)
}

func (p *PersonRecord) member() (*model.TeamMember, error) {
	gender, err := model.ParseGender(p.Gender)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return model.NewTeamMember(p.Name, p.Surname, p.BirthDate, p.Pesel, gender, p.Function, p.JoinDate)
}
