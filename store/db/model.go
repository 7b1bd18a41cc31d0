package db

import (
	"time"

	"github.com/kirsrus/teams/store"
)

type (
	// GormModelUnscoped модель эквивалент gorm.Model без сохранения удалений
	GormModelUnscoped struct {
		ID        int `gorm:"primaryKey"`
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	// Snapshot снимок команды. В файле архива ровно один снимок
	Snapshot struct {
		GormModelUnscoped
		UID     string
		Version int
		Name    string
		// Время создания архива в RFC3339
		Taken string
	}
)

// TableName имя таблицы
func (Snapshot) TableName() string {
	return "snapshots"
}

// FromRecord заполняет снимок из заголовка записи архива
func (m *Snapshot) FromRecord(rec *store.TeamRecord) {
	*m = Snapshot{
		UID:     rec.ID,
		Version: rec.Version,
		Name:    rec.Name,
		Taken:   rec.CreatedAt,
	}
}

type (
	// Person персона снимка. Лидер хранится с Position=0, члены команды - с 1 по порядку
	Person struct {
		GormModelUnscoped
		SnapshotID        int `gorm:"index"`
		Position          int
		Kind              string
		Pesel             string
		Gender            string
		Name              string
		Surname           string
		BirthDate         string
		Function          string
		JoinDate          string
		YearsOfExperience int
	}
)

// TableName имя таблицы
func (Person) TableName() string {
	return "persons"
}

// ToRecord маппинг данных в запись архива
func (m Person) ToRecord() store.PersonRecord {
	return store.PersonRecord{
		Kind:              m.Kind,
		Pesel:             m.Pesel,
		Gender:            m.Gender,
		Name:              m.Name,
		Surname:           m.Surname,
		BirthDate:         m.BirthDate,
		Function:          m.Function,
		JoinDate:          m.JoinDate,
		YearsOfExperience: m.YearsOfExperience,
	}
}

// FromRecord заполняет текущую структуру из записи архива
func (m *Person) FromRecord(snapshotID, position int, rec store.PersonRecord) {
	*m = Person{
		SnapshotID:        snapshotID,
		Position:          position,
		Kind:              rec.Kind,
		Pesel:             rec.Pesel,
		Gender:            rec.Gender,
		Name:              rec.Name,
		Surname:           rec.Surname,
		BirthDate:         rec.BirthDate,
		Function:          rec.Function,
		JoinDate:          rec.JoinDate,
		YearsOfExperience: rec.YearsOfExperience,
	}
}
