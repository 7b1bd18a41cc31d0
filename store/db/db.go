package db

import (
	"io/ioutil"
	"os"

	"github.com/kirsrus/teams/model"
	"github.com/kirsrus/teams/store"

	"github.com/juju/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Db архив команды в виде файла SQLite. Файл пересоздаётся при каждой записи. Инициируется через NewDb
type Db struct {
	log *logrus.Entry
}

// ConfigDb конфигурация NewDb
type ConfigDb struct {
	Log *logrus.Logger
}

// NewDb конструктор Db
func NewDb(config *ConfigDb) (*Db, error) {
	if config == nil {
		return nil, errors.New("не указана конфигурация")
	}
	if config.Log == nil {
		config.Log = logrus.New()
		config.Log.Out = ioutil.Discard
	}
	return &Db{
		log: config.Log.WithFields(map[string]interface{}{
			"module": "db",
			"scope":  "store",
		}),
	}, nil
}

var _ store.TeamStore = (*Db)(nil)

// Подключение к файлу БД. Возвращённую функцию нужно вызвать для закрытия
func (m Db) open(path string) (*gorm.DB, func(), error) {
	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, nil, errors.Annotatef(err, "ошибка подключения к файлу БД %s", path)
	}
	closer := func() {
		sqlDB, err := conn.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			m.log.Warnf("ошибка закрытия БД %s: %s", path, err)
		}
	}
	return conn, closer, nil
}

// Write сохраняет команду в новый файл БД path (существующий файл удаляется)
func (m Db) Write(path string, team *model.Team) error {
	rec, err := store.NewTeamRecord(team)
	if err != nil {
		return errors.Trace(err)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Annotatef(err, "ошибка удаления старого архива %s", path)
	}

	conn, closer, err := m.open(path)
	if err != nil {
		return errors.Trace(err)
	}
	defer closer()

	if err := conn.AutoMigrate(Snapshot{}, Person{}); err != nil {
		return errors.Annotate(err, "ошибка миграции БД")
	}

	err = conn.Transaction(func(tx *gorm.DB) error {
		var snapshot Snapshot
		snapshot.FromRecord(rec)
		if err := tx.Create(&snapshot).Error; err != nil {
			return errors.Annotate(err, "ошибка добавления снимка")
		}

		persons := make([]Person, 0, len(rec.Members)+1)
		var leader Person
		leader.FromRecord(snapshot.ID, 0, *rec.Leader)
		persons = append(persons, leader)
		for i, r := range rec.Members {
			var member Person
			member.FromRecord(snapshot.ID, i+1, r)
			persons = append(persons, member)
		}
		if err := tx.Create(&persons).Error; err != nil {
			return errors.Annotate(err, "ошибка добавления персон")
		}
		return nil
	})
	if err != nil {
		m.log.Errorf("ошибка сохранения архива %s: %s", path, err)
		return errors.Trace(err)
	}
	m.log.Debugf("команда %q сохранена в %s", team.Name, path)
	return nil
}

// Read читает команду из файла БД path
func (m Db) Read(path string) (*model.Team, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Annotatef(err, "ошибка чтения %s", path)
	}

	conn, closer, err := m.open(path)
	if err != nil {
		return nil, store.Malformed(err, "архив %s", path)
	}
	defer closer()

	var snapshot Snapshot
	if err := conn.Order("id").Take(&snapshot).Error; err != nil {
		m.log.Warnf("в архиве %s не найден снимок команды: %s", path, err)
		return nil, store.Malformed(err, "архив %s: снимок команды", path)
	}
	rows := make([]Person, 0)
	if err := conn.Where("snapshot_id = ?", snapshot.ID).Order("position").Find(&rows).Error; err != nil {
		return nil, store.Malformed(err, "архив %s: персоны", path)
	}

	rec := store.TeamRecord{
		Version:   snapshot.Version,
		ID:        snapshot.UID,
		CreatedAt: snapshot.Taken,
		Name:      snapshot.Name,
		Members:   make([]store.PersonRecord, 0, len(rows)),
	}
	for _, row := range rows {
		if row.Position == 0 {
			leader := row.ToRecord()
			rec.Leader = &leader
			continue
		}
		rec.Members = append(rec.Members, row.ToRecord())
	}

	team, err := rec.Team()
	if err != nil {
		m.log.Warnf("архив %s не прочитан: %s", path, err)
		return nil, errors.Annotatef(err, "архив %s", path)
	}
	return team, nil
}
