package binary

import (
	"io/ioutil"

	"github.com/kirsrus/teams/model"
	"github.com/kirsrus/teams/store"

	"github.com/fxamacker/cbor/v2"
	"github.com/juju/errors"
	"github.com/sirupsen/logrus"
)

// Binary архив команды в формате CBOR с целочисленными ключами полей. Инициируется через NewBinary
type Binary struct {
	log *logrus.Entry
	enc cbor.EncMode
	dec cbor.DecMode
}

// ConfigBinary конфигурация NewBinary
type ConfigBinary struct {
	Log *logrus.Logger
}

// NewBinary конструктор Binary
func NewBinary(config *ConfigBinary) (*Binary, error) {
	if config == nil {
		return nil, errors.New("не указана конфигурация")
	}
	if config.Log == nil {
		config.Log = logrus.New()
		config.Log.Out = ioutil.Discard
	}

	enc, err := cbor.EncOptions{Sort: cbor.SortCanonical}.EncMode()
	if err != nil {
		return nil, errors.Annotate(err, "ошибка настройки кодировщика CBOR")
	}
	dec, err := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		return nil, errors.Annotate(err, "ошибка настройки декодера CBOR")
	}

	return &Binary{
		log: config.Log.WithFields(map[string]interface{}{
			"module": "binary",
			"scope":  "store",
		}),
		enc: enc,
		dec: dec,
	}, nil
}

var _ store.TeamStore = (*Binary)(nil)

// Marshal кодирует команду в CBOR
func (m *Binary) Marshal(team *model.Team) ([]byte, error) {
	rec, err := store.NewTeamRecord(team)
	if err != nil {
		return nil, errors.Trace(err)
	}
	content, err := m.enc.Marshal(rec)
	if err != nil {
		return nil, errors.Annotate(err, "ошибка кодирования CBOR")
	}
	return content, nil
}

// Unmarshal декодирует команду из CBOR. Неизвестные поля и лишние данные считаются ошибкой
func (m *Binary) Unmarshal(content []byte) (*model.Team, error) {
	var rec store.TeamRecord
	if err := m.dec.Unmarshal(content, &rec); err != nil {
		return nil, store.Malformed(err, "ошибка декодирования CBOR")
	}
	team, err := rec.Team()
	if err != nil {
		return nil, errors.Trace(err)
	}
	return team, nil
}

// Write сохраняет команду в файл path
func (m *Binary) Write(path string, team *model.Team) error {
	content, err := m.Marshal(team)
	if err != nil {
		return errors.Trace(err)
	}
	if err := store.WriteFile(path, content); err != nil {
		m.log.Errorf("ошибка сохранения архива %s: %s", path, err)
		return errors.Trace(err)
	}
	m.log.Debugf("команда %q сохранена в %s (%d байт)", team.Name, path, len(content))
	return nil
}

// Read читает команду из файла path
func (m *Binary) Read(path string) (*model.Team, error) {
	content, err := store.ReadFile(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	team, err := m.Unmarshal(content)
	if err != nil {
		m.log.Warnf("архив %s не прочитан: %s", path, err)
		return nil, errors.Annotatef(err, "архив %s", path)
	}
	return team, nil
}
