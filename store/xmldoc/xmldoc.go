package xmldoc

import (
	"bytes"
	"encoding/xml"
	"io/ioutil"

	"github.com/kirsrus/teams/model"
	"github.com/kirsrus/teams/store"

	"github.com/juju/errors"
	"github.com/sirupsen/logrus"
)

const indent = "  "

// XMLDoc архив команды в виде XML документа с корнем <team>. Инициируется через NewXMLDoc
type XMLDoc struct {
	log *logrus.Entry
}

// ConfigXMLDoc конфигурация NewXMLDoc
type ConfigXMLDoc struct {
	Log *logrus.Logger
}

// NewXMLDoc конструктор XMLDoc
func NewXMLDoc(config *ConfigXMLDoc) (*XMLDoc, error) {
	if config == nil {
		return nil, errors.New("не указана конфигурация")
	}
	if config.Log == nil {
		config.Log = logrus.New()
		config.Log.Out = ioutil.Discard
	}
	return &XMLDoc{
		log: config.Log.WithFields(map[string]interface{}{
			"module": "xmldoc",
			"scope":  "store",
		}),
	}, nil
}

var _ store.TeamStore = (*XMLDoc)(nil)

// Marshal кодирует команду в XML с заголовком
func (m *XMLDoc) Marshal(team *model.Team) ([]byte, error) {
	rec, err := store.NewTeamRecord(team)
	if err != nil {
		return nil, errors.Trace(err)
	}
	for _, s := range rec.Texts() {
		if !isXMLText(s) {
			return nil, store.Malformed(nil, "строка %q содержит символы, недопустимые в XML", s)
		}
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", indent)
	if err := enc.Encode(rec); err != nil {
		return nil, errors.Annotate(err, "ошибка кодирования XML")
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

// Unmarshal декодирует команду из XML
func (m *XMLDoc) Unmarshal(content []byte) (*model.Team, error) {
	var rec store.TeamRecord
	if err := xml.Unmarshal(content, &rec); err != nil {
		return nil, store.Malformed(err, "ошибка разбора XML")
	}
	team, err := rec.Team()
	if err != nil {
		return nil, errors.Trace(err)
	}
	return team, nil
}

// Write сохраняет команду в файл path
func (m *XMLDoc) Write(path string, team *model.Team) error {
	content, err := m.Marshal(team)
	if err != nil {
		return errors.Trace(err)
	}
	if err := store.WriteFile(path, content); err != nil {
		m.log.Errorf("ошибка сохранения архива %s: %s", path, err)
		return errors.Trace(err)
	}
	m.log.Debugf("команда %q сохранена в %s", team.Name, path)
	return nil
}

// Read читает команду из файла path
func (m *XMLDoc) Read(path string) (*model.Team, error) {
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

// Допустимые символы XML 1.0 (Char). Остальные encoding/xml молча заменяет на U+FFFD
func isXMLText(s string) bool {
	for _, r := range s {
		switch {
		case r == '\t', r == '\n', r == '\r':
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= 0x10FFFF:
		default:
			return false
		}
	}
	return true
}
