package archive

import (
	"io/ioutil"
	"os"
	"sort"
	"time"

	"github.com/kirsrus/teams/model"
	"github.com/kirsrus/teams/store"
	"github.com/kirsrus/teams/store/binary"
	"github.com/kirsrus/teams/store/db"
	"github.com/kirsrus/teams/store/xmldoc"

	"github.com/gabriel-vasile/mimetype"
	"github.com/juju/errors"
	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

const (
	cacheDuration = 10 * time.Minute
	cacheCleared  = time.Hour
)

// Archive сохранение и чтение команд во всех форматах. Прочитанные команды кэшируются
// по пути и времени изменения файла. Инициируется через NewArchive
type Archive struct {
	log    *logrus.Entry
	stores map[Format]store.TeamStore

	teamCache *cache.Cache
}

// ConfigArchive конфигурация NewArchive
type ConfigArchive struct {
	Log *logrus.Logger
	// Время хранения прочитанной команды в кэше
	CacheDuration time.Duration
}

// Запись кэша: команда и состояние файла, из которого она прочитана
type cached struct {
	modTime time.Time
	size    int64
	team    *model.Team
}

// NewArchive конструктор Archive
func NewArchive(config *ConfigArchive) (*Archive, error) {
	if config == nil {
		return nil, errors.New("не указана конфигурация")
	}
	if config.Log == nil {
		config.Log = logrus.New()
		config.Log.Out = ioutil.Discard
	}
	if config.CacheDuration == 0 {
		config.CacheDuration = cacheDuration
	}

	binaryStore, err := binary.NewBinary(&binary.ConfigBinary{Log: config.Log})
	if err != nil {
		return nil, errors.Trace(err)
	}
	xmlStore, err := xmldoc.NewXMLDoc(&xmldoc.ConfigXMLDoc{Log: config.Log})
	if err != nil {
		return nil, errors.Trace(err)
	}
	dbStore, err := db.NewDb(&db.ConfigDb{Log: config.Log})
	if err != nil {
		return nil, errors.Trace(err)
	}

	return &Archive{
		log: config.Log.WithFields(map[string]interface{}{
			"module": "archive",
			"scope":  "controller",
		}),
		stores: map[Format]store.TeamStore{
			FormatBinary: binaryStore,
			FormatXML:    xmlStore,
			FormatSqlite: dbStore,
		},
		teamCache: cache.New(config.CacheDuration, cacheCleared),
	}, nil
}

// Formats список поддерживаемых форматов
func (m *Archive) Formats() []Format {
	res := lo.Keys(m.stores)
	sort.Slice(res, func(i, j int) bool {
		return res[i] < res[j]
	})
	return res
}

// Save сохраняет команду в файл path в формате format
func (m *Archive) Save(path string, format Format, team *model.Team) error {
	st, ok := m.stores[format]
	if !ok {
		return errors.NotSupportedf("формат архива %q", format)
	}
	m.teamCache.Delete(path)
	if err := st.Write(path, team); err != nil {
		return errors.Trace(err)
	}
	m.log.Infof("команда %q сохранена в %s (%s)", team.Name, path, format)
	return nil
}

// Load читает команду из файла path. Возвращается копия, не связанная с кэшем
func (m *Archive) Load(path string) (*model.Team, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Annotatef(err, "ошибка чтения %s", path)
	}

	if v, ok := m.teamCache.Get(path); ok {
		entry := v.(cached)
		if entry.modTime.Equal(info.ModTime()) && entry.size == info.Size() {
			m.log.Debugf("команда из %s взята из кэша", path)
			return entry.team.Clone()
		}
	}

	format, err := m.Detect(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	team, err := m.stores[format].Read(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	m.teamCache.Set(path, cached{
		modTime: info.ModTime(),
		size:    info.Size(),
		team:    team,
	}, cache.DefaultExpiration)
	m.log.Debugf("команда %q прочитана из %s (%s)", team.Name, path, format)
	return team.Clone()
}

// Detect определяет формат архива по содержимому файла. Всё, что не XML и не SQLite,
// считается CBOR
func (m *Archive) Detect(path string) (Format, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", errors.Annotatef(err, "ошибка чтения %s", path)
	}
	switch {
	case mtype.Is("text/xml"):
		return FormatXML, nil
	case mtype.Is("application/vnd.sqlite3"):
		return FormatSqlite, nil
	}
	return FormatBinary, nil
}
