package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/kirsrus/teams/controller"
	"github.com/kirsrus/teams/controller/archive"
	"github.com/kirsrus/teams/model"
	"github.com/kirsrus/teams/pkg/config"
	"github.com/kirsrus/teams/pkg/logger"
	"github.com/kirsrus/teams/pkg/puzzle"

	"github.com/juju/errors"
	"github.com/k0kubun/pp"
	"github.com/sirupsen/logrus"
)

// Имя файла архивов команды (расширение добавляется по формату)
const exportName = "team"

var (
	cfg *config.Config
	log *logrus.Logger
)

func init() {
	cfg = config.Get()
	log = logger.GetWithConfig(logger.Config{
		Path:    cfg.Log.Path,
		File:    cfg.Log.Filename,
		Level:   logger.ParseLevel(cfg.Log.Level),
		Console: cfg.Log.Console,
	})
}

func main() {
	team, err := printFixtures(os.Stdout)
	if err != nil {
		log.Error(errors.ErrorStack(err))
		return
	}

	if cfg.Export.Dir == "" {
		return
	}
	archiveCtl, err := archive.NewArchive(&archive.ConfigArchive{
		Log:           log,
		CacheDuration: time.Minute * time.Duration(cfg.Export.CacheMinutes),
	})
	if err != nil {
		log.Error(errors.ErrorStack(err))
		return
	}
	if err := export(archiveCtl, team); err != nil {
		log.Errorf("ошибка выгрузки команды в %s: %s", cfg.Export.Dir, err)
		log.Debug(errors.ErrorStack(err))
	}
}

// printFixtures выводит тестовых персон, команду и примеры задач. Возвращает команду для выгрузки
func printFixtures(w io.Writer) (*model.Team, error) {
	p1, err := model.NewTeamMember("Beata", "Nowak", "1992-10-22", "92102201347", model.GenderK, "projektant", "01-Jan-2020")
	if err != nil {
		return nil, errors.Trace(err)
	}
	p2, err := model.NewTeamMember("Jan", "Janowski", "1993-03-15", "92031507772", model.GenderM, "programista", "01-Jun-2019")
	if err != nil {
		return nil, errors.Trace(err)
	}
	p3, err := model.NewTeamLeader("Adam", "Kowalski", "1990-07-01", "90070100211", model.GenderM, 5)
	if err != nil {
		return nil, errors.Trace(err)
	}

	fmt.Fprintln(w, p1)
	fmt.Fprintln(w, p2)
	fmt.Fprintln(w, p3)

	team := model.NewTeam("Test", p3)
	team.AddMember(p1)
	team.AddMember(p2)
	fmt.Fprintln(w, team)

	// Выгружается полный состав, до удаления
	full, err := team.Clone()
	if err != nil {
		return nil, errors.Trace(err)
	}

	fmt.Fprintln(w, team.MemberCount())
	team.RemoveMemberByName("Jan", "Janowski")
	fmt.Fprintln(w, team.MemberCount())

	for _, expr := range []string{"szafa_taboret", "pijany.mistrz"} {
		swapped, err := puzzle.SwapAroundSeparator(expr)
		if err != nil {
			return nil, errors.Trace(err)
		}
		fmt.Fprintln(w, swapped)
	}
	return full, nil
}

// export сохраняет команду во всех настроенных форматах и перечитывает каждый архив
func export(archiveCtl controller.ArchiveCtl, team *model.Team) error {
	if err := os.MkdirAll(cfg.Export.Dir, os.ModePerm); err != nil {
		return errors.Annotatef(err, "ошибка создания директории %s", cfg.Export.Dir)
	}
	for _, name := range cfg.Export.Formats {
		format, err := archive.ParseFormat(name)
		if err != nil {
			return errors.Trace(err)
		}
		path := filepath.Join(cfg.Export.Dir, exportName+format.Extension())
		if err := archiveCtl.Save(path, format, team); err != nil {
			return errors.Trace(err)
		}
		loaded, err := archiveCtl.Load(path)
		if err != nil {
			return errors.Trace(err)
		}
		if loaded.String() != team.String() {
			return errors.Errorf("архив %s прочитан с расхождениями", path)
		}
		log.Debugf("архив %s:\n%s", path, pp.Sprint(loaded))
	}
	return nil
}
