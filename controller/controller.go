package controller

import (
	"github.com/kirsrus/teams/controller/archive"
	"github.com/kirsrus/teams/model"
)

// ArchiveCtl контроллер архивов команд
//go:generate mockery --dir . --name ArchiveCtl --output ./mocks
type ArchiveCtl interface {
	// Сохраняет команду в файл path в формате format (файл перезаписывается)
	Save(path string, format archive.Format, team *model.Team) error
	// Читает команду из файла path. Формат определяется по содержимому
	Load(path string) (*model.Team, error)
	// Список поддерживаемых форматов
	Formats() []archive.Format
}

var _ ArchiveCtl = (*archive.Archive)(nil)
