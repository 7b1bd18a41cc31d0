package store

import (
	"fmt"
	"os"

	"github.com/kirsrus/teams/model"

	"github.com/juju/errors"
)

var (
	// ErrMalformed содержимое архива повреждено или не проходит проверку
	ErrMalformed = errors.New("некорректный архив команды")

	// ErrUnsupportedVersion версия схемы архива не поддерживается
	ErrUnsupportedVersion = errors.New("неподдерживаемая версия архива")
)

// TeamStore архив команды в одном файле. Запись перезаписывает файл целиком
//go:generate mockery --dir . --name TeamStore --output ./mocks
type TeamStore interface {
	// Сохраняет команду со всеми членами и лидером в файл path
	Write(path string, team *model.Team) error
	// Читает команду из файла path
	Read(path string) (*model.Team, error)
}

// Malformed оборачивает err в ErrMalformed (проверяется через errors.Cause). Текст err
// сохраняется в сообщении
func Malformed(err error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if err != nil {
		msg += ": " + err.Error()
	}
	return errors.Wrapf(err, ErrMalformed, "%s", msg)
}

// WriteFile перезаписывает файл path содержимым content
func WriteFile(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return errors.Annotatef(err, "ошибка записи %s", path)
	}
	return nil
}

// ReadFile читает файл path целиком
func ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "ошибка чтения %s", path)
	}
	return content, nil
}
