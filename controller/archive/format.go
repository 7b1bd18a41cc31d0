package archive

import (
	"strings"

	"github.com/juju/errors"
)

// Format формат архива команды
type Format string

const (
	// FormatBinary CBOR
	FormatBinary Format = "binary"
	// FormatXML XML документ
	FormatXML Format = "xml"
	// FormatSqlite файл SQLite
	FormatSqlite Format = "sqlite"
)

// ParseFormat формат по названию (регистр не важен)
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatBinary, FormatXML, FormatSqlite:
		return f, nil
	}
	return "", errors.NotSupportedf("формат архива %q", s)
}

// Extension расширение файла для формата
func (f Format) Extension() string {
	switch f {
	case FormatXML:
		return ".xml"
	case FormatSqlite:
		return ".sqlite"
	}
	return ".bin"
}
