package config

import (
	"log"
	"os"
	"sync"

	"github.com/kirsrus/teams/pkg/validator"

	"github.com/jinzhu/configor"
)

var (
	config Config
	once   sync.Once
)

const (
	// FileName имя файла конфигурации по умолчанию
	FileName = "teams.yaml"
	// EnvPrefix префикс переменных окружения (TEAMS_LOG_LEVEL и т.п.)
	EnvPrefix = "TEAMS"
)

// Get единажды читает и возвращает конфигурацию
func Get() *Config {
	return GetWithPath(FileName)
}

// GetWithPath единожды читает и возвращает конфигурацию. Отсутствие файла не ошибка:
// тогда используются значения по умолчанию и переменные окружения
func GetWithPath(filepath string) *Config {
	once.Do(func() {
		cfg, err := Load(filepath)
		if err != nil {
			log.Fatalf("ошибка чтения файла конфигурации %s: %s", filepath, err)
		}
		config = *cfg
	})
	return &config
}

// Load читает конфигурацию из существующих файлов filepaths и переменных окружения
func Load(filepaths ...string) (*Config, error) {
	files := make([]string, 0, len(filepaths))
	for _, f := range filepaths {
		if _, err := os.Stat(f); err == nil {
			files = append(files, f)
		}
	}
	var cfg Config
	err := configor.New(&configor.Config{ENVPrefix: EnvPrefix}).Load(&cfg, files...)
	if err != nil {
		return nil, err
	}

	// Лишние пробелы и регистр из файла и окружения не учитываются
	valid := validator.Get()
	if err := valid.Conform(&cfg.Log); err != nil {
		return nil, err
	}
	if err := valid.Conform(&cfg.Export); err != nil {
		return nil, err
	}
	return &cfg, nil
}
