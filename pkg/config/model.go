package config

type (

	// Config конфигурация программы
	Config struct {

		// Описание логирования
		Log struct {

			// Путь к директории с логом
			Path string `conform:"trim"`

			// Имя файла логирования
			Filename string `required:"true" default:"teams.log" conform:"trim"`

			// Уровень логирования
			Level string `required:"true" default:"warning" conform:"trim,lower"`

			// Выводить лог только на консоль
			Console bool `default:"false"`
		}

		// Выгрузка команды в архивы при запуске
		Export struct {

			// Директория для архивов. Пустая - выгрузка отключена
			Dir string `conform:"trim"`

			// Форматы архивов (binary, xml, sqlite)
			Formats []string `default:"[binary,xml,sqlite]" conform:"trim,lower"`

			// Время хранения прочитанных архивов в кэше (в минутах)
			CacheMinutes int `default:"10"`
		}
	}
)
