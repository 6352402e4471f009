package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env   string // "development" escribe consola legible; cualquier otro valor, JSON
	Level string // trace|debug|info|warn|error; vacío o inválido cae a info
}

// New construye el logger estructurado de la aplicación y lo instala como
// logger global de zerolog para las librerías que lo consultan.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	zl := zerolog.New(os.Stdout)
	if cfg.Env == "development" {
		zl = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.Kitchen,
		})
	}
	zl = zl.Level(level).With().Timestamp().Logger()

	log.Logger = zl
	return zl
}
