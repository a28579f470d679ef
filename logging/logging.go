package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"consulta/config"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

// Setup direciona o logrus para stdout e para o arquivo configurado em log_path.
func Setup(cfg config.Configuration) error {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	if cfg.LogPath == "" {
		logrus.SetOutput(os.Stdout)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o755); err != nil {
		return fmt.Errorf("erro ao criar diretório de log: %w", err)
	}
	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("erro ao abrir arquivo de log: %w", err)
	}

	logrus.SetOutput(io.MultiWriter(os.Stdout, f))
	return nil
}

// GormLogger adapta o logrus ao LogMode do gorm.
type GormLogger struct{}

func (GormLogger) Print(v ...interface{}) {
	logrus.WithField("origem", "gorm").Debug(gorm.LogFormatter(v...)...)
}
