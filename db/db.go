package db

import (
	"fmt"
	"os"
	"path/filepath"

	"consulta/config"
	"consulta/logging"
	"consulta/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/sirupsen/logrus"
)

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

// Connect abre a conexão (postgres por padrão, sqlite3 em dev).
// Para criar as tabelas em dev, exporte AUTOMIGRATE=1.
func Connect() (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch conf.Database {
	case "sqlite3", "sqlite":
		logrus.Info("Utilizando conexão com o sqlite3...")
		if err := os.MkdirAll(filepath.Dir(conf.SqlitePath), 0o755); err != nil {
			return nil, fmt.Errorf("erro ao criar diretório do sqlite: %w", err)
		}
		db, err = gorm.Open("sqlite3", conf.SqlitePath)
	default:
		logrus.Info("Utilizando conexão com o postgresql...")
		db, err = gorm.Open("postgres", postgresDSN(conf))
	}
	if err != nil {
		logrus.WithError(err).Error("Erro ao conectar no banco")
		return nil, fmt.Errorf("erro ao conectar no banco: %w", err)
	}

	if conf.Debug {
		db.SetLogger(logging.GormLogger{})
		db.LogMode(true)
	}

	if getenv("AUTOMIGRATE", "0") == "1" {
		if err := Migrate(db); err != nil {
			db.Close()
			return nil, err
		}
	}

	return db, nil
}

// Migrate cria/ajusta as tabelas de requerimento e relator.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Relator{}, &models.Requerimento{}).Error; err != nil {
		return fmt.Errorf("erro no automigrate: %w", err)
	}
	return nil
}

func postgresDSN(c config.Configuration) string {
	path := "host=" + c.DbHost + " port=" + c.DbPort
	path += " user=" + c.DbUser + " dbname=" + c.DbName
	path += " password=" + c.DbPass + " sslmode=" + c.DbSSLMode
	return path
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
