package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Configuration struct {
	ApiPort string `json:"api_port"`
	LogPath string `json:"log_path"`
	Debug   bool   `json:"debug"`

	Database   string `json:"database"` // "postgres" ou "sqlite3"
	DbHost     string `json:"db_host"`
	DbPort     string `json:"db_port"`
	DbUser     string `json:"db_user"`
	DbName     string `json:"db_name"`
	DbPass     string `json:"db_pass"`
	DbSSLMode  string `json:"db_sslmode"`
	SqlitePath string `json:"sqlite_path"`

	// Quantidade de linhas por página na tela de consulta.
	PageSize int `json:"page_size"`
}

// Load lê o arquivo JSON (opcional), aplica as variáveis de ambiente
// (com suporte a .env) e preenche os defaults.
func Load(path string) (Configuration, error) {
	var c Configuration

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := json.Unmarshal(b, &c); err != nil {
				return c, fmt.Errorf("config %s inválida: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// sem arquivo: segue com env + defaults
		default:
			return c, fmt.Errorf("erro ao ler config %s: %w", path, err)
		}
	}

	// .env é opcional, igual ao ambiente de dev
	_ = godotenv.Load()

	c.applyEnv()
	c.applyDefaults()
	return c, nil
}

func (c *Configuration) applyEnv() {
	override(&c.ApiPort, "API_PORT")
	override(&c.LogPath, "LOG_PATH")
	override(&c.Database, "DATABASE")
	override(&c.DbHost, "DB_HOST")
	override(&c.DbPort, "DB_PORT")
	override(&c.DbUser, "DB_USER")
	override(&c.DbName, "DB_NAME")
	override(&c.DbPass, "DB_PASS")
	override(&c.DbSSLMode, "DB_SSLMODE")
	override(&c.SqlitePath, "SQLITE_PATH")

	if v := strings.TrimSpace(os.Getenv("DEBUG")); v != "" {
		c.Debug = strings.EqualFold(v, "true") || v == "1"
	}
}

// defaults (mesmos do ambiente local original)
func (c *Configuration) applyDefaults() {
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.Database == "" {
		c.Database = "postgres"
	}
	if c.DbHost == "" {
		c.DbHost = "localhost"
	}
	if c.DbPort == "" {
		c.DbPort = "5432"
	}
	if c.DbUser == "" {
		c.DbUser = "postgres"
	}
	if c.DbName == "" {
		c.DbName = "postgres"
	}
	if c.DbPass == "" {
		c.DbPass = "root"
	}
	if c.DbSSLMode == "" {
		c.DbSSLMode = "disable"
	}
	if c.SqlitePath == "" {
		c.SqlitePath = "db/database.db"
	}
	if c.PageSize <= 0 {
		c.PageSize = 10
	}
}

func override(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
