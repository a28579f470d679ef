package main

import (
	"net/http"
	"os"
	"time"

	"consulta/config"
	"consulta/controllers"
	dbpkg "consulta/db"
	"consulta/logging"
	"consulta/router"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

// =====================
// ENV (sobrescrevem o config.json; .env é carregado se existir)
// =====================
//
// - API_PORT, LOG_PATH, DEBUG
// - DATABASE                      ("postgres" ou "sqlite3")
// - DB_HOST, DB_PORT, DB_NAME, DB_USER, DB_PASS, DB_SSLMODE
// - SQLITE_PATH
// - AUTOMIGRATE                   (1 cria as tabelas; só para dev)
//
// =====================

var (
	app        = kingpin.New("consulta", "Sistema de Consulta de Requerimentos.")
	configPath = app.Flag("config", "Arquivo de configuração JSON.").Default("config.json").String()

	serveCmd = app.Command("serve", "Sobe a API e a tela de consulta.").Default()

	listarCmd      = app.Command("listar", "Lista os requerimentos no terminal.")
	listarCPF      = listarCmd.Flag("cpf", "CPF (com ou sem máscara).").String()
	listarSei      = listarCmd.Flag("sei", "Número SEI (com ou sem máscara).").String()
	listarSituacao = listarCmd.Flag("situacao", "Situação exata.").String()
	listarInicio   = listarCmd.Flag("inicio", "Data início (AAAA-MM-DD ou DD/MM/AAAA).").String()
	listarFim      = listarCmd.Flag("fim", "Data fim (AAAA-MM-DD ou DD/MM/AAAA).").String()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := config.Load(*configPath)
	kingpin.FatalIfError(err, "Unable to load config.")
	kingpin.FatalIfError(logging.Setup(cfg), "Logging")

	dbpkg.SetConfigurations(cfg)
	database, err := dbpkg.Connect()
	kingpin.FatalIfError(err, "Unable to connect to database.")
	defer database.Close()

	switch command {
	case serveCmd.FullCommand():
		serve(cfg, database)
	case listarCmd.FullCommand():
		kingpin.FatalIfError(listar(database), "listar")
	}
}

func serve(cfg config.Configuration, database *gorm.DB) {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(dbpkg.Middleware(database))
	router.Initialize(r, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.ApiPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logrus.Infof("Consulta listening on :%s", cfg.ApiPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.WithError(err).Fatal("server stopped")
	}
}

func listar(database *gorm.DB) error {
	filtro, err := controllers.FiltroListagem(*listarCPF, *listarSei, *listarSituacao, *listarInicio, *listarFim)
	if err != nil {
		return err
	}
	return controllers.ListarTabela(os.Stdout, database, filtro)
}
