package router

import (
	"net/http"

	"consulta/config"
	"consulta/controllers"
	"consulta/middleware"
	"consulta/views"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Initialize wires all routes and middlewares.
// The db middleware (db.Middleware) must be registered by the caller before this.
func Initialize(r *gin.Engine, cfg config.Configuration) {
	controllers.SetConfigurations(cfg)

	// antes do Recovery, para contar também os 500 de panic
	r.Use(RecordHTTPStats())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	r.SetHTMLTemplate(views.Templates())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Tela de consulta
	r.GET("/", Logger(), controllers.PaginaConsulta)
	r.GET("/requerimentos/:id", Logger(), controllers.PaginaDetalhe)
	r.GET("/requerimentos/:id/editar", Logger(), controllers.PaginaEditar)

	api := r.Group("/api")

	// Consulta (somente leitura)
	api.GET("/requerimentos", Logger(), controllers.GetRequerimentos)
	api.GET("/requerimentos/exportar", Logger(), controllers.ExportRequerimentos)
	api.GET("/requerimentos/:id", Logger(), controllers.GetRequerimentoByID)
	api.GET("/situacoes", Logger(), controllers.GetSituacoes)

	logrus.Info("Routes initialized")
}
