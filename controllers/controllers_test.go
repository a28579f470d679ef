package controllers

import (
	"net/http"
	"net/http/httptest"

	"consulta/config"
	dbpkg "consulta/db"
	"consulta/views"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// newEngine registra as rotas deste pacote sobre o banco informado.
// database nil simula o middleware de banco ausente.
func newEngine(database *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	SetConfigurations(config.Configuration{PageSize: 2})

	r := gin.New()
	r.SetHTMLTemplate(views.Templates())
	if database != nil {
		r.Use(dbpkg.Middleware(database))
	}

	r.GET("/", PaginaConsulta)
	r.GET("/requerimentos/:id", PaginaDetalhe)
	r.GET("/requerimentos/:id/editar", PaginaEditar)
	r.GET("/api/requerimentos", GetRequerimentos)
	r.GET("/api/requerimentos/exportar", ExportRequerimentos)
	r.GET("/api/requerimentos/:id", GetRequerimentoByID)
	r.GET("/api/situacoes", GetSituacoes)
	return r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}
