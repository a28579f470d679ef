package controllers

import (
	"net/http"

	"consulta/config"
	dbpkg "consulta/db"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

const MSG_DB_NAO_CONFIGURADO = "db não configurado no contexto"

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"error": msg})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// database devolve a conexão do request; responde 500 quando não houver.
func database(c *gin.Context) (*gorm.DB, bool) {
	db := dbpkg.FromContext(c)
	if db == nil {
		RespondError(c, MSG_DB_NAO_CONFIGURADO, http.StatusInternalServerError)
		return nil, false
	}
	return db, true
}

func pageSize() int {
	if conf.PageSize <= 0 {
		return 10
	}
	return conf.PageSize
}
