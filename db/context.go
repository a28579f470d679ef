package db

import (
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

const ctxDBKey = "consulta_db"

// Middleware deixa a conexão disponível para os handlers do request.
func Middleware(database *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if database != nil {
			c.Set(ctxDBKey, database)
		}
		c.Next()
	}
}

// FromContext devolve a conexão do request ou nil quando o Middleware não rodou.
func FromContext(c *gin.Context) *gorm.DB {
	v, ok := c.Get(ctxDBKey)
	if !ok {
		return nil
	}
	database, _ := v.(*gorm.DB)
	return database
}
