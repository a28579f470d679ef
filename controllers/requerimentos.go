package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	dbpkg "consulta/db"

	"github.com/gin-gonic/gin"
)

// GET /api/requerimentos
// Query params (todos opcionais):
// - cpf, processo_sei (com ou sem máscara)
// - situacao
// - data_inicio, data_fim (AAAA-MM-DD ou DD/MM/AAAA, inclusivos)
// - limit (1..500) e offset; sem limit devolve todas as linhas
// Sem parâmetros devolve todos os requerimentos, protocolo mais recente primeiro.
// O total (sem paginação) vai no header X-Total-Count.
func GetRequerimentos(c *gin.Context) {
	filtro, err := formularioFromQuery(c).Filtro()
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(c.Query("limit")) != "" {
		filtro.Limit = clampInt(queryInt(c, "limit", 200), 1, 500)
		filtro.Offset = clampInt(queryInt(c, "offset", 0), 0, 1_000_000)
	}

	db, ok := database(c)
	if !ok {
		return
	}

	records, total, err := dbpkg.ListRequerimentos(db, filtro)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	RespondSuccess(c, records)
}

// GET /api/requerimentos/:id
func GetRequerimentoByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db, ok := database(c)
	if !ok {
		return
	}

	record, err := dbpkg.GetRequerimento(db, id)
	if errors.Is(err, dbpkg.ErrRequerimentoNaoEncontrado) {
		RespondError(c, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, record)
}

// GET /api/situacoes
func GetSituacoes(c *gin.Context) {
	db, ok := database(c)
	if !ok {
		return
	}

	situacoes, err := dbpkg.ListSituacoes(db)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, situacoes)
}
