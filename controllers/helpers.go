package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"consulta/models"
	"consulta/tools"

	"github.com/gin-gonic/gin"
)

// ParamID lê um id numérico positivo da rota; responde 400 quando inválido.
func ParamID(c *gin.Context, name string) (int64, bool) {
	v := c.Param(name)
	if v == "" {
		RespondError(c, name+" é obrigatório", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, name+" inválido", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// formularioBusca guarda o que o usuário digitou, para reexibir na tela.
type formularioBusca struct {
	CPF        string
	NumeroSei  string
	Situacao   string
	DataInicio string
	DataFim    string
}

func formularioFromQuery(c *gin.Context) formularioBusca {
	return formularioBusca{
		CPF:        strings.TrimSpace(c.Query("cpf")),
		NumeroSei:  strings.TrimSpace(c.Query("processo_sei")),
		Situacao:   strings.TrimSpace(c.Query("situacao")),
		DataInicio: strings.TrimSpace(c.Query("data_inicio")),
		DataFim:    strings.TrimSpace(c.Query("data_fim")),
	}
}

// Filtro converte o formulário no filtro da consulta. Erros aqui são sempre
// de entrada (400): datas inválidas ou início depois do fim.
func (f formularioBusca) Filtro() (models.FiltroRequerimento, error) {
	filtro := models.FiltroRequerimento{
		CPF:         f.CPF,
		ProcessoSei: f.NumeroSei,
		Situacao:    f.Situacao,
	}

	var err error
	if filtro.Inicio, err = parseDataOpcional("data_inicio", f.DataInicio); err != nil {
		return filtro, err
	}
	if filtro.Fim, err = parseDataOpcional("data_fim", f.DataFim); err != nil {
		return filtro, err
	}
	if err := tools.ValidarPeriodo(filtro.Inicio, filtro.Fim); err != nil {
		return filtro, err
	}
	return filtro, nil
}

// FiltroListagem aplica ao comando listar as mesmas regras do formulário de busca.
func FiltroListagem(cpf, sei, situacao, inicio, fim string) (models.FiltroRequerimento, error) {
	return formularioBusca{
		CPF:        strings.TrimSpace(cpf),
		NumeroSei:  strings.TrimSpace(sei),
		Situacao:   strings.TrimSpace(situacao),
		DataInicio: strings.TrimSpace(inicio),
		DataFim:    strings.TrimSpace(fim),
	}.Filtro()
}

// Values devolve os filtros preenchidos, para montar links de paginação/exportação.
func (f formularioBusca) Values() url.Values {
	out := url.Values{}
	add := func(k, v string) {
		if v != "" {
			out.Set(k, v)
		}
	}
	add("cpf", f.CPF)
	add("processo_sei", f.NumeroSei)
	add("situacao", f.Situacao)
	add("data_inicio", f.DataInicio)
	add("data_fim", f.DataFim)
	return out
}

func parseDataOpcional(campo, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := tools.ParseData(raw)
	if err != nil {
		return nil, fmt.Errorf("%s inválida (use AAAA-MM-DD ou DD/MM/AAAA)", campo)
	}
	return &t, nil
}

func queryInt(c *gin.Context, key string, def int) int {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
