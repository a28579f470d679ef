package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	dbpkg "consulta/db"
	"consulta/models"
	"consulta/tools"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const MSG_ERRO_CONSULTA = "Erro ao consultar requerimentos. Tente novamente."

type linkPagina struct {
	Numero int
	URL    string
	Atual  bool
}

type paginacao struct {
	Anterior string
	Proxima  string
	Paginas  []linkPagina
}

type paginaConsulta struct {
	Form        formularioBusca
	ErroCPF     string
	ErroSEI     string
	Erro        string
	Situacoes   []string
	Records     []models.RequerimentoRecord
	Total       int64
	Paginacao   paginacao
	ExportarCSV string
	ExportarTXT string
}

type paginaDetalhe struct {
	Record models.RequerimentoRecord
	Aviso  string
	Erro   string
}

// GET /
// Mesmos filtros de GET /api/requerimentos, mais "pagina" (1..n).
// Período inválido não chega ao banco. Erros de CPF/SEI só marcam o campo.
func PaginaConsulta(c *gin.Context) {
	form := formularioFromQuery(c)
	page := paginaConsulta{
		Form:    form,
		ErroCPF: tools.ValidarCPF(form.CPF),
		ErroSEI: tools.ValidarSEI(form.NumeroSei),
		Records: []models.RequerimentoRecord{},
	}

	filtro, err := form.Filtro()
	if err != nil {
		page.Erro = err.Error()
		c.HTML(http.StatusBadRequest, "consulta.html", page)
		return
	}

	db := dbpkg.FromContext(c)
	if db == nil {
		page.Erro = MSG_DB_NAO_CONFIGURADO
		c.HTML(http.StatusInternalServerError, "consulta.html", page)
		return
	}

	if situacoes, err := dbpkg.ListSituacoes(db); err == nil {
		page.Situacoes = situacoes
	} else {
		logrus.WithError(err).Warn("situações indisponíveis para o formulário")
	}

	tamanho := pageSize()
	atual := clampInt(queryInt(c, "pagina", 1), 1, max(1, 1_000_000/tamanho))
	filtro.Limit = tamanho
	filtro.Offset = (atual - 1) * tamanho

	records, total, err := dbpkg.ListRequerimentos(db, filtro)
	if err != nil {
		page.Erro = MSG_ERRO_CONSULTA
		c.HTML(http.StatusInternalServerError, "consulta.html", page)
		return
	}

	values := form.Values()
	page.Records = records
	page.Total = total
	page.Paginacao = montarPaginacao("/", values, atual, totalPaginas(total, tamanho))
	page.ExportarCSV = linkExportacao(values, FORMATO_CSV)
	page.ExportarTXT = linkExportacao(values, FORMATO_TXT)

	c.HTML(http.StatusOK, "consulta.html", page)
}

// GET /requerimentos/:id
func PaginaDetalhe(c *gin.Context) {
	renderDetalhe(c, func(models.RequerimentoRecord) string { return "" })
}

// GET /requerimentos/:id/editar
// Ainda não há fluxo de edição: mostra o requerimento com o aviso.
func PaginaEditar(c *gin.Context) {
	renderDetalhe(c, func(r models.RequerimentoRecord) string {
		return "Editando requerimento: " + tools.MascaraSEI(r.ProcessoSei)
	})
}

func renderDetalhe(c *gin.Context, aviso func(models.RequerimentoRecord) string) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.HTML(http.StatusBadRequest, "detalhe.html", paginaDetalhe{Erro: "id inválido"})
		return
	}

	db := dbpkg.FromContext(c)
	if db == nil {
		c.HTML(http.StatusInternalServerError, "detalhe.html", paginaDetalhe{Erro: MSG_DB_NAO_CONFIGURADO})
		return
	}

	record, err := dbpkg.GetRequerimento(db, id)
	if errors.Is(err, dbpkg.ErrRequerimentoNaoEncontrado) {
		c.HTML(http.StatusNotFound, "detalhe.html", paginaDetalhe{Erro: "Requerimento não encontrado"})
		return
	}
	if err != nil {
		logrus.WithError(err).WithField("id", id).Error("erro ao carregar requerimento")
		c.HTML(http.StatusInternalServerError, "detalhe.html", paginaDetalhe{Erro: MSG_ERRO_CONSULTA})
		return
	}

	c.HTML(http.StatusOK, "detalhe.html", paginaDetalhe{Record: record, Aviso: aviso(record)})
}

func totalPaginas(total int64, tamanho int) int {
	if total <= 0 || tamanho <= 0 {
		return 0
	}
	return int((total + int64(tamanho) - 1) / int64(tamanho))
}

// montarPaginacao gera anterior/próxima e uma janela de até 5 páginas em
// volta da atual, preservando os filtros.
func montarPaginacao(base string, values url.Values, atual, total int) paginacao {
	var p paginacao
	if total <= 0 {
		return p
	}

	link := func(n int) string {
		v := url.Values{}
		for k, vs := range values {
			v[k] = vs
		}
		v.Set("pagina", strconv.Itoa(n))
		return base + "?" + v.Encode()
	}

	inicio := clampInt(atual-2, 1, total)
	fim := inicio + 4
	if fim > total {
		fim = total
		inicio = clampInt(fim-4, 1, total)
	}
	for n := inicio; n <= fim; n++ {
		p.Paginas = append(p.Paginas, linkPagina{Numero: n, URL: link(n), Atual: n == atual})
	}

	if atual > 1 && atual <= total {
		p.Anterior = link(atual - 1)
	}
	if atual < total {
		p.Proxima = link(atual + 1)
	}
	return p
}

func linkExportacao(values url.Values, formato string) string {
	v := url.Values{}
	for k, vs := range values {
		v[k] = vs
	}
	v.Set("formato", formato)
	return fmt.Sprintf("/api/requerimentos/exportar?%s", v.Encode())
}
