package controllers

import (
	"encoding/csv"
	"io"
	"net/http"
	"strconv"
	"strings"

	dbpkg "consulta/db"
	"consulta/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
)

const FORMATO_CSV = "csv"
const FORMATO_TXT = "txt"

// GET /api/requerimentos/exportar?formato=csv|txt
// Aceita os mesmos filtros de GET /api/requerimentos (sem paginação).
// csv baixa o arquivo; txt é a versão para impressão.
func ExportRequerimentos(c *gin.Context) {
	formato := strings.ToLower(strings.TrimSpace(c.DefaultQuery("formato", FORMATO_CSV)))
	if formato != FORMATO_CSV && formato != FORMATO_TXT {
		RespondError(c, "formato inválido (use csv ou txt)", http.StatusBadRequest)
		return
	}

	filtro, err := formularioFromQuery(c).Filtro()
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db, ok := database(c)
	if !ok {
		return
	}

	records, _, err := dbpkg.ListRequerimentos(db, filtro)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	if formato == FORMATO_TXT {
		c.Header("Content-Type", "text/plain; charset=utf-8")
		c.Status(http.StatusOK)
		TabelaRequerimentos(c.Writer, records).Render()
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="requerimentos.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write(models.CabecalhoExportacao)
	for _, r := range records {
		_ = w.Write(r.Colunas())
	}
	w.Flush()
	if err := w.Error(); err != nil {
		logrus.WithError(err).Error("erro ao escrever csv de requerimentos")
	}
}

// TabelaRequerimentos monta a tabela em texto usada na impressão e no CLI.
func TabelaRequerimentos(out io.Writer, records []models.RequerimentoRecord) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(models.CabecalhoExportacao)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for _, r := range records {
		table.Append(r.Colunas())
	}
	return table
}

// ListarTabela executa a consulta e escreve a tabela em w, com o total no rodapé.
func ListarTabela(w io.Writer, database *gorm.DB, filtro models.FiltroRequerimento) error {
	records, total, err := dbpkg.ListRequerimentos(database, filtro)
	if err != nil {
		return err
	}

	table := TabelaRequerimentos(w, records)
	table.SetFooter([]string{"", "", "", "", "Total", strconv.FormatInt(total, 10)})
	table.Render()
	return nil
}
