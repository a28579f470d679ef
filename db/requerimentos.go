package db

import (
	"errors"
	"fmt"
	"time"

	"consulta/models"
	"consulta/tools"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

var ErrRequerimentoNaoEncontrado = errors.New("requerimento não encontrado")

const colunasRequerimento = `req_requerimento.req_id AS id,
	req_requerimento.req_requerente_cpf AS cpf,
	req_requerimento.req_nome_requerente AS nome_requerente,
	req_requerimento.req_processo_sei AS processo_sei,
	req_requerimento.req_data_protocolo AS data_protocolo,
	rel_relator.rel_nome AS relator,
	req_requerimento.req_situacao_doenca AS situacao`

// linha lida do banco antes de virar models.RequerimentoRecord.
// data_protocolo chega como date e é devolvida como texto AAAA-MM-DD.
type requerimentoRow struct {
	ID             int64     `gorm:"column:id"`
	CPF            string    `gorm:"column:cpf"`
	NomeRequerente string    `gorm:"column:nome_requerente"`
	ProcessoSei    string    `gorm:"column:processo_sei"`
	DataProtocolo  time.Time `gorm:"column:data_protocolo"`
	Relator        *string   `gorm:"column:relator"`
	Situacao       string    `gorm:"column:situacao"`
}

func (r requerimentoRow) record() models.RequerimentoRecord {
	return models.RequerimentoRecord{
		ID:             r.ID,
		CPF:            r.CPF,
		NomeRequerente: r.NomeRequerente,
		ProcessoSei:    r.ProcessoSei,
		DataProtocolo:  r.DataProtocolo.UTC().Format(models.LAYOUT_DATA_PROTOCOLO),
		Relator:        r.Relator,
		Situacao:       r.Situacao,
	}
}

// ListRequerimentos executa a consulta principal: requerimentos com o relator
// (LEFT JOIN, então requerimentos sem relator também aparecem), do protocolo
// mais recente para o mais antigo. Devolve também o total sem paginação.
func ListRequerimentos(database *gorm.DB, f models.FiltroRequerimento) ([]models.RequerimentoRecord, int64, error) {
	if database == nil {
		return nil, 0, errors.New("db não configurado")
	}
	if err := tools.ValidarPeriodo(f.Inicio, f.Fim); err != nil {
		return nil, 0, err
	}

	start := time.Now()
	out, total, err := listRequerimentos(database, f)
	metricConsultaDuracao.Observe(time.Since(start).Seconds())
	if err != nil {
		metricConsultas.WithLabelValues("erro").Inc()
		logrus.WithError(err).Error("consulta de requerimentos falhou")
		return nil, 0, err
	}
	metricConsultas.WithLabelValues("ok").Inc()

	logrus.WithFields(logrus.Fields{
		"linhas": len(out),
		"total":  total,
	}).Debug("consulta de requerimentos")
	return out, total, nil
}

func listRequerimentos(database *gorm.DB, f models.FiltroRequerimento) ([]models.RequerimentoRecord, int64, error) {
	query := applyFiltro(baseQuery(database), f)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("erro ao contar requerimentos: %w", err)
	}

	query = query.Select(colunasRequerimento).
		Order("req_requerimento.req_data_protocolo desc").
		Order("req_requerimento.req_id desc")
	if f.Limit > 0 {
		query = query.Limit(f.Limit).Offset(f.Offset)
	}

	var rows []requerimentoRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("erro ao consultar requerimentos: %w", err)
	}

	out := make([]models.RequerimentoRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.record())
	}
	return out, total, nil
}

// GetRequerimento busca um único requerimento pelo id, no mesmo formato da listagem.
func GetRequerimento(database *gorm.DB, id int64) (models.RequerimentoRecord, error) {
	if database == nil {
		return models.RequerimentoRecord{}, errors.New("db não configurado")
	}

	var row requerimentoRow
	err := baseQuery(database).
		Select(colunasRequerimento).
		Where("req_requerimento.req_id = ?", id).
		Limit(1).
		Scan(&row).Error
	if gorm.IsRecordNotFoundError(err) {
		return models.RequerimentoRecord{}, ErrRequerimentoNaoEncontrado
	}
	if err != nil {
		return models.RequerimentoRecord{}, fmt.Errorf("erro ao buscar requerimento %d: %w", id, err)
	}
	return row.record(), nil
}

// ListSituacoes devolve as situações distintas cadastradas, em ordem alfabética.
func ListSituacoes(database *gorm.DB) ([]string, error) {
	if database == nil {
		return nil, errors.New("db não configurado")
	}

	situacoes := []string{}
	err := database.Table(models.Requerimento{}.TableName()).
		Where("req_situacao_doenca <> ''").
		Order("req_situacao_doenca asc").
		Pluck("DISTINCT req_situacao_doenca", &situacoes).Error
	if err != nil {
		return nil, fmt.Errorf("erro ao listar situações: %w", err)
	}
	return situacoes, nil
}

func baseQuery(database *gorm.DB) *gorm.DB {
	return database.Table(models.Requerimento{}.TableName()).
		Joins("LEFT JOIN rel_relator ON req_requerimento.req_relator_id = rel_relator.rel_id")
}

func applyFiltro(query *gorm.DB, f models.FiltroRequerimento) *gorm.DB {
	if cpf := tools.SomenteDigitos(f.CPF); cpf != "" {
		query = query.Where("req_requerimento.req_requerente_cpf = ?", cpf)
	}
	if sei := tools.SomenteDigitos(f.ProcessoSei); sei != "" {
		query = query.Where("req_requerimento.req_processo_sei = ?", sei)
	}
	if f.Situacao != "" {
		query = query.Where("req_requerimento.req_situacao_doenca = ?", f.Situacao)
	}
	// período inclusivo: fim vira o dia seguinte, exclusivo
	if f.Inicio != nil {
		query = query.Where("req_requerimento.req_data_protocolo >= ?", limiteInicio(*f.Inicio))
	}
	if f.Fim != nil {
		query = query.Where("req_requerimento.req_data_protocolo < ?", limiteFim(*f.Fim))
	}
	return query
}

// Limites vão como texto AAAA-MM-DD para o banco comparar datas, sem fuso.
func limiteInicio(t time.Time) string {
	return diaUTC(t).Format(models.LAYOUT_DATA_PROTOCOLO)
}

func limiteFim(t time.Time) string {
	return diaUTC(t).AddDate(0, 0, 1).Format(models.LAYOUT_DATA_PROTOCOLO)
}

func diaUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
