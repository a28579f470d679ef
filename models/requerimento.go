package models

import (
	"time"

	"consulta/tools"
)

/************************************************
/**** MARK: SITUAÇÃO ****/
/************************************************/
const SITUACAO_DEFERIDO = "Deferido"
const SITUACAO_INDEFERIDO = "Indeferido"
const SITUACAO_EM_ANALISE = "Em análise"

const LAYOUT_DATA_PROTOCOLO = "2006-01-02"

// Requerimento é a linha de req_requerimento. Criação e alteração acontecem
// em outro sistema; aqui a tabela é só lida (o struct existe para AutoMigrate
// em dev e para os testes).
type Requerimento struct {
	ID             int64     `gorm:"column:req_id;primary_key;AUTO_INCREMENT" json:"id"`
	RequerenteCPF  string    `gorm:"column:req_requerente_cpf;type:varchar(11);not null;index" json:"cpf"`
	NomeRequerente string    `gorm:"column:req_nome_requerente;default:''" json:"nome_requerente"`
	ProcessoSei    string    `gorm:"column:req_processo_sei;type:varchar(17);not null;index" json:"processo_sei"`
	DataProtocolo  time.Time `gorm:"column:req_data_protocolo;type:date;not null;index" json:"data_protocolo"`
	RelatorID      *int64    `gorm:"column:req_relator_id" json:"relator_id"`
	SituacaoDoenca string    `gorm:"column:req_situacao_doenca;not null" json:"situacao"`
}

func (Requerimento) TableName() string {
	return "req_requerimento"
}

// RequerimentoRecord é a projeção devolvida pela consulta (requerimento + relator).
// Mesmas chaves para a API JSON e para a tela.
type RequerimentoRecord struct {
	ID             int64   `json:"id"`
	CPF            string  `json:"cpf"`
	NomeRequerente string  `json:"nome_requerente"`
	ProcessoSei    string  `json:"processo_sei"`
	DataProtocolo  string  `json:"data_protocolo"`
	Relator        *string `json:"relator"`
	Situacao       string  `json:"situacao"`
}

// RelatorNome devolve o nome do relator ou "" quando não há relator atribuído.
func (r RequerimentoRecord) RelatorNome() string {
	if r.Relator == nil {
		return ""
	}
	return *r.Relator
}

var CabecalhoExportacao = []string{
	"Requerente", "CPF", "Número SEI", "Data de Protocolo", "Relator", "Situação",
}

// Colunas formata o registro para exportação (csv, impressão e CLI).
func (r RequerimentoRecord) Colunas() []string {
	return []string{
		r.NomeRequerente,
		tools.MascaraCPF(r.CPF),
		tools.MascaraSEI(r.ProcessoSei),
		tools.DataBR(r.DataProtocolo),
		r.RelatorNome(),
		r.Situacao,
	}
}
