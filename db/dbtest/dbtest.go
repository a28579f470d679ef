// Package dbtest monta um banco sqlite em memória com dados conhecidos
// para os testes dos outros pacotes.
package dbtest

import (
	"testing"
	"time"

	"consulta/db"
	"consulta/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/require"
)

// Open abre um sqlite em memória já migrado. Uma única conexão, senão cada
// conexão do pool enxerga um banco vazio diferente.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	database.DB().SetMaxOpenConns(1)
	require.NoError(t, db.Migrate(database))

	t.Cleanup(func() { database.Close() })
	return database
}

func Data(iso string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", iso, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

// Seed grava dois relatores e quatro requerimentos (um sem relator).
// Ordem esperada da consulta: 3, 1, 4, 2.
func Seed(t *testing.T, database *gorm.DB) []models.Requerimento {
	t.Helper()

	maria := models.Relator{Nome: "Maria Silva"}
	joao := models.Relator{Nome: "João Santos"}
	require.NoError(t, database.Create(&maria).Error)
	require.NoError(t, database.Create(&joao).Error)

	reqs := []models.Requerimento{
		{
			RequerenteCPF:  "00000000000",
			NomeRequerente: "Ana Souza",
			ProcessoSei:    "01234567890202400",
			DataProtocolo:  Data("2024-10-01"),
			RelatorID:      &maria.ID,
			SituacaoDoenca: models.SITUACAO_DEFERIDO,
		},
		{
			RequerenteCPF:  "11111111111",
			NomeRequerente: "Bruno Lima",
			ProcessoSei:    "05678901234202401",
			DataProtocolo:  Data("2024-09-15"),
			RelatorID:      &joao.ID,
			SituacaoDoenca: models.SITUACAO_EM_ANALISE,
		},
		{
			RequerenteCPF:  "22222222222",
			NomeRequerente: "Carla Dias",
			ProcessoSei:    "09999999999202402",
			DataProtocolo:  Data("2024-11-20"),
			SituacaoDoenca: models.SITUACAO_EM_ANALISE,
		},
		{
			RequerenteCPF:  "33333333333",
			NomeRequerente: "Diego Reis",
			ProcessoSei:    "01111111111202403",
			DataProtocolo:  Data("2024-09-15"),
			RelatorID:      &maria.ID,
			SituacaoDoenca: models.SITUACAO_INDEFERIDO,
		},
	}
	for i := range reqs {
		require.NoError(t, database.Create(&reqs[i]).Error)
	}
	return reqs
}
