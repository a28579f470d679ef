package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"consulta/db/dbtest"
	"consulta/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecords(t *testing.T, body []byte) []models.RequerimentoRecord {
	t.Helper()
	var out []models.RequerimentoRecord
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func recordIDs(records []models.RequerimentoRecord) []int64 {
	out := []int64{}
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestGetRequerimentosAll(t *testing.T) {
	database := dbtest.Open(t)
	dbtest.Seed(t, database)

	w := get(newEngine(database), "/api/requerimentos")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "4", w.Header().Get("X-Total-Count"))
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.Len(t, raw, 4)

	first := raw[0]
	for _, key := range []string{"id", "cpf", "nome_requerente", "processo_sei", "data_protocolo", "relator", "situacao"} {
		assert.Contains(t, first, key)
	}
	assert.Len(t, first, 7)
	assert.Nil(t, first["relator"])
	assert.Equal(t, "2024-11-20", first["data_protocolo"])

	assert.Equal(t, []int64{3, 1, 4, 2}, recordIDs(decodeRecords(t, w.Body.Bytes())))
}

func TestGetRequerimentosEmptyIsArray(t *testing.T) {
	database := dbtest.Open(t)

	w := get(newEngine(database), "/api/requerimentos")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetRequerimentosFiltrosEPaginacao(t *testing.T) {
	database := dbtest.Open(t)
	dbtest.Seed(t, database)
	r := newEngine(database)

	w := get(r, "/api/requerimentos?cpf=000.000.000-00")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{1}, recordIDs(decodeRecords(t, w.Body.Bytes())))

	w = get(r, "/api/requerimentos?situacao=Em+an%C3%A1lise&data_fim=15/09/2024")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{2}, recordIDs(decodeRecords(t, w.Body.Bytes())))

	w = get(r, "/api/requerimentos?limit=2&offset=1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "4", w.Header().Get("X-Total-Count"))
	assert.Equal(t, []int64{1, 4}, recordIDs(decodeRecords(t, w.Body.Bytes())))
}

func TestGetRequerimentosPeriodoInvalidoNaoConsulta(t *testing.T) {
	// sem banco no contexto: se a validação deixasse passar, a resposta seria 500
	w := get(newEngine(nil), "/api/requerimentos?data_inicio=2024-10-02&data_fim=2024-10-01")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Data início não pode ser maior que data fim"}`, w.Body.String())

	w = get(newEngine(nil), "/api/requerimentos?data_inicio=ontem")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "data_inicio inválida")
}

func TestGetRequerimentosFalhaNoBanco(t *testing.T) {
	database := dbtest.Open(t)
	r := newEngine(database)
	require.NoError(t, database.Close())

	w := get(r, "/api/requerimentos")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestGetRequerimentosSemBanco(t *testing.T) {
	w := get(newEngine(nil), "/api/requerimentos")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"`+MSG_DB_NAO_CONFIGURADO+`"}`, w.Body.String())
}

func TestGetRequerimentoByID(t *testing.T) {
	database := dbtest.Open(t)
	dbtest.Seed(t, database)
	r := newEngine(database)

	w := get(r, "/api/requerimentos/2")
	require.Equal(t, http.StatusOK, w.Code)
	var record models.RequerimentoRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, "Bruno Lima", record.NomeRequerente)
	assert.Equal(t, "João Santos", record.RelatorNome())

	w = get(r, "/api/requerimentos/99")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"requerimento não encontrado"}`, w.Body.String())

	w = get(r, "/api/requerimentos/0")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSituacoes(t *testing.T) {
	database := dbtest.Open(t)
	dbtest.Seed(t, database)

	w := get(newEngine(database), "/api/situacoes")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["Deferido","Em análise","Indeferido"]`, w.Body.String())
}
