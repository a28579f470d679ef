package models

import "time"

// FiltroRequerimento agrupa os filtros do formulário de pesquisa.
// Campos vazios/nil não filtram. Limit <= 0 devolve todas as linhas.
type FiltroRequerimento struct {
	CPF         string
	ProcessoSei string
	Situacao    string
	Inicio      *time.Time
	Fim         *time.Time

	Limit  int
	Offset int
}
