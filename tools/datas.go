package tools

import (
	"errors"
	"strings"
	"time"
)

var ErrPeriodoInvalido = errors.New("Data início não pode ser maior que data fim")

// ParseData aceita o formato do input date do HTML (AAAA-MM-DD) e o
// formato brasileiro (DD/MM/AAAA). A data é interpretada em UTC.
func ParseData(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	t, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err == nil {
		return t, nil
	}
	return time.ParseInLocation("02/01/2006", raw, time.UTC)
}

// ValidarPeriodo recusa início depois do fim. Datas nil não são comparadas.
func ValidarPeriodo(inicio, fim *time.Time) error {
	if inicio != nil && fim != nil && inicio.After(*fim) {
		return ErrPeriodoInvalido
	}
	return nil
}

// DataBR converte AAAA-MM-DD para DD/MM/AAAA; outros valores voltam como vieram.
func DataBR(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02/01/2006")
}
