package tools

import "strings"

const TAMANHO_CPF = 11
const TAMANHO_SEI = 17

const ERRO_CPF = "CPF deve ter 11 dígitos"
const ERRO_SEI = "Número SEI deve ter 17 dígitos"

// SomenteDigitos remove tudo que não é dígito (0-9).
func SomenteDigitos(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			b.WriteByte(raw[i])
		}
	}
	return b.String()
}

// MascaraCPF formata como 000.000.000-00. Entradas parciais recebem só os
// separadores dos grupos já iniciados ("1234" -> "123.4"); com mais de 11
// dígitos a entrada volta como foi digitada.
func MascaraCPF(raw string) string {
	return mascarar(raw, []int{3, 3, 3, 2}, []string{".", ".", "-"})
}

// MascaraSEI formata como 00000.000000/0000-00 (mais de 17 dígitos: sem máscara).
func MascaraSEI(raw string) string {
	return mascarar(raw, []int{5, 6, 4, 2}, []string{".", "/", "-"})
}

// ValidarCPF devolve a mensagem de erro do campo ou "" (vazio é aceito).
func ValidarCPF(raw string) string {
	return validarTamanho(raw, TAMANHO_CPF, ERRO_CPF)
}

// ValidarSEI devolve a mensagem de erro do campo ou "" (vazio é aceito).
func ValidarSEI(raw string) string {
	return validarTamanho(raw, TAMANHO_SEI, ERRO_SEI)
}

func validarTamanho(raw string, tamanho int, msg string) string {
	n := len(SomenteDigitos(raw))
	if n > 0 && n != tamanho {
		return msg
	}
	return ""
}

// mascarar distribui os dígitos nos grupos e coloca o separador antes de
// cada grupo que tiver ao menos um dígito.
func mascarar(raw string, grupos []int, seps []string) string {
	digits := SomenteDigitos(raw)
	tamanho := 0
	for _, g := range grupos {
		tamanho += g
	}
	if len(digits) > tamanho {
		return raw
	}

	var b strings.Builder
	pos := 0
	for i, g := range grupos {
		if pos >= len(digits) {
			break
		}
		if i > 0 {
			b.WriteString(seps[i-1])
		}
		end := pos + g
		if end > len(digits) {
			end = len(digits)
		}
		b.WriteString(digits[pos:end])
		pos = end
	}
	return b.String()
}
