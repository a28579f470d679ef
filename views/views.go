// Package views guarda os templates HTML da tela de consulta.
package views

import (
	"embed"
	"html/template"

	"consulta/tools"
)

//go:embed templates/*.html
var files embed.FS

func Funcs() template.FuncMap {
	return template.FuncMap{
		"cpf":    tools.MascaraCPF,
		"sei":    tools.MascaraSEI,
		"dataBR": tools.DataBR,
	}
}

// Templates devolve todos os templates, nomeados pelo arquivo (ex.: "consulta.html").
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(Funcs()).ParseFS(files, "templates/*.html"))
}
