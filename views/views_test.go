package views

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	tpl := Templates()
	for _, name := range []string{"consulta.html", "detalhe.html", "cabecalho", "rodape"} {
		assert.NotNil(t, tpl.Lookup(name), name)
	}
}

func TestFuncs(t *testing.T) {
	tpl, err := Templates().New("t").Parse(`{{cpf "12345678901"}}|{{sei "01234567890123400"}}|{{dataBR "2024-09-15"}}`)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tpl.Execute(&buf, nil))
	assert.Equal(t, "123.456.789-01|01234.567890/1234-00|15/09/2024", buf.String())
}
