package pdf

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

// truncate cuenta runas: una descripción con acentos en el borde del corte no
// debe quedar con UTF-8 inválido.
func TestTruncate_NoParteRunas(t *testing.T) {
	corto := "Silla ergonómica"
	assert.Equal(t, corto, truncate(corto, 60))

	largo := strings.Repeat("á", 70)
	out := truncate(largo, 60)
	assert.True(t, utf8.ValidString(out), "el corte no debe partir una runa")
	assert.Equal(t, 60, utf8.RuneCountInString(out))
	assert.True(t, strings.HasSuffix(out, "…"))
}
