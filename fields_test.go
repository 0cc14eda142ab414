package procuracao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFields(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  []Field
	}{
		{
			name:  "empty block",
			block: "",
			want:  []Field{},
		},
		{
			name:  "no colon lines",
			block: "apenas texto\n\n   \noutra linha",
			want:  []Field{},
		},
		{
			name:  "labels lowercased and trimmed",
			block: "  Nome Completo :   Maria da Silva  \nNACIONALIDADE: Brasileira",
			want: []Field{
				{Label: "nome completo", Value: "Maria da Silva"},
				{Label: "nacionalidade", Value: "Brasileira"},
			},
		},
		{
			name:  "splits on first colon only",
			block: "Nome: A: B",
			want:  []Field{{Label: "nome", Value: "A: B"}},
		},
		{
			name:  "windows line endings",
			block: "Nome: Ana\r\nCPF: 123\r\n",
			want: []Field{
				{Label: "nome", Value: "Ana"},
				{Label: "cpf", Value: "123"},
			},
		},
		{
			name:  "duplicate keeps first position and last value",
			block: "Nome: Ana\nCPF: 1\nnome: Beatriz",
			want: []Field{
				{Label: "nome", Value: "Beatriz"},
				{Label: "cpf", Value: "1"},
			},
		},
		{
			name:  "empty value kept",
			block: "Profissão:",
			want:  []Field{{Label: "profissão", Value: ""}},
		},
		{
			name:  "empty label kept",
			block: ": sem rótulo",
			want:  []Field{{Label: "", Value: "sem rótulo"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFields(tt.block)
			assert.Equal(t, tt.want, got.Entries())
			assert.Equal(t, len(tt.want), got.Len())
		})
	}
}

func TestParseFieldsCaseInsensitiveLabels(t *testing.T) {
	upper := ParseFields("NOME: Ana")
	lower := ParseFields("nome: Ana")

	assert.Equal(t, lower.Entries(), upper.Entries())
	v, ok := upper.Get("nome")
	assert.True(t, ok)
	assert.Equal(t, "Ana", v)
}

func TestFieldsKeysIsACopy(t *testing.T) {
	f := ParseFields("a: 1\nb: 2")
	keys := f.Keys()
	keys[0] = "z"
	assert.Equal(t, []string{"a", "b"}, f.Keys())
}
