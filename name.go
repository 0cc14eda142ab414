package procuracao

import "strings"

// FallbackClientName is used when no name label is present in the block.
const FallbackClientName = "Cliente Autor"

var nameLabels = []string{
	"nome completo",
	"nome",
	"cliente",
	"autor",
}

// ExtractClientName returns the first non-blank value among the known name
// labels, in priority order. It always returns a non-empty string.
func ExtractClientName(fields *Fields) string {
	if fields == nil {
		return FallbackClientName
	}
	for _, label := range nameLabels {
		if v, ok := fields.Get(label); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return FallbackClientName
}
