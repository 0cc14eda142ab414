package colorutils

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex accepts "#1f3864", "1F3864" or the short "#abc" form.
func ParseHex(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return colorful.Color{}, fmt.Errorf("empty color")
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return c, nil
}

// WordHex renders c the way WordprocessingML expects it in w:color: six
// upper-case hex digits, no '#'.
func WordHex(c colorful.Color) string {
	return strings.ToUpper(strings.TrimPrefix(c.Clamped().Hex(), "#"))
}

// RGB8 returns the clamped 8-bit components of c.
func RGB8(c colorful.Color) (uint8, uint8, uint8) {
	return c.Clamped().RGB255()
}
