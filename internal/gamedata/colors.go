package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseColor resolves a prefab colour. Accepted forms are "#rrggbb",
// "rrggbb" and the W3C colour names tcell knows, such as "olive".
func ParseColor(s string) (tcell.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if len(name) == 6 && !strings.HasPrefix(name, "#") {
		if _, err := strconv.ParseUint(name, 16, 32); err == nil {
			name = "#" + name
		}
	}

	color := tcell.GetColor(name)
	if color == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
	}
	return color, nil
}
