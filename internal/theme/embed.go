package theme

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed defaults/*.theme
var embedded embed.FS

// Embedded lists the names of the built in themes.
func Embedded() []string {
	entries, _ := fs.ReadDir(embedded, "defaults")
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".theme"))
	}
	sort.Strings(names)
	return names
}
