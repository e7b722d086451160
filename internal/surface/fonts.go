package surface

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Families lists the font family names understood by the raster surface.
var Families = []string{"sans", "mono", "bold", "italic"}

var familyTTF = map[string][]byte{
	"sans":   goregular.TTF,
	"mono":   gomono.TTF,
	"bold":   gobold.TTF,
	"italic": goitalic.TTF,
}

type faceKey struct {
	family string
	size   float64
}

// faceCache parses each family once and keeps one face per size.
type faceCache struct {
	mu    sync.Mutex
	fonts map[string]*opentype.Font
	faces map[faceKey]font.Face
}

var faces = &faceCache{
	fonts: map[string]*opentype.Font{},
	faces: map[faceKey]font.Face{},
}

func normalizeFamily(family string) string {
	f := strings.ToLower(strings.TrimSpace(family))
	switch f {
	case "", "sans-serif", "serif", "regular":
		return "sans"
	case "monospace", "courier":
		return "mono"
	}
	if _, ok := familyTTF[f]; ok {
		return f
	}
	return "sans"
}

// Face returns a face for the family at the given pixel size. Unknown families
// fall back to sans.
func Face(family string, size float64) (font.Face, error) {
	return faces.face(family, size)
}

func (c *faceCache) face(family string, size float64) (font.Face, error) {
	if size <= 0 {
		size = 1
	}
	key := faceKey{normalizeFamily(family), size}
	c.mu.Lock()
	defer c.mu.Unlock()
	if f, ok := c.faces[key]; ok {
		return f, nil
	}
	ft, ok := c.fonts[key.family]
	if !ok {
		var err error
		ft, err = opentype.Parse(familyTTF[key.family])
		if err != nil {
			return nil, fmt.Errorf("parse font %s: %w", key.family, err)
		}
		c.fonts[key.family] = ft
	}
	f, err := opentype.NewFace(ft, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("face %s %.1f: %w", key.family, size, err)
	}
	c.faces[key] = f
	return f, nil
}
