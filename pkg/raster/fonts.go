package raster

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/xiform/xiform/pkg/errors"
)

// fontBank caches one face per pixel size.
type fontBank struct {
	once sync.Once
	// data is the font file to parse. Nil means Go Regular.
	data    []byte
	regular *opentype.Font
	cache   map[int]font.Face
	// failed holds sizes whose face could not be built; they are reported
	// once and served by the fallback afterwards.
	failed map[int]bool
}

func (b *fontBank) load() {
	b.cache = map[int]font.Face{}
	b.failed = map[int]bool{}
	data := b.data
	if data == nil {
		data = goregular.TTF
	}
	f, err := opentype.Parse(data)
	if err != nil {
		errors.Report(&errors.ToolkitError{
			Op:   "raster.fontBank.load",
			Kind: errors.KindSurface,
			Err:  fmt.Errorf("parse font, using fixed face: %w", err),
		})
		return
	}
	b.regular = f
}

// face returns a face for size pixels. It never returns nil. exact is
// false when the fixed fallback face was returned instead.
func (b *fontBank) face(size int) (f font.Face, exact bool) {
	b.once.Do(b.load)
	if face, ok := b.cache[size]; ok {
		return face, true
	}
	if b.regular == nil || size <= 0 || b.failed[size] {
		return basicfont.Face7x13, false
	}
	face, err := opentype.NewFace(b.regular, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		b.failed[size] = true
		errors.Report(&errors.ToolkitError{
			Op:   "raster.fontBank.face",
			Kind: errors.KindSurface,
			Err:  fmt.Errorf("face size %d, using fixed face: %w", size, err),
		})
		return basicfont.Face7x13, false
	}
	b.cache[size] = face
	return face, true
}
