package fonts

import (
	"fmt"
	"log"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Debug FontName = "debug"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults loads the embedded Go Regular face under Debug.
func LoadDefaults(size float64) {
	if _, ok := fonts[Debug]; ok {
		return
	}
	LoadFontWithSize(Debug, goregular.TTF, size)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		log.Printf("Warning: Could not parse font %s: %v", name, err)
		return
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
