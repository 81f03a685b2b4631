package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Bubble FontName = "bubble"
	Hint   FontName = "hint"
	Debug  FontName = "debug"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaultFonts registers every face the overlay draws with, using the
// Go regular font.
func LoadDefaultFonts(bubbleSize, hintSize float64) error {
	if err := LoadFontWithSize(Bubble, goregular.TTF, bubbleSize); err != nil {
		return err
	}
	if err := LoadFontWithSize(Hint, goregular.TTF, hintSize); err != nil {
		return err
	}
	return LoadFont(Debug, goregular.TTF)
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// Loaded reports whether a face has been registered under name
func Loaded(name FontName) bool {
	_, ok := fonts[name]
	return ok
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
