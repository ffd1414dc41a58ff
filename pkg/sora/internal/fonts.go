package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are point sizes for the three text styles.
type FontSizes struct {
	Large  int
	Medium int
	Small  int
}

var DefaultFontSizes = FontSizes{
	Large:  32,
	Medium: 20,
	Small:  14,
}

// Fonts holds the opened font faces.
type Fonts struct {
	Large  *ttf.Font
	Medium *ttf.Font
	Small  *ttf.Font
}

var fonts Fonts

func GetFonts() Fonts {
	return fonts
}

func initFonts(path string, sizes FontSizes) error {
	open := func(size int) (*ttf.Font, error) {
		f, err := ttf.OpenFont(path, size)
		if err != nil {
			return nil, fmt.Errorf("open font %s at %dpt: %w", path, size, err)
		}
		return f, nil
	}

	var err error
	if fonts.Large, err = open(sizes.Large); err != nil {
		return err
	}
	if fonts.Medium, err = open(sizes.Medium); err != nil {
		closeFonts()
		return err
	}
	if fonts.Small, err = open(sizes.Small); err != nil {
		closeFonts()
		return err
	}
	return nil
}

func closeFonts() {
	for _, f := range []*ttf.Font{fonts.Large, fonts.Medium, fonts.Small} {
		if f != nil {
			f.Close()
		}
	}
	fonts = Fonts{}
}
