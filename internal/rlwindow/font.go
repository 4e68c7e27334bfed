package rlwindow

import (
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/deluxeanim/internal/logging"
)

const defaultFontSize = 10

// Font is a TTF font uploaded to the GPU. It implements ui.Font.
type Font struct {
	font    rl.Font
	size    float32
	spacing float32
}

// LoadFont loads path at size pixels. If that fails fallback is tried
// once; if both fail the error wraps ErrFontLoad. Must be called after
// Open.
func LoadFont(path, fallback string, size int) (*Font, error) {
	f, err := loadFont(path, size)
	if err == nil {
		return f, nil
	}
	logging.Logger().Warn("font unavailable, trying fallback", "path", path, "fallback", fallback, "err", err)

	f, ferr := loadFont(fallback, size)
	if ferr != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontLoad, errors.Join(err, ferr))
	}
	return f, nil
}

func loadFont(path string, size int) (*Font, error) {
	if path == "" {
		return nil, errors.New("no font path")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	// raylib quietly substitutes its default font on failure, so compare
	// texture ids to tell the two apart.
	font := rl.LoadFontEx(path, int32(size), nil)
	if font.Texture.ID == 0 || font.Texture.ID == rl.GetFontDefault().Texture.ID {
		return nil, fmt.Errorf("%s: not a loadable font", path)
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	logging.Logger().Debug("font loaded", "path", path, "size", size)
	return &Font{font: font, size: float32(size), spacing: 1}, nil
}

func (f *Font) Measure(text string) (w, h float32) {
	v := rl.MeasureTextEx(f.font, text, f.size, f.spacing)
	return v.X, v.Y
}

// Unload frees the font texture.
func (f *Font) Unload() {
	rl.UnloadFont(f.font)
}
