package ui

import "golang.org/x/image/font"

// FaceFont adapts a golang.org/x/image font.Face to Font. It is used
// for layout where no GPU font is loaded, such as tests and headless
// runs.
type FaceFont struct {
	face font.Face
}

// NewFaceFont wraps face.
func NewFaceFont(face font.Face) *FaceFont {
	return &FaceFont{face: face}
}

func (f *FaceFont) Measure(text string) (w, h float32) {
	adv := font.MeasureString(f.face, text)
	return float32(adv.Ceil()), float32(f.face.Metrics().Height.Ceil())
}
