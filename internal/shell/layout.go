package shell

import "github.com/idilsaglam/checklist/internal/model"

// Layout is the size of the window's child controls.
type Layout struct {
	InnerWidth int // content width inside border and padding
	ListHeight int
	InputWidth int // text input width, excluding prompt and cursor
}

const (
	frameWidth  = 4 // border + horizontal padding
	frameHeight = 5 // border, title row, spacer row, input row
	promptWidth = 2
)

// LayoutFor computes the child layout from the window bounds.
func LayoutFor(g model.Geometry) Layout {
	g = g.EnforceMinimum()
	inner := g.Width - frameWidth
	return Layout{
		InnerWidth: inner,
		ListHeight: g.Height - frameHeight,
		InputWidth: inner - promptWidth - 1, // cursor cell
	}
}
