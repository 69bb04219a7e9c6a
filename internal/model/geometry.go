package model

// Geometry is the window position and size, in terminal cells.
type Geometry struct {
	Left, Top     int
	Width, Height int
}

// Screen is the working area the window is placed in.
type Screen struct {
	Width, Height int
}

// Minimum and default window sizes.
const (
	MinWidth      = 24
	MinHeight     = 8
	DefaultWidth  = 40
	DefaultHeight = 12
)

// EnforceMinimum raises width and height to the minimum window size.
func (g Geometry) EnforceMinimum() Geometry {
	if g.Width < MinWidth {
		g.Width = MinWidth
	}
	if g.Height < MinHeight {
		g.Height = MinHeight
	}
	return g
}

// Centered returns a default-sized window centred on the screen.
func Centered(s Screen) Geometry {
	g := Geometry{Width: DefaultWidth, Height: DefaultHeight}
	g.Left = max(0, (s.Width-g.Width)/2)
	g.Top = max(0, (s.Height-g.Height)/2)
	return g
}

// Clamp pulls a restored window back into view: the top-left corner is never
// negative, and a window whose top is within bottomMargin of the bottom of
// the working area is moved up to 90% of the working-area height.
func (g Geometry) Clamp(s Screen, bottomMargin int) Geometry {
	if g.Left < 0 {
		g.Left = 0
	}
	if g.Top < 0 {
		g.Top = 0
	}
	if g.Top+bottomMargin > s.Height {
		g.Top = int(0.9 * float64(s.Height))
	}
	return g
}
