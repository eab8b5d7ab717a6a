package render

import "github.com/gdamore/tcell/v2"

// Cell is one terminal cell of the back buffer
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
}

// Buffer is a back buffer flushed to the screen once per frame
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize reallocates only when the cell count grows
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	n := width * height
	if cap(b.cells) < n {
		b.cells = make([]Cell, n)
	}
	b.cells = b.cells[:n]
	b.width, b.height = width, height
}

func (b *Buffer) Size() (int, int) { return b.width, b.height }

// Clear fills every cell with a blank on bg
func (b *Buffer) Clear(bg RGB) {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Fg: bg, Bg: bg}
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// Get returns the cell at x, y and whether it is in bounds
func (b *Buffer) Get(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// SetRune writes glyph and foreground, keeping the background
func (b *Buffer) SetRune(x, y int, r rune, fg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Fg = fg
}

// SetBg composites a background color
func (b *Buffer) SetBg(x, y int, bg RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Bg = blend(c.Bg, bg, mode, alpha)
}

// DrawText writes s left to right from x, clipped at the right edge, returns the next column
func (b *Buffer) DrawText(x, y int, s string, fg, bg RGB) int {
	for _, r := range s {
		if b.inBounds(x, y) {
			b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg}
		}
		x++
	}
	return x
}

// FillRow paints a full row background
func (b *Buffer) FillRow(y int, bg RGB) {
	for x := 0; x < b.width; x++ {
		if b.inBounds(x, y) {
			b.cells[y*b.width+x] = Cell{Rune: ' ', Fg: bg, Bg: bg}
		}
	}
}

// Darken scales every color toward black by t in [0, 1]
func (b *Buffer) Darken(t float64) {
	if t <= 0 {
		return
	}
	f := 1 - min(t, 1)
	for i := range b.cells {
		b.cells[i].Fg = b.cells[i].Fg.Scale(f)
		b.cells[i].Bg = b.cells[i].Bg.Scale(f)
	}
}

// Flush copies the buffer to the screen and shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			style := tcell.StyleDefault.Foreground(c.Fg.Color()).Background(c.Bg.Color()).Attributes(c.Attrs)
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
	screen.Show()
}
