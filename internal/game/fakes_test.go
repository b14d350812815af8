package game

import (
	"image"
	"image/color"

	"chosenoffset.com/wallcaster/internal/render"
)

func init() {
	render.NewGeoM = func() render.GeoM {
		return &fakeGeoM{}
	}
}

type fakeGeoM struct {
	tx, ty float64
}

func (g *fakeGeoM) Translate(tx, ty float64) {
	g.tx += tx
	g.ty += ty
}

type fakeImage struct {
	w, h     int
	fills    int
	clears   int
	draws    []*render.DrawImageOptions
	disposed bool
}

func (i *fakeImage) Bounds() image.Rectangle   { return image.Rect(0, 0, i.w, i.h) }
func (i *fakeImage) Size() (int, int)          { return i.w, i.h }
func (i *fakeImage) Fill(clr color.Color)      { i.fills++ }
func (i *fakeImage) Clear()                    { i.clears++ }
func (i *fakeImage) Dispose()                  { i.disposed = true }
func (i *fakeImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	i.draws = append(i.draws, opts)
}

type fakeRenderer struct {
	images  []*fakeImage
	lines   int
	circles int
	rects   int
	texts   []string
}

func (r *fakeRenderer) NewImage(width, height int) render.Image {
	img := &fakeImage{w: width, h: height}
	r.images = append(r.images, img)
	return img
}

func (r *fakeRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.circles++
}

func (r *fakeRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	r.lines++
}

func (r *fakeRenderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	r.rects++
}

func (r *fakeRenderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.texts = append(r.texts, text)
}

func (r *fakeRenderer) MeasureText(text string, scale float64) (int, int) {
	return len(text) * 6, 16
}

// fakeInput reports keys as held while they are in pressed, and as just
// pressed while they are in just. Buttons in buttons are held down.
type fakeInput struct {
	pressed map[render.Key]bool
	just    map[render.Key]bool
	buttons map[render.MouseButton]bool
	cursorX int
	cursorY int
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		pressed: make(map[render.Key]bool),
		just:    make(map[render.Key]bool),
		buttons: make(map[render.MouseButton]bool),
	}
}

func (f *fakeInput) IsKeyPressed(key render.Key) bool     { return f.pressed[key] }
func (f *fakeInput) IsKeyJustPressed(key render.Key) bool { return f.just[key] }
func (f *fakeInput) GetCursorPosition() (int, int)        { return f.cursorX, f.cursorY }
func (f *fakeInput) IsMouseButtonPressed(button render.MouseButton) bool {
	return f.buttons[button]
}

func (f *fakeInput) moveCursor(x, y int) {
	f.cursorX, f.cursorY = x, y
}

func (f *fakeInput) release() {
	clear(f.pressed)
	clear(f.just)
	clear(f.buttons)
}
