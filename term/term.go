// Package term previews the strip in a terminal, one colored block per
// pixel, wrapped to the screen width.
package term

import (
	"bytes"

	"github.com/cnf/structhash"
	"github.com/gdamore/tcell/v2"
	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"

	"github.com/14790897/esp32-ws2812/animation"
)

const pixelRune = '█'

type Preview struct {
	screen tcell.Screen
	last   []byte
	draws  int
}

// Open takes over the controlling terminal.
func Open() (p *Preview, err errors.Error) {
	screen, errGo := tcell.NewScreen()
	if errGo != nil {
		return nil, errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}
	return New(screen)
}

// New wraps an existing screen, for instance a simulation screen.
func New(screen tcell.Screen) (p *Preview, err errors.Error) {
	if errGo := screen.Init(); errGo != nil {
		return nil, errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}
	screen.Clear()
	return &Preview{screen: screen}, nil
}

type frameDigest struct {
	Pixels []animation.RGB
}

// Render draws the frame unless it is identical to the last one drawn.
func (p *Preview) Render(pixels []animation.RGB) error {
	hash := structhash.Md5(frameDigest{Pixels: pixels}, 1)
	if bytes.Equal(p.last, hash) {
		return nil
	}
	p.last = hash

	width, _ := p.screen.Size()
	if width < 1 {
		width = 1
	}

	for i, c := range pixels {
		color := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		style := tcell.StyleDefault.Foreground(color).Background(tcell.ColorBlack)
		p.screen.SetContent(i%width, i/width, pixelRune, nil, style)
	}
	p.screen.Show()
	p.draws++
	return nil
}

// Draws counts the frames that reached the screen.
func (p *Preview) Draws() int {
	return p.draws
}

// WatchKeys calls quit once escape, ctrl-c or q is pressed. The screen
// holds the terminal in raw mode so these never arrive as signals.
func (p *Preview) WatchKeys(quit func()) {
	go func() {
		for {
			switch ev := p.screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					quit()
					return
				}
			}
		}
	}()
}

func (p *Preview) Close() error {
	p.screen.Fini()
	return nil
}
