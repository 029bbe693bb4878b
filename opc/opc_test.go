package opc

import (
	"fmt"
	"testing"

	"github.com/kellydunn/go-opc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/14790897/esp32-ws2812/animation"
)

type fakeSender struct {
	connects int
	sent     []*opc.Message
	failNext bool
}

func (f *fakeSender) Connect(network string, address string) error {
	f.connects++
	return nil
}

func (f *fakeSender) Send(m *opc.Message) error {
	if f.failNext {
		f.failNext = false
		return fmt.Errorf("broken pipe")
	}
	f.sent = append(f.sent, m)
	return nil
}

func TestRenderSendsPixels(t *testing.T) {
	sender := &fakeSender{}
	c := NewClientWith(sender, "localhost:7890", 0, nil)

	pixels := []animation.RGB{{R: 255}, {G: 255}, {B: 255}}
	require.NoError(t, c.Render(pixels))

	require.Len(t, sender.sent, 1)
	data := sender.sent[0].ByteArray()
	// channel, command, length high, length low
	assert.Equal(t, []byte{0, 0, 0, 9}, data[:4])
	assert.Equal(t, []byte{255, 0, 0, 0, 255, 0, 0, 0, 255}, data[4:])
}

func TestRenderConnectsOnce(t *testing.T) {
	sender := &fakeSender{}
	c := NewClientWith(sender, "localhost:7890", 0, nil)

	for i := 0; i < 5; i++ {
		require.NoError(t, c.Render(make([]animation.RGB, 8)))
	}
	assert.Equal(t, 1, sender.connects)
	assert.Len(t, sender.sent, 5)
}

func TestRenderReconnectsAfterFailure(t *testing.T) {
	sender := &fakeSender{}
	c := NewClientWith(sender, "localhost:7890", 0, nil)

	require.NoError(t, c.Render(make([]animation.RGB, 4)))

	sender.failNext = true
	err := c.Render(make([]animation.RGB, 4))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")

	require.NoError(t, c.Render(make([]animation.RGB, 4)))
	assert.Equal(t, 2, sender.connects)
}
