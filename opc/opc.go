// Package opc drives fadecandy style boards over Open Pixel Control.
package opc

import (
	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
	"github.com/kellydunn/go-opc"
	logxi "github.com/mgutz/logxi/v1"

	"github.com/14790897/esp32-ws2812/animation"
)

// Sender is the part of the OPC client a Client needs.
type Sender interface {
	Connect(network string, address string) error
	Send(m *opc.Message) error
}

// Client renders frames onto one OPC channel. The connection is made lazily
// and is remade on the frame after a failed send.
type Client struct {
	server    string
	channel   uint8
	oc        Sender
	connected bool
	logger    logxi.Logger
}

func NewClient(server string, channel uint8, logger logxi.Logger) *Client {
	return NewClientWith(opc.NewClient(), server, channel, logger)
}

func NewClientWith(sender Sender, server string, channel uint8, logger logxi.Logger) *Client {
	if logger == nil {
		logger = logxi.New("opc")
	}
	return &Client{
		server:  server,
		channel: channel,
		oc:      sender,
		logger:  logger,
	}
}

func message(channel uint8, pixels []animation.RGB) *opc.Message {
	m := opc.NewMessage(channel)
	m.SetLength(uint16(len(pixels) * 3))
	for i, c := range pixels {
		m.SetPixelColor(i, c.R, c.G, c.B)
	}
	return m
}

func (c *Client) Render(pixels []animation.RGB) error {
	if !c.connected {
		if errGo := c.oc.Connect("tcp", c.server); errGo != nil {
			return errors.Wrap(errGo).With("url", c.server).With("stack", stack.Trace().TrimRuntime())
		}
		c.connected = true
		c.logger.Info("connected", "url", c.server, "channel", c.channel)
	}

	if errGo := c.oc.Send(message(c.channel, pixels)); errGo != nil {
		c.connected = false
		return errors.Wrap(errGo).With("url", c.server).With("stack", stack.Trace().TrimRuntime())
	}
	return nil
}
