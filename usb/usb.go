package usb

import (
	"github.com/drichelson/libusb"
	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
	logxi "github.com/mgutz/logxi/v1"

	"github.com/14790897/esp32-ws2812/animation"
)

const (
	teensyVendorID  = 5824
	teensyProductID = 1155

	bulkInterface = 1
	bulkEndpoint  = 3
	bulkTimeoutMs = 20
)

// Packet header understood by the Teensy firmware, followed by RGB triples.
var header = []byte{'*', 238, 2}

// Device is a Teensy that forwards bulk transfers to the strip.
type Device struct {
	deviceHandle *libusb.DeviceHandle
	release      []func() error // handle first, then the libusb context
	data         []byte
	logger       logxi.Logger
}

// releaseAll runs every step and reports the first failure.
func releaseAll(steps ...func() error) (err errors.Error) {
	for _, step := range steps {
		if errGo := step(); errGo != nil && err == nil {
			err = errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
		}
	}
	return err
}

// Open finds the Teensy and claims its bulk transfer interface.
func Open(logger logxi.Logger) (dev *Device, err errors.Error) {
	if logger == nil {
		logger = logxi.New("usb")
	}
	showVersion(logger)

	ctx, errGo := libusb.Init()
	if errGo != nil {
		return nil, errors.Wrap(errGo, "initializing libusb").With("stack", stack.Trace().TrimRuntime())
	}

	_, deviceHandle, errGo := ctx.OpenDeviceWithVendorProduct(teensyVendorID, teensyProductID)
	if errGo != nil {
		releaseAll(ctx.Exit)
		return nil, errors.Wrap(errGo, "opening device").
			With("vendor", teensyVendorID).With("product", teensyProductID).
			With("stack", stack.Trace().TrimRuntime())
	}

	if errGo = deviceHandle.ClaimInterface(bulkInterface); errGo != nil {
		releaseAll(deviceHandle.Close, ctx.Exit)
		return nil, errors.Wrap(errGo, "claiming bulk transfer interface").With("stack", stack.Trace().TrimRuntime())
	}

	logger.Info("teensy ready", "vendor", teensyVendorID, "product", teensyProductID)
	return &Device{
		deviceHandle: deviceHandle,
		release:      []func() error{deviceHandle.Close, ctx.Exit},
		logger:       logger,
	}, nil
}

// encode lays out one frame as a bulk packet, reusing buf when it is big
// enough.
func encode(buf []byte, pixels []animation.RGB) []byte {
	size := len(header) + len(pixels)*3
	if cap(buf) < size {
		buf = make([]byte, size)
	}
	buf = buf[:size]

	copy(buf, header)
	for i, c := range pixels {
		buf[3*i+3] = c.R
		buf[3*i+3+1] = c.G
		buf[3*i+3+2] = c.B
	}
	return buf
}

// Render sends one frame in a single bulk transfer.
func (dev *Device) Render(pixels []animation.RGB) error {
	dev.data = encode(dev.data, pixels)

	addr := libusb.EndpointAddress(byte(bulkEndpoint))
	if _, errGo := dev.deviceHandle.BulkTransfer(addr, dev.data, len(dev.data), bulkTimeoutMs); errGo != nil {
		return errors.Wrap(errGo, "bulk transfer").With("bytes", len(dev.data)).With("stack", stack.Trace().TrimRuntime())
	}
	return nil
}

// Close releases the device handle and the libusb context. It is safe to
// call more than once.
func (dev *Device) Close() error {
	steps := dev.release
	dev.release = nil
	if err := releaseAll(steps...); err != nil {
		return err
	}
	return nil
}

func showVersion(logger logxi.Logger) {
	version := libusb.GetVersion()
	logger.Info("libusb",
		"major", version.Major,
		"minor", version.Minor,
		"micro", version.Micro,
		"nano", version.Nano,
	)
}
