package goxlr

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/gousb"
	log "github.com/sirupsen/logrus"
)

var (
	errNoDevice          = errors.New("no GoXLR device found")
	ErrDeviceNeedsReboot = errors.New("device command pipe not initialised, reboot the GoXLR and retry")
	ErrIndexMismatch     = errors.New("response command index does not match request")
)

const (
	VID            gousb.ID = 0x1220
	PID_GOXLR_FULL gousb.ID = 0x8fe0
	PID_GOXLR_MINI gousb.ID = 0x8fe4

	// Vendor control requests the command protocol rides on.
	REQUEST_INIT     = 1 // empty OUT, pokes the command pipe
	REQUEST_COMMAND  = 2 // OUT, 16 byte header plus body
	REQUEST_RESPONSE = 3 // IN, device returns 16 byte header plus body

	responseBufferLen = 1040
)

// Tap receives a copy of every raw transfer the transport performs, in
// order. It is how live traffic reaches a Dissector.
type Tap func(dir Direction, buf []byte)

// LocalXLR drives a locally attached GoXLR through its vendor control
// protocol. Not safe for concurrent use; the device serialises commands
// through a single index counter anyway.
type LocalXLR struct {
	UsbCtx      *gousb.Context
	Dev         *gousb.Device
	Config      *gousb.Config
	Iface       *gousb.Interface
	EpInterrupt *gousb.InEndpoint

	commandCount uint16
	timeout      time.Duration
	tap          Tap
}

// NewLocalXLR opens the first matching device. With no pids given, both
// the full sized GoXLR and the Mini are tried.
func NewLocalXLR(vid gousb.ID, pids ...gousb.ID) (res *LocalXLR, err error) {
	if vid == 0 {
		vid = VID
	}
	if len(pids) == 0 {
		pids = []gousb.ID{PID_GOXLR_FULL, PID_GOXLR_MINI}
	}

	res = &LocalXLR{
		UsbCtx:  gousb.NewContext(),
		timeout: 2 * time.Second,
	}

	devs, _ := res.UsbCtx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		if desc.Vendor != vid {
			return false
		}
		for _, pid := range pids {
			if desc.Product == pid {
				return true
			}
		}
		return false
	})
	for i, d := range devs {
		if i == 0 {
			res.Dev = d
			continue
		}
		d.Close() // only drive the first device found
	}
	if res.Dev == nil {
		res.UsbCtx.Close()
		return nil, errNoDevice
	}

	log.Infof("Connected to possible GoXLR device %s", res.Dev.String())

	res.Dev.SetAutoDetach(true)
	if res.Config, err = res.Dev.Config(1); err != nil {
		res.Close()
		return nil, fmt.Errorf("claiming config 1: %w", err)
	}
	if res.Iface, err = res.Config.Interface(0, 0); err != nil {
		res.Close()
		return nil, fmt.Errorf("claiming interface 0: %w", err)
	}
	if res.EpInterrupt, err = res.Iface.InEndpoint(1); err != nil {
		res.Close()
		return nil, fmt.Errorf("opening interrupt endpoint 0x81: %w", err)
	}

	// Poke the command pipe. A stall here means the device was never
	// initialised since boot and wants a different bring-up sequence;
	// prompting for a reboot matches what the vendor app recovers from.
	if _, err = res.Dev.Control(
		gousb.ControlOut|gousb.ControlVendor|gousb.ControlInterface,
		REQUEST_INIT, 0, 0, nil); err != nil {
		res.Close()
		return nil, ErrDeviceNeedsReboot
	}

	// Drain whatever response the device still holds.
	buf := make([]byte, responseBufferLen)
	res.Dev.Control(
		gousb.ControlIn|gousb.ControlVendor|gousb.ControlInterface,
		REQUEST_RESPONSE, 0, 0, buf)

	return res, nil
}

// SetTap installs fn as observer of all raw transfers. Pass nil to
// detach.
func (x *LocalXLR) SetTap(fn Tap) {
	x.tap = fn
}

func (x *LocalXLR) Close() {
	if x.Iface != nil {
		x.Iface.Close()
	}
	if x.Config != nil {
		x.Config.Close()
	}
	if x.Dev != nil {
		x.Dev.Close()
	}
	if x.UsbCtx != nil {
		x.UsbCtx.Close()
	}
}

// Address returns the device's bus address as a conversation endpoint.
func (x *LocalXLR) Address() Endpoint {
	return Endpoint(fmt.Sprintf("%d.%d", x.Dev.Desc.Bus, x.Dev.Desc.Address))
}

func (x *LocalXLR) awaitInterrupt(timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	buf := make([]byte, 6)
	_, err := x.EpInterrupt.ReadContext(ctx, buf)
	return err == nil
}

// ResetCommandIndex zeroes the device side command counter.
func (x *LocalXLR) ResetCommandIndex() error {
	_, err := x.RequestData(COMMAND_SYSTEM_INFO, SYSTEM_INFO_RESET_COMMAND_INDEX, nil)
	return err
}

// RequestData submits one command and returns the response body. Every
// transfer, request and response alike, is passed to the tap with its 16
// byte header still attached, exactly as it went over the wire.
func (x *LocalXLR) RequestData(class CommandClass, subcommand uint16, body []byte) ([]byte, error) {
	isReset := class == COMMAND_SYSTEM_INFO && subcommand == SYSTEM_INFO_RESET_COMMAND_INDEX
	if isReset {
		x.commandCount = 0
	} else {
		if x.commandCount == 0xffff {
			if err := x.ResetCommandIndex(); err != nil {
				return nil, err
			}
		}
		x.commandCount++
	}

	header := Header{
		Command:      class,
		Subcommand:   subcommand,
		BodyLength:   uint16(len(body)),
		CommandIndex: x.commandCount,
	}
	request := append(header.ToWire(), body...)

	if x.tap != nil {
		x.tap(DIRECTION_REQUEST, request)
	}
	if _, err := x.Dev.Control(
		gousb.ControlOut|gousb.ControlVendor|gousb.ControlInterface,
		REQUEST_COMMAND, 0, 0, request); err != nil {
		return nil, fmt.Errorf("submitting %s: %w", class, err)
	}

	time.Sleep(10 * time.Millisecond)
	if !x.awaitInterrupt(x.timeout) {
		log.Debugf("no response interrupt for %s within %s, polling anyway", class, x.timeout)
	}

	buf := make([]byte, responseBufferLen)
	n, err := x.Dev.Control(
		gousb.ControlIn|gousb.ControlVendor|gousb.ControlInterface,
		REQUEST_RESPONSE, 0, 0, buf)
	if err != nil {
		return nil, fmt.Errorf("fetching %s response: %w", class, err)
	}
	response := buf[:n]
	if x.tap != nil {
		x.tap(DIRECTION_RESPONSE, response)
	}

	var rspHeader Header
	if err := rspHeader.FromWire(response); err != nil {
		return nil, err
	}
	rspBody := response[HeaderLen:]
	if int(rspHeader.BodyLength) != len(rspBody) {
		log.Warnf("%s response header states %d body bytes, got %d",
			class, rspHeader.BodyLength, len(rspBody))
	}
	if rspHeader.CommandIndex != header.CommandIndex {
		return rspBody, ErrIndexMismatch
	}
	return rspBody, nil
}
