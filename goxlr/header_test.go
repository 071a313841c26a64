package goxlr

import (
	"bytes"
	"errors"
	"testing"
)

func TestHeaderFromWire(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want Header
	}{
		{
			// word 0x00801005 = SetEffectParameters, subcommand 0x005
			name: "set effect parameters",
			buf: []byte{
				0x05, 0x10, 0x80, 0x00, // command word, LE
				0x10, 0x00, // body length 16
				0x2a, 0x00, // command index 42
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
			want: Header{
				Command:      COMMAND_SET_EFFECT_PARAMETERS,
				Subcommand:   0x005,
				BodyLength:   16,
				CommandIndex: 42,
			},
		},
		{
			// word 0x0080b000 = SetMicrophoneType
			name: "set microphone type",
			buf: []byte{
				0x00, 0xb0, 0x80, 0x00,
				0x08, 0x00,
				0x07, 0x00,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
			want: Header{
				Command:      COMMAND_SET_MICROPHONE_TYPE,
				Subcommand:   0x000,
				BodyLength:   8,
				CommandIndex: 7,
			},
		},
		{
			// word 0x00000002 = SystemInfo, firmware version selector
			name: "system info",
			buf: []byte{
				0x02, 0x00, 0x00, 0x00,
				0x00, 0x00,
				0x01, 0x00,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
			want: Header{
				Command:      COMMAND_SYSTEM_INFO,
				Subcommand:   0x002,
				BodyLength:   0,
				CommandIndex: 1,
			},
		},
		{
			// word 0x00800000 = GetButtonStates
			name: "get button states",
			buf: []byte{
				0x00, 0x00, 0x80, 0x00,
				0x00, 0x00,
				0xff, 0xff,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
			want: Header{
				Command:      COMMAND_GET_BUTTON_STATES,
				Subcommand:   0x000,
				BodyLength:   0,
				CommandIndex: 0xffff,
			},
		},
		{
			// word 0x00805002 = SetFader, fader C
			name: "set fader",
			buf: []byte{
				0x02, 0x50, 0x80, 0x00,
				0x04, 0x00,
				0x09, 0x00,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
			want: Header{
				Command:      COMMAND_SET_FADER,
				Subcommand:   uint16(FADER_C),
				BodyLength:   4,
				CommandIndex: 9,
			},
		},
		{
			// word 0x00999abc: unknown class must still decode
			name: "unknown command class",
			buf: []byte{
				0xbc, 0x9a, 0x99, 0x00,
				0x00, 0x00,
				0x03, 0x00,
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			},
			want: Header{
				Command:      CommandClass(0x999),
				Subcommand:   0xabc,
				BodyLength:   0,
				CommandIndex: 3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h Header
			if err := h.FromWire(tt.buf); err != nil {
				t.Fatalf("FromWire failed: %v", err)
			}
			if h != tt.want {
				t.Errorf("FromWire = %+v, want %+v", h, tt.want)
			}
		})
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	headers := []Header{
		{Command: COMMAND_SYSTEM_INFO, Subcommand: 0, BodyLength: 0, CommandIndex: 0},
		{Command: COMMAND_SET_EFFECT_PARAMETERS, Subcommand: 0, BodyLength: 24, CommandIndex: 17},
		{Command: COMMAND_SET_CHANNEL_VOLUME, Subcommand: uint16(CHANNEL_MUSIC), BodyLength: 1, CommandIndex: 300},
		{Command: COMMAND_SET_FADER_DISPLAY_MODE, Subcommand: uint16(FADER_D), BodyLength: 2, CommandIndex: 0xffff},
		{Command: CommandClass(0xfff), Subcommand: 0xfff, BodyLength: 0xffff, CommandIndex: 0xffff},
	}
	for _, want := range headers {
		buf := want.ToWire()
		if len(buf) != HeaderLen {
			t.Fatalf("ToWire length = %d, want %d", len(buf), HeaderLen)
		}
		var got Header
		if err := got.FromWire(buf); err != nil {
			t.Fatalf("FromWire(%+v) failed: %v", want, err)
		}
		if got != want {
			t.Errorf("round trip = %+v, want %+v", got, want)
		}
	}
}

func TestHeaderToWireReservedBytes(t *testing.T) {
	h := Header{Command: COMMAND_GET_MICROPHONE_LEVEL, CommandIndex: 5}
	buf := h.ToWire()
	if !bytes.Equal(buf[8:], make([]byte, 8)) {
		t.Errorf("reserved bytes not zero: % 02x", buf[8:])
	}
}

func TestHeaderTruncated(t *testing.T) {
	for length := 0; length < HeaderLen; length++ {
		var h Header
		err := h.FromWire(make([]byte, length))
		if !errors.Is(err, ErrTruncatedHeader) {
			t.Errorf("FromWire with %d bytes: err = %v, want ErrTruncatedHeader", length, err)
		}
	}
}

func TestCommandIDPacking(t *testing.T) {
	if id := COMMAND_SET_EFFECT_PARAMETERS.CommandID(0); id != 0x00801000 {
		t.Errorf("CommandID = %#08x, want 0x00801000", id)
	}
	if id := COMMAND_SET_CHANNEL_VOLUME.CommandID(uint16(CHANNEL_CHAT)); id != 0x00806005 {
		t.Errorf("CommandID = %#08x, want 0x00806005", id)
	}
	// subcommand must be masked to 12 bits
	if id := COMMAND_SYSTEM_INFO.CommandID(0xf002); id != 0x00000002 {
		t.Errorf("CommandID = %#08x, want 0x00000002", id)
	}
}
