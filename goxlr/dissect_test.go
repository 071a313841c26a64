package goxlr

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const (
	epHost   Endpoint = "host"
	epDevice Endpoint = "1.9"
)

// frame builds a wire buffer from header fields and an optional body.
func frame(class CommandClass, sub uint16, index uint16, body []byte) []byte {
	h := Header{
		Command:      class,
		Subcommand:   sub,
		BodyLength:   uint16(len(body)),
		CommandIndex: index,
	}
	return append(h.ToWire(), body...)
}

func TestDissectTruncatedHeader(t *testing.T) {
	d := NewDissector()
	cmd, err := d.Dissect([]byte{0x05, 0x10, 0x80}, DIRECTION_REQUEST, 1, epHost, epDevice)
	if !errors.Is(err, ErrTruncatedHeader) {
		t.Fatalf("err = %v, want ErrTruncatedHeader", err)
	}
	if cmd != nil {
		t.Errorf("got a command for a truncated header: %+v", cmd)
	}
	if n := d.Conversations(); n != 0 {
		t.Errorf("truncated buffer created %d conversation(s)", n)
	}
}

func TestDissectEffectBody(t *testing.T) {
	body := []byte{
		0x5a, 0x00, 0x00, 0x00, 0x14, 0x00, 0x00, 0x00, // HardTuneAmount = 20
		0x60, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff, // GenderAmount = -1
	}
	d := NewDissector()
	cmd, err := d.Dissect(frame(COMMAND_SET_EFFECT_PARAMETERS, 0, 3, body),
		DIRECTION_REQUEST, 1, epHost, epDevice)
	if err != nil {
		t.Fatalf("Dissect failed: %v", err)
	}
	if cmd.Command != COMMAND_SET_EFFECT_PARAMETERS || cmd.CommandIndex != 3 {
		t.Fatalf("header = %+v", cmd.Header)
	}
	if len(cmd.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(cmd.Records))
	}
	if cmd.Records[0].Int != 20 || cmd.Records[1].Int != -1 {
		t.Errorf("values = %d, %d; want 20, -1", cmd.Records[0].Int, cmd.Records[1].Int)
	}
	if cmd.Raw != nil {
		t.Errorf("structured body must not be kept raw: % 02x", cmd.Raw)
	}
}

func TestDissectMicParamBody(t *testing.T) {
	body := []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x3f}
	d := NewDissector()
	cmd, err := d.Dissect(frame(COMMAND_SET_MICROPHONE_TYPE, 0, 8, body),
		DIRECTION_REQUEST, 1, epHost, epDevice)
	if err != nil {
		t.Fatalf("Dissect failed: %v", err)
	}
	if len(cmd.Records) != 1 || cmd.Records[0].Float != 1.0 {
		t.Fatalf("records = %+v, want one MicType = 1.0", cmd.Records)
	}
}

func TestDissectTruncatedRecordTail(t *testing.T) {
	body := []byte{
		0x11, 0x00, 0x00, 0x00, 0x19, 0x00, 0x00, 0x00,
		0xde, 0xad,
	}
	d := NewDissector()
	cmd, err := d.Dissect(frame(COMMAND_SET_EFFECT_PARAMETERS, 0, 4, body),
		DIRECTION_REQUEST, 1, epHost, epDevice)
	if !errors.Is(err, ErrTruncatedRecord) {
		t.Fatalf("err = %v, want ErrTruncatedRecord", err)
	}
	if cmd == nil {
		t.Fatal("truncated tail must still yield the decoded command")
	}
	if len(cmd.Records) != 1 {
		t.Errorf("got %d whole records, want 1", len(cmd.Records))
	}
	if !bytes.Equal(cmd.Trailing, []byte{0xde, 0xad}) {
		t.Errorf("trailing = % 02x, want de ad", cmd.Trailing)
	}
}

func TestDissectOpaqueBody(t *testing.T) {
	body := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	d := NewDissector()
	cmd, err := d.Dissect(frame(COMMAND_SET_COLOUR_MAP, 0, 5, body),
		DIRECTION_REQUEST, 1, epHost, epDevice)
	if err != nil {
		t.Fatalf("Dissect failed: %v", err)
	}
	if !bytes.Equal(cmd.Raw, body) {
		t.Errorf("Raw = % 02x, want the body verbatim", cmd.Raw)
	}
	if cmd.Records != nil {
		t.Errorf("opaque class decoded records: %+v", cmd.Records)
	}
}

func TestDissectUnknownClass(t *testing.T) {
	body := []byte{0xca, 0xfe}
	d := NewDissector()
	cmd, err := d.Dissect(frame(CommandClass(0x999), 0x001, 6, body),
		DIRECTION_RESPONSE, 1, epDevice, epHost)
	if err != nil {
		t.Fatalf("Dissect failed: %v", err)
	}
	if !strings.HasPrefix(cmd.Command.String(), "Unknown") {
		t.Errorf("Command.String() = %q, want an Unknown placeholder", cmd.Command)
	}
	if !bytes.Equal(cmd.Raw, body) {
		t.Errorf("Raw = % 02x, want the body verbatim", cmd.Raw)
	}
}

// A response links to the pending request on its conversation and
// consumes it; a second response with no request in between links to
// nothing. A newer request on the same key supersedes the older one.
func TestDissectCorrelation(t *testing.T) {
	d := NewDissector()
	buf := frame(COMMAND_GET_BUTTON_STATES, 0, 21, nil)

	r1, err := d.Dissect(buf, DIRECTION_REQUEST, 10, epHost, epDevice)
	if err != nil {
		t.Fatalf("Dissect failed: %v", err)
	}
	if r1.HasCounterpart {
		t.Errorf("first request linked to frame %d", r1.Counterpart)
	}

	r2, err := d.Dissect(buf, DIRECTION_REQUEST, 11, epHost, epDevice)
	if err != nil {
		t.Fatalf("Dissect failed: %v", err)
	}
	if r2.HasCounterpart {
		t.Errorf("superseding request linked to frame %d", r2.Counterpart)
	}

	s1, err := d.Dissect(buf, DIRECTION_RESPONSE, 12, epDevice, epHost)
	if err != nil {
		t.Fatalf("Dissect failed: %v", err)
	}
	if !s1.HasCounterpart || s1.Counterpart != 11 {
		t.Errorf("response counterpart = %d (%v), want frame 11",
			s1.Counterpart, s1.HasCounterpart)
	}

	s2, err := d.Dissect(buf, DIRECTION_RESPONSE, 13, epDevice, epHost)
	if err != nil {
		t.Fatalf("Dissect failed: %v", err)
	}
	if s2.HasCounterpart {
		t.Errorf("second response linked to frame %d, want none", s2.Counterpart)
	}

	if n := d.Conversations(); n != 1 {
		t.Errorf("tracked %d conversations, want 1", n)
	}
}

func TestDissectIndexSeparatesConversations(t *testing.T) {
	d := NewDissector()

	if _, err := d.Dissect(frame(COMMAND_GET_HARDWARE_INFO, 0, 1, nil),
		DIRECTION_REQUEST, 1, epHost, epDevice); err != nil {
		t.Fatalf("Dissect failed: %v", err)
	}
	if _, err := d.Dissect(frame(COMMAND_GET_HARDWARE_INFO, 1, 2, nil),
		DIRECTION_REQUEST, 2, epHost, epDevice); err != nil {
		t.Fatalf("Dissect failed: %v", err)
	}

	// response index 2 must pair with the second request only
	s, err := d.Dissect(frame(COMMAND_GET_HARDWARE_INFO, 1, 2, nil),
		DIRECTION_RESPONSE, 3, epDevice, epHost)
	if err != nil {
		t.Fatalf("Dissect failed: %v", err)
	}
	if !s.HasCounterpart || s.Counterpart != 2 {
		t.Errorf("counterpart = %d (%v), want frame 2", s.Counterpart, s.HasCounterpart)
	}
	if n := d.Conversations(); n != 2 {
		t.Errorf("tracked %d conversations, want 2", n)
	}
}

func TestConversationKeyOrderIndependent(t *testing.T) {
	a := NewConversationKey(epHost, epDevice, 7)
	b := NewConversationKey(epDevice, epHost, 7)
	if a != b {
		t.Errorf("keys differ: %+v vs %+v", a, b)
	}
	c := NewConversationKey(epHost, epDevice, 8)
	if a == c {
		t.Errorf("distinct indexes collided: %+v", a)
	}
}

func TestDecodedCommandStringCrossLink(t *testing.T) {
	d := NewDissector()
	buf := frame(COMMAND_GET_MICROPHONE_LEVEL, 0, 30, nil)

	if _, err := d.Dissect(buf, DIRECTION_REQUEST, 40, epHost, epDevice); err != nil {
		t.Fatalf("Dissect failed: %v", err)
	}
	s, err := d.Dissect(buf, DIRECTION_RESPONSE, 41, epDevice, epHost)
	if err != nil {
		t.Fatalf("Dissect failed: %v", err)
	}
	if out := s.String(); !strings.Contains(out, "request packet: #40") {
		t.Errorf("String() = %q, missing request cross link", out)
	}
}
