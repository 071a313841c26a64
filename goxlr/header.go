package goxlr

import (
	"encoding/binary"
	"errors"
)

var (
	ErrTruncatedHeader = errors.New("buffer too short for 16 byte command header")
	ErrTruncatedRecord = errors.New("body tail does not form a whole 8 byte record")
)

// HeaderLen is the fixed size of the command header that starts every
// request and response buffer.
const HeaderLen = 16

// Header is the decoded command header.
//
// Wire layout (all little endian):
//
//	bytes 0..3  command word, class in bits 12..23, subcommand in bits 0..11
//	bytes 4..5  body length
//	bytes 6..7  command index (request/response correlation only)
//	bytes 8..15 reserved
//
// BodyLength and CommandIndex are independent fields despite often
// carrying similar looking values in captures.
type Header struct {
	Command      CommandClass
	Subcommand   uint16
	BodyLength   uint16
	CommandIndex uint16
}

func (h *Header) FromWire(buf []byte) error {
	if len(buf) < HeaderLen {
		return ErrTruncatedHeader
	}
	word := binary.LittleEndian.Uint32(buf[0:4])
	h.Command = CommandClass((word >> 12) & 0xfff)
	h.Subcommand = uint16(word & 0xfff)
	h.BodyLength = binary.LittleEndian.Uint16(buf[4:6])
	h.CommandIndex = binary.LittleEndian.Uint16(buf[6:8])
	return nil
}

func (h *Header) ToWire() []byte {
	buf := make([]byte, HeaderLen)
	binary.LittleEndian.PutUint32(buf[0:4], h.Command.CommandID(h.Subcommand))
	binary.LittleEndian.PutUint16(buf[4:6], h.BodyLength)
	binary.LittleEndian.PutUint16(buf[6:8], h.CommandIndex)
	return buf
}
