package goxlr

import (
	"fmt"
	"strings"
	"sync"
)

// Direction of a control transfer. The buffers themselves carry no
// direction marker, so the capture layer has to supply it.
type Direction byte

const (
	DIRECTION_REQUEST  Direction = 0x00 // host to device
	DIRECTION_RESPONSE Direction = 0x01 // device to host
)

func (d Direction) String() string {
	switch d {
	case DIRECTION_REQUEST:
		return "request"
	case DIRECTION_RESPONSE:
		return "response"
	}
	return fmt.Sprintf("Unknown direction %02x", byte(d))
}

// Endpoint is an opaque identifier of one side of a conversation, e.g. a
// bus.device.endpoint string. Only its total (lexical) order matters.
type Endpoint string

// ConversationKey identifies one logical request/response lane: the
// unordered endpoint pair plus the header's command index.
type ConversationKey struct {
	First  Endpoint
	Second Endpoint
	Index  uint16
}

// NewConversationKey normalizes the endpoint pair (smaller first) so a
// request and its response, which swap source and destination, map to the
// same key.
func NewConversationKey(a, b Endpoint, index uint16) ConversationKey {
	if b < a {
		a, b = b, a
	}
	return ConversationKey{First: a, Second: b, Index: index}
}

// conversation holds the two per-key slots: the latest unmatched request
// frame and the latest unmatched response frame.
type conversation struct {
	request     uint64
	response    uint64
	hasRequest  bool
	hasResponse bool
}

// DecodedCommand is the result of dissecting one buffer.
type DecodedCommand struct {
	Header
	Direction Direction
	Frame     uint64

	// Counterpart is the frame id of the most recent prior transfer in
	// the opposite direction on the same conversation key, when one was
	// pending.
	Counterpart    uint64
	HasCounterpart bool

	// Records holds the decoded body for classes with a record layout;
	// Trailing carries a short tail that did not form a whole record.
	// Raw holds the body verbatim for every other class.
	Records  []BodyRecord
	Trailing []byte
	Raw      []byte
}

func (c *DecodedCommand) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "frame %d %s: %s, subcommand %#03x, body length %d, command index %d",
		c.Frame, c.Direction, c.Command, c.Subcommand, c.BodyLength, c.CommandIndex)
	if c.HasCounterpart {
		switch c.Direction {
		case DIRECTION_REQUEST:
			fmt.Fprintf(&b, "\n\tresponse packet: #%d", c.Counterpart)
		case DIRECTION_RESPONSE:
			fmt.Fprintf(&b, "\n\trequest packet: #%d", c.Counterpart)
		}
	}
	for _, rec := range c.Records {
		fmt.Fprintf(&b, "\n\t%s", rec)
	}
	if len(c.Trailing) > 0 {
		fmt.Fprintf(&b, "\n\ttruncated record tail: % 02x", c.Trailing)
	}
	if len(c.Raw) > 0 {
		fmt.Fprintf(&b, "\n\tbody: % 02x", c.Raw)
	}
	return b.String()
}

// Dissector decodes protocol buffers and tracks conversation state across
// them. One Dissector covers one analysis session; buffers must be fed in
// capture order, since correlation pairs a transfer with the most recent
// prior counterpart.
//
// The conversation table is never evicted. It grows with the number of
// distinct (endpoint pair, command index) keys seen, so memory is bounded
// by capture length, not by time.
type Dissector struct {
	mu            sync.Mutex
	conversations map[ConversationKey]*conversation
}

func NewDissector() *Dissector {
	return &Dissector{
		conversations: make(map[ConversationKey]*conversation),
	}
}

// Conversations returns the number of tracked conversation keys.
func (d *Dissector) Conversations() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.conversations)
}

// observe records frame under key and returns the pending counterpart
// frame, if any. The read happens before the overwrite, so a pending
// request is linked at most once: the response that answers it consumes
// the slot, and a later response with no request in between pairs with
// nothing. Unanswered requests on the same key are silently superseded,
// only the most recent one gets linked.
func (d *Dissector) observe(key ConversationKey, dir Direction, frame uint64) (counterpart uint64, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	conv := d.conversations[key]
	if conv == nil {
		conv = &conversation{}
		d.conversations[key] = conv
	}

	switch dir {
	case DIRECTION_REQUEST:
		counterpart, ok = conv.response, conv.hasResponse
		conv.request, conv.hasRequest = frame, true
	case DIRECTION_RESPONSE:
		counterpart, ok = conv.request, conv.hasRequest
		conv.hasRequest = false
		conv.response, conv.hasResponse = frame, true
	}
	return counterpart, ok
}

// Dissect decodes one control transfer buffer.
//
// A buffer shorter than the 16 byte header fails with ErrTruncatedHeader
// and yields no result. A structured body with a short tail is a non
// fatal anomaly: the decoded command is returned together with an error
// wrapping ErrTruncatedRecord, whole records and header intact.
func (d *Dissector) Dissect(buf []byte, dir Direction, frame uint64, src, dst Endpoint) (*DecodedCommand, error) {
	cmd := &DecodedCommand{
		Direction: dir,
		Frame:     frame,
	}
	if err := cmd.Header.FromWire(buf); err != nil {
		return nil, err
	}

	var recordErr error
	if len(buf) > HeaderLen {
		body := buf[HeaderLen:]
		if kind := cmd.Command.RecordKind(); kind != RECORD_KIND_NONE {
			cmd.Records, cmd.Trailing, recordErr = decodeRecords(kind, body)
		} else {
			cmd.Raw = body
		}
	}

	key := NewConversationKey(src, dst, cmd.CommandIndex)
	cmd.Counterpart, cmd.HasCounterpart = d.observe(key, dir, frame)

	return cmd, recordErr
}
