package goxlr

import "fmt"

// Identifiers below feed the subcommand field of outgoing commands. The
// dissector never needs them to decode traffic; they exist so the typed
// device operations can be written against names instead of raw bytes.

type ChannelName byte

const (
	CHANNEL_MIC         ChannelName = 0x00
	CHANNEL_LINE_IN     ChannelName = 0x01
	CHANNEL_CONSOLE     ChannelName = 0x02
	CHANNEL_SYSTEM      ChannelName = 0x03
	CHANNEL_GAME        ChannelName = 0x04
	CHANNEL_CHAT        ChannelName = 0x05
	CHANNEL_SAMPLE      ChannelName = 0x06
	CHANNEL_MUSIC       ChannelName = 0x07
	CHANNEL_HEADPHONES  ChannelName = 0x08
	CHANNEL_MIC_MONITOR ChannelName = 0x09
	CHANNEL_LINE_OUT    ChannelName = 0x0a
)

func (c ChannelName) String() string {
	switch c {
	case CHANNEL_MIC:
		return "Mic"
	case CHANNEL_LINE_IN:
		return "LineIn"
	case CHANNEL_CONSOLE:
		return "Console"
	case CHANNEL_SYSTEM:
		return "System"
	case CHANNEL_GAME:
		return "Game"
	case CHANNEL_CHAT:
		return "Chat"
	case CHANNEL_SAMPLE:
		return "Sample"
	case CHANNEL_MUSIC:
		return "Music"
	case CHANNEL_HEADPHONES:
		return "Headphones"
	case CHANNEL_MIC_MONITOR:
		return "MicMonitor"
	case CHANNEL_LINE_OUT:
		return "LineOut"
	}
	return fmt.Sprintf("Unknown channel %02x", byte(c))
}

type FaderName byte

const (
	FADER_A FaderName = 0x00
	FADER_B FaderName = 0x01
	FADER_C FaderName = 0x02
	FADER_D FaderName = 0x03
)

func (f FaderName) String() string {
	switch f {
	case FADER_A:
		return "A"
	case FADER_B:
		return "B"
	case FADER_C:
		return "C"
	case FADER_D:
		return "D"
	}
	return fmt.Sprintf("Unknown fader %02x", byte(f))
}

type EncoderName byte

const (
	ENCODER_PITCH  EncoderName = 0x00
	ENCODER_GENDER EncoderName = 0x01
	ENCODER_REVERB EncoderName = 0x02
	ENCODER_ECHO   EncoderName = 0x03
)

func (e EncoderName) String() string {
	switch e {
	case ENCODER_PITCH:
		return "Pitch"
	case ENCODER_GENDER:
		return "Gender"
	case ENCODER_REVERB:
		return "Reverb"
	case ENCODER_ECHO:
		return "Echo"
	}
	return fmt.Sprintf("Unknown encoder %02x", byte(e))
}

type ChannelState byte

const (
	CHANNEL_STATE_UNMUTED ChannelState = 0x00
	CHANNEL_STATE_MUTED   ChannelState = 0x01
)

func (s ChannelState) String() string {
	switch s {
	case CHANNEL_STATE_UNMUTED:
		return "Unmuted"
	case CHANNEL_STATE_MUTED:
		return "Muted"
	}
	return fmt.Sprintf("Unknown channel state %02x", byte(s))
}

type MicrophoneType byte

const (
	MIC_TYPE_DYNAMIC   MicrophoneType = 0x00 // XLR
	MIC_TYPE_CONDENSER MicrophoneType = 0x01 // XLR with phantom power
	MIC_TYPE_JACK      MicrophoneType = 0x02 // 3.5mm
)

func (m MicrophoneType) String() string {
	switch m {
	case MIC_TYPE_DYNAMIC:
		return "Dynamic"
	case MIC_TYPE_CONDENSER:
		return "Condenser"
	case MIC_TYPE_JACK:
		return "Jack"
	}
	return fmt.Sprintf("Unknown microphone type %02x", byte(m))
}

func (m MicrophoneType) HasPhantomPower() bool {
	return m == MIC_TYPE_CONDENSER
}

// GainParam returns the mic param key carrying the gain for this
// microphone type.
func (m MicrophoneType) GainParam() MicParamKey {
	switch m {
	case MIC_TYPE_CONDENSER:
		return MIC_PARAM_CONDENSER_GAIN
	case MIC_TYPE_JACK:
		return MIC_PARAM_JACK_GAIN
	}
	return MIC_PARAM_DYNAMIC_GAIN
}

// RoutingInput selects the source lane of a SetRouting command. Left and
// right of a stereo source are routed separately; right is always
// left + 1.
type RoutingInput byte

const (
	ROUTING_INPUT_MIC_LEFT      RoutingInput = 0x02
	ROUTING_INPUT_MIC_RIGHT     RoutingInput = 0x03
	ROUTING_INPUT_CHAT_LEFT     RoutingInput = 0x05
	ROUTING_INPUT_CHAT_RIGHT    RoutingInput = 0x06
	ROUTING_INPUT_MUSIC_LEFT    RoutingInput = 0x08
	ROUTING_INPUT_MUSIC_RIGHT   RoutingInput = 0x09
	ROUTING_INPUT_GAME_LEFT     RoutingInput = 0x0b
	ROUTING_INPUT_GAME_RIGHT    RoutingInput = 0x0c
	ROUTING_INPUT_CONSOLE_LEFT  RoutingInput = 0x0e
	ROUTING_INPUT_CONSOLE_RIGHT RoutingInput = 0x0f
	ROUTING_INPUT_LINE_IN_LEFT  RoutingInput = 0x11
	ROUTING_INPUT_LINE_IN_RIGHT RoutingInput = 0x12
	ROUTING_INPUT_SYSTEM_LEFT   RoutingInput = 0x14
	ROUTING_INPUT_SYSTEM_RIGHT  RoutingInput = 0x15
	ROUTING_INPUT_SAMPLES_LEFT  RoutingInput = 0x17
	ROUTING_INPUT_SAMPLES_RIGHT RoutingInput = 0x18
)

// RoutingTableLen is the size of a SetRouting body: one byte per output
// slot, 0x20 in a slot's high nibble enables the route (the app sends
// 8192 as a little endian u16 pair). Only a few slot positions are
// mapped so far; the rest of the table is still unidentified.
const RoutingTableLen = 22

const (
	ROUTING_OUT_HEADPHONES_LEFT  = 0x01
	ROUTING_OUT_HEADPHONES_RIGHT = 0x02
	ROUTING_OUT_BROADCAST_LEFT   = 0x07
	ROUTING_OUT_BROADCAST_RIGHT  = 0x08
)

// RoutingOn is the slot value that enables a route.
const RoutingOn = 0x20
