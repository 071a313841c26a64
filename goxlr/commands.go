package goxlr

import "fmt"

// The command word at the start of every control transfer is a 24 bit value,
// split into a 12 bit command class and a 12 bit subcommand. The subcommand
// carries class specific data (a channel, a fader, a hardware info selector)
// and is not decoded further here.
type CommandClass uint16

const (
	COMMAND_SYSTEM_INFO            CommandClass = 0x000
	COMMAND_GET_BUTTON_STATES      CommandClass = 0x800
	COMMAND_SET_EFFECT_PARAMETERS  CommandClass = 0x801
	COMMAND_SET_SCRIBBLE           CommandClass = 0x802
	COMMAND_SET_COLOUR_MAP         CommandClass = 0x803
	COMMAND_SET_ROUTING            CommandClass = 0x804
	COMMAND_SET_FADER              CommandClass = 0x805
	COMMAND_SET_CHANNEL_VOLUME     CommandClass = 0x806
	COMMAND_SET_BUTTON_STATES      CommandClass = 0x808
	COMMAND_SET_CHANNEL_STATE      CommandClass = 0x809
	COMMAND_SET_ENCODER_VALUE      CommandClass = 0x80a
	COMMAND_SET_MICROPHONE_TYPE    CommandClass = 0x80b
	COMMAND_GET_MICROPHONE_LEVEL   CommandClass = 0x80c
	COMMAND_GET_HARDWARE_INFO      CommandClass = 0x80f
	COMMAND_SET_FADER_DISPLAY_MODE CommandClass = 0x814
)

func (c CommandClass) String() string {
	switch c {
	case COMMAND_SYSTEM_INFO:
		return "SystemInfo"
	case COMMAND_GET_BUTTON_STATES:
		return "GetButtonStates"
	case COMMAND_SET_EFFECT_PARAMETERS:
		return "SetEffectParameters"
	case COMMAND_SET_SCRIBBLE:
		return "SetScribble"
	case COMMAND_SET_COLOUR_MAP:
		return "SetColourMap"
	case COMMAND_SET_ROUTING:
		return "SetRouting"
	case COMMAND_SET_FADER:
		return "SetFader"
	case COMMAND_SET_CHANNEL_VOLUME:
		return "SetChannelVolume"
	case COMMAND_SET_BUTTON_STATES:
		return "SetButtonStates"
	case COMMAND_SET_CHANNEL_STATE:
		return "SetChannelState"
	case COMMAND_SET_ENCODER_VALUE:
		return "SetEncoderValue"
	case COMMAND_SET_MICROPHONE_TYPE:
		return "SetMicrophoneType"
	case COMMAND_GET_MICROPHONE_LEVEL:
		return "GetMicrophoneLevel"
	case COMMAND_GET_HARDWARE_INFO:
		return "GetHardwareInfo"
	case COMMAND_SET_FADER_DISPLAY_MODE:
		return "SetFaderDisplayMode"
	}
	return fmt.Sprintf("Unknown command class %#03x", uint16(c))
}

// CommandClasses lists the known command classes in ascending order.
func CommandClasses() []CommandClass {
	return []CommandClass{
		COMMAND_SYSTEM_INFO,
		COMMAND_GET_BUTTON_STATES,
		COMMAND_SET_EFFECT_PARAMETERS,
		COMMAND_SET_SCRIBBLE,
		COMMAND_SET_COLOUR_MAP,
		COMMAND_SET_ROUTING,
		COMMAND_SET_FADER,
		COMMAND_SET_CHANNEL_VOLUME,
		COMMAND_SET_BUTTON_STATES,
		COMMAND_SET_CHANNEL_STATE,
		COMMAND_SET_ENCODER_VALUE,
		COMMAND_SET_MICROPHONE_TYPE,
		COMMAND_GET_MICROPHONE_LEVEL,
		COMMAND_GET_HARDWARE_INFO,
		COMMAND_SET_FADER_DISPLAY_MODE,
	}
}

// CommandID packs class and subcommand back into the 24 bit command word.
func (c CommandClass) CommandID(subcommand uint16) uint32 {
	return uint32(c)<<12 | uint32(subcommand)&0xfff
}

// Subcommand selectors for COMMAND_SYSTEM_INFO. Selector 0 resets the
// device side command index counter.
const (
	SYSTEM_INFO_RESET_COMMAND_INDEX uint16 = 0x000
	SYSTEM_INFO_SUPPORTS_DCP        uint16 = 0x001
	SYSTEM_INFO_FIRMWARE_VERSION    uint16 = 0x002
)

// Subcommand selectors for COMMAND_GET_HARDWARE_INFO.
const (
	HARDWARE_INFO_FIRMWARE_VERSION uint16 = 0x000
	HARDWARE_INFO_SERIAL_NUMBER    uint16 = 0x001
)
