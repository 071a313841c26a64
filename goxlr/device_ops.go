package goxlr

import (
	"encoding/binary"
	"fmt"
	"math"
)

// VersionNumber is a firmware version quadruple.
type VersionNumber struct {
	Major uint32
	Minor uint32
	Patch uint32
	Build uint32
}

func (v VersionNumber) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Build)
}

// FirmwareVersions describes the three firmware blobs a device reports.
type FirmwareVersions struct {
	Firmware  VersionNumber
	FPGACount uint32
	Dice      VersionNumber
}

func (f FirmwareVersions) String() string {
	return fmt.Sprintf("firmware %s, FPGA count %d, DICE %s", f.Firmware, f.FPGACount, f.Dice)
}

// GetFirmwareVersion reads the hardware info firmware record.
func (x *LocalXLR) GetFirmwareVersion() (*FirmwareVersions, error) {
	body, err := x.RequestData(COMMAND_GET_HARDWARE_INFO, HARDWARE_INFO_FIRMWARE_VERSION, nil)
	if err != nil {
		return nil, err
	}
	if len(body) < 28 {
		return nil, fmt.Errorf("firmware info response too short: %d bytes", len(body))
	}

	firmwarePacked := binary.LittleEndian.Uint32(body[0:4])
	firmwareBuild := binary.LittleEndian.Uint32(body[4:8])
	// body[8:12] unknown
	fpgaCount := binary.LittleEndian.Uint32(body[12:16])
	diceBuild := binary.LittleEndian.Uint32(body[16:20])
	dicePacked := binary.LittleEndian.Uint32(body[20:24])

	return &FirmwareVersions{
		Firmware: VersionNumber{
			Major: firmwarePacked >> 12,
			Minor: (firmwarePacked >> 8) & 0xf,
			Patch: firmwarePacked & 0xff,
			Build: firmwareBuild,
		},
		FPGACount: fpgaCount,
		Dice: VersionNumber{
			Major: (dicePacked >> 20) & 0xf,
			Minor: (dicePacked >> 12) & 0xff,
			Patch: dicePacked & 0xfff,
			Build: diceBuild,
		},
	}, nil
}

// GetSerialNumber returns the device serial and manufacture date, both
// null terminated strings in the hardware info record.
func (x *LocalXLR) GetSerialNumber() (serial string, manufactureDate string, err error) {
	body, err := x.RequestData(COMMAND_GET_HARDWARE_INFO, HARDWARE_INFO_SERIAL_NUMBER, nil)
	if err != nil {
		return "", "", err
	}
	if len(body) < 24 {
		return "", "", fmt.Errorf("serial number response too short: %d bytes", len(body))
	}
	return cString(body[:24]), cString(body[24:]), nil
}

func cString(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

// ButtonStates is the raw state snapshot returned by GetButtonStates:
// a pressed bitfield, the four effect encoder positions and the four
// mixer fader positions.
type ButtonStates struct {
	Pressed  uint32
	Encoders [4]int8 // pitch, gender, reverb, echo
	Mixers   [4]byte // fader volumes A..D
}

func (b ButtonStates) String() string {
	return fmt.Sprintf("buttons %#08x, encoders %v, mixers %v", b.Pressed, b.Encoders, b.Mixers)
}

func (x *LocalXLR) GetButtonStates() (*ButtonStates, error) {
	body, err := x.RequestData(COMMAND_GET_BUTTON_STATES, 0, nil)
	if err != nil {
		return nil, err
	}
	if len(body) < 12 {
		return nil, fmt.Errorf("button state response too short: %d bytes", len(body))
	}
	states := &ButtonStates{
		Pressed: binary.LittleEndian.Uint32(body[0:4]),
	}
	for i := 0; i < 4; i++ {
		states.Encoders[i] = int8(body[4+i])
		states.Mixers[i] = body[8+i]
	}
	return states, nil
}

// GetMicrophoneLevel reads the current mic input level.
func (x *LocalXLR) GetMicrophoneLevel() (uint16, error) {
	body, err := x.RequestData(COMMAND_GET_MICROPHONE_LEVEL, 0, nil)
	if err != nil {
		return 0, err
	}
	if len(body) < 2 {
		return 0, fmt.Errorf("mic level response too short: %d bytes", len(body))
	}
	return binary.LittleEndian.Uint16(body), nil
}

// SetVolume sets a channel volume (0x00..0xff).
func (x *LocalXLR) SetVolume(channel ChannelName, volume byte) error {
	_, err := x.RequestData(COMMAND_SET_CHANNEL_VOLUME, uint16(channel), []byte{volume})
	return err
}

// SetFader assigns a channel to a physical fader.
func (x *LocalXLR) SetFader(fader FaderName, channel ChannelName) error {
	_, err := x.RequestData(COMMAND_SET_FADER, uint16(fader), []byte{byte(channel), 0x00, 0x00, 0x00})
	return err
}

// SetChannelState mutes or unmutes a channel.
func (x *LocalXLR) SetChannelState(channel ChannelName, state ChannelState) error {
	_, err := x.RequestData(COMMAND_SET_CHANNEL_STATE, uint16(channel), []byte{byte(state)})
	return err
}

// SetEncoderValue moves one of the effect encoders.
func (x *LocalXLR) SetEncoderValue(encoder EncoderName, value int8) error {
	_, err := x.RequestData(COMMAND_SET_ENCODER_VALUE, uint16(encoder), []byte{byte(value)})
	return err
}

// SetFaderDisplayMode switches a fader strip between gradient and meter
// rendering.
func (x *LocalXLR) SetFaderDisplayMode(fader FaderName, gradient, meter bool) error {
	body := []byte{0x00, 0x00}
	if gradient {
		body[0] = 0x01
	}
	if meter {
		body[1] = 0x01
	}
	_, err := x.RequestData(COMMAND_SET_FADER_DISPLAY_MODE, uint16(fader), body)
	return err
}

// SetRouting replaces the routing table row for one input lane.
func (x *LocalXLR) SetRouting(input RoutingInput, table [RoutingTableLen]byte) error {
	_, err := x.RequestData(COMMAND_SET_ROUTING, uint16(input), table[:])
	return err
}

// EffectValue pairs an effect key with its new value.
type EffectValue struct {
	Key   EffectKey
	Value int32
}

// SetEffectValues writes a batch of effect parameters in one command,
// 8 bytes per parameter.
func (x *LocalXLR) SetEffectValues(effects []EffectValue) error {
	body := make([]byte, 0, len(effects)*recordLen)
	for _, e := range effects {
		body = binary.LittleEndian.AppendUint32(body, uint32(e.Key))
		body = binary.LittleEndian.AppendUint32(body, uint32(e.Value))
	}
	_, err := x.RequestData(COMMAND_SET_EFFECT_PARAMETERS, 0, body)
	return err
}

// MicParamValue pairs a mic param key with its new value.
type MicParamValue struct {
	Key   MicParamKey
	Value float32
}

// SetMicParams writes a batch of microphone parameters in one command.
func (x *LocalXLR) SetMicParams(params []MicParamValue) error {
	body := make([]byte, 0, len(params)*recordLen)
	for _, p := range params {
		body = binary.LittleEndian.AppendUint32(body, uint32(p.Key))
		body = binary.LittleEndian.AppendUint32(body, math.Float32bits(p.Value))
	}
	_, err := x.RequestData(COMMAND_SET_MICROPHONE_TYPE, 0, body)
	return err
}

// SetMicrophoneGain selects the mic type and applies the matching gain
// parameter.
func (x *LocalXLR) SetMicrophoneGain(micType MicrophoneType, gain uint16) error {
	typeValue := float32(0)
	if micType.HasPhantomPower() {
		typeValue = 1
	}
	// The gain rides in the upper half of the 4 byte value.
	gainBits := uint32(gain) << 16
	return x.SetMicParams([]MicParamValue{
		{Key: MIC_PARAM_MIC_TYPE, Value: typeValue},
		{Key: micType.GainParam(), Value: math.Float32frombits(gainBits)},
	})
}
