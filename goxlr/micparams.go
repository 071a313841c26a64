package goxlr

import "fmt"

// MicParamKey identifies a microphone processing parameter inside a
// SetMicrophoneType body. Two layouts coexist: small sequential codes for
// the basic mic setup, and structured codes (gate 0x302xx, compressor
// 0x602xx..0x607xx) for the processing chain bound to the mic input.
type MicParamKey uint32

const (
	MIC_PARAM_MIC_TYPE       MicParamKey = 0x000
	MIC_PARAM_DYNAMIC_GAIN   MicParamKey = 0x001
	MIC_PARAM_CONDENSER_GAIN MicParamKey = 0x002
	MIC_PARAM_JACK_GAIN      MicParamKey = 0x003

	MIC_PARAM_GATE_THRESHOLD   MicParamKey = 0x30200
	MIC_PARAM_GATE_ATTACK      MicParamKey = 0x30400
	MIC_PARAM_GATE_RELEASE     MicParamKey = 0x30600
	MIC_PARAM_GATE_ATTENUATION MicParamKey = 0x30900

	MIC_PARAM_COMPRESSOR_THRESHOLD   MicParamKey = 0x60200
	MIC_PARAM_COMPRESSOR_RATIO       MicParamKey = 0x60300
	MIC_PARAM_COMPRESSOR_ATTACK      MicParamKey = 0x60400
	MIC_PARAM_COMPRESSOR_RELEASE     MicParamKey = 0x60600
	MIC_PARAM_COMPRESSOR_MAKEUP_GAIN MicParamKey = 0x60700
)

var micParamKeyNames = map[MicParamKey]string{
	MIC_PARAM_MIC_TYPE:       "MicType",
	MIC_PARAM_DYNAMIC_GAIN:   "DynamicGain",
	MIC_PARAM_CONDENSER_GAIN: "CondenserGain",
	MIC_PARAM_JACK_GAIN:      "JackGain",

	MIC_PARAM_GATE_THRESHOLD:   "GateThreshold",
	MIC_PARAM_GATE_ATTACK:      "GateAttack",
	MIC_PARAM_GATE_RELEASE:     "GateRelease",
	MIC_PARAM_GATE_ATTENUATION: "GateAttenuation",

	MIC_PARAM_COMPRESSOR_THRESHOLD:   "CompressorThreshold",
	MIC_PARAM_COMPRESSOR_RATIO:       "CompressorRatio",
	MIC_PARAM_COMPRESSOR_ATTACK:      "CompressorAttack",
	MIC_PARAM_COMPRESSOR_RELEASE:     "CompressorRelease",
	MIC_PARAM_COMPRESSOR_MAKEUP_GAIN: "CompressorMakeUpGain",
}

func (k MicParamKey) String() string {
	if name, ok := micParamKeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Unknown mic param key %#05x", uint32(k))
}

// MicParamKeyNames returns a copy of the display table.
func MicParamKeyNames() map[MicParamKey]string {
	out := make(map[MicParamKey]string, len(micParamKeyNames))
	for k, v := range micParamKeyNames {
		out[k] = v
	}
	return out
}
