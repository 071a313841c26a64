package goxlr

import "fmt"

// EffectKey identifies one tunable audio processing parameter inside a
// SetEffectParameters body. The mapping was recovered by watching the
// official app talk to the device; groups marked unconfirmed below were
// observed but never toggled individually, so their meaning is provisional.
type EffectKey uint32

const (
	EFFECT_KEY_ROBOT_STYLE EffectKey = 0x0000

	// Gate
	EFFECT_KEY_GATE_MODE        EffectKey = 0x0010
	EFFECT_KEY_GATE_THRESHOLD   EffectKey = 0x0011
	EFFECT_KEY_GATE_ENABLED     EffectKey = 0x0014
	EFFECT_KEY_GATE_ATTENUATION EffectKey = 0x0015
	EFFECT_KEY_GATE_ATTACK      EffectKey = 0x0016
	EFFECT_KEY_GATE_RELEASE     EffectKey = 0x0017

	// Echo (unconfirmed: delay/feedback split per side is a guess)
	EFFECT_KEY_ECHO_SOURCE       EffectKey = 0x001e
	EFFECT_KEY_ECHO_TEMPO        EffectKey = 0x001f
	EFFECT_KEY_ECHO_DIV_L        EffectKey = 0x0020
	EFFECT_KEY_ECHO_DIV_R        EffectKey = 0x0021
	EFFECT_KEY_ECHO_DELAY_L      EffectKey = 0x0022
	EFFECT_KEY_ECHO_DELAY_R      EffectKey = 0x0023
	EFFECT_KEY_ECHO_FEEDBACK_L   EffectKey = 0x0024
	EFFECT_KEY_ECHO_FEEDBACK_R   EffectKey = 0x0025
	EFFECT_KEY_ECHO_XFB_L_TO_R   EffectKey = 0x0026
	EFFECT_KEY_ECHO_XFB_R_TO_L   EffectKey = 0x0027
	EFFECT_KEY_ECHO_FEEDBACK     EffectKey = 0x0028
	EFFECT_KEY_ECHO_FILTER_STYLE EffectKey = 0x002a

	// Reverb (unconfirmed: colour/factor keys are a guess)
	EFFECT_KEY_REVERB_TYPE        EffectKey = 0x002e
	EFFECT_KEY_REVERB_DECAY       EffectKey = 0x002f
	EFFECT_KEY_REVERB_PREDELAY    EffectKey = 0x0030
	EFFECT_KEY_REVERB_DIFFUSE     EffectKey = 0x0031
	EFFECT_KEY_REVERB_LO_COLOR    EffectKey = 0x0032
	EFFECT_KEY_REVERB_HI_COLOR    EffectKey = 0x0033
	EFFECT_KEY_REVERB_HI_FACTOR   EffectKey = 0x0034
	EFFECT_KEY_REVERB_MOD_SPEED   EffectKey = 0x0035
	EFFECT_KEY_REVERB_MOD_DEPTH   EffectKey = 0x0036
	EFFECT_KEY_REVERB_EARLY_LEVEL EffectKey = 0x0037
	EFFECT_KEY_REVERB_TAIL_LEVEL  EffectKey = 0x0039

	// Megaphone
	EFFECT_KEY_MEGAPHONE_STYLE     EffectKey = 0x003a
	EFFECT_KEY_MEGAPHONE_AMOUNT    EffectKey = 0x003c
	EFFECT_KEY_MEGAPHONE_HP        EffectKey = 0x003d
	EFFECT_KEY_MEGAPHONE_LP        EffectKey = 0x003e
	EFFECT_KEY_MEGAPHONE_PRE_GAIN  EffectKey = 0x003f
	EFFECT_KEY_MEGAPHONE_POST_GAIN EffectKey = 0x0040
	EFFECT_KEY_MEGAPHONE_DIST_TYPE EffectKey = 0x0041
	// Megaphone band EQ (unconfirmed)
	EFFECT_KEY_MEGAPHONE_LOW_GAIN EffectKey = 0x0042
	EFFECT_KEY_MEGAPHONE_LOW_FREQ EffectKey = 0x0043
	EFFECT_KEY_MEGAPHONE_LOW_Q    EffectKey = 0x0044
	EFFECT_KEY_MEGAPHONE_MID_GAIN EffectKey = 0x0045
	EFFECT_KEY_MEGAPHONE_MID_FREQ EffectKey = 0x0046
	EFFECT_KEY_MEGAPHONE_MID_Q    EffectKey = 0x0047
	EFFECT_KEY_MEGAPHONE_HI_GAIN  EffectKey = 0x0048
	EFFECT_KEY_MEGAPHONE_HI_FREQ  EffectKey = 0x0049
	EFFECT_KEY_MEGAPHONE_HI_Q     EffectKey = 0x004a

	// HardTune
	EFFECT_KEY_HARDTUNE_KEY_SOURCE   EffectKey = 0x0059
	EFFECT_KEY_HARDTUNE_AMOUNT       EffectKey = 0x005a
	EFFECT_KEY_HARDTUNE_WINDOW       EffectKey = 0x005b
	EFFECT_KEY_HARDTUNE_RATE         EffectKey = 0x005c
	EFFECT_KEY_HARDTUNE_SCALE        EffectKey = 0x005e
	EFFECT_KEY_HARDTUNE_PITCH_AMOUNT EffectKey = 0x005f

	// Pitch / Gender
	EFFECT_KEY_PITCH_AMOUNT  EffectKey = 0x005d
	EFFECT_KEY_GENDER_AMOUNT EffectKey = 0x0060

	// Wet/dry amounts shared with the encoder dials
	EFFECT_KEY_ECHO_AMOUNT   EffectKey = 0x0075
	EFFECT_KEY_REVERB_AMOUNT EffectKey = 0x0076

	// Per effect enable flags
	EFFECT_KEY_MEGAPHONE_ENABLED EffectKey = 0x00d7
	EFFECT_KEY_HARDTUNE_ENABLED  EffectKey = 0x00d8

	// Equalizer, ten fixed bands, frequency/value pairs
	EFFECT_KEY_EQ_63HZ_FREQUENCY  EffectKey = 0x00f8
	EFFECT_KEY_EQ_63HZ_VALUE      EffectKey = 0x00f9
	EFFECT_KEY_EQ_8KHZ_FREQUENCY  EffectKey = 0x0109
	EFFECT_KEY_EQ_8KHZ_VALUE      EffectKey = 0x010a
	EFFECT_KEY_EQ_125HZ_FREQUENCY EffectKey = 0x0113
	EFFECT_KEY_EQ_125HZ_VALUE     EffectKey = 0x0114
	EFFECT_KEY_EQ_500HZ_FREQUENCY EffectKey = 0x0116
	EFFECT_KEY_EQ_500HZ_VALUE     EffectKey = 0x0117
	EFFECT_KEY_EQ_1KHZ_FREQUENCY  EffectKey = 0x011d
	EFFECT_KEY_EQ_1KHZ_VALUE      EffectKey = 0x011e
	EFFECT_KEY_EQ_4KHZ_FREQUENCY  EffectKey = 0x0120
	EFFECT_KEY_EQ_4KHZ_VALUE      EffectKey = 0x0121
	EFFECT_KEY_EQ_31HZ_FREQUENCY  EffectKey = 0x0126
	EFFECT_KEY_EQ_31HZ_VALUE      EffectKey = 0x0127
	EFFECT_KEY_EQ_250HZ_FREQUENCY EffectKey = 0x0129
	EFFECT_KEY_EQ_250HZ_VALUE     EffectKey = 0x012a
	EFFECT_KEY_EQ_2KHZ_FREQUENCY  EffectKey = 0x012c
	EFFECT_KEY_EQ_2KHZ_VALUE      EffectKey = 0x012d
	EFFECT_KEY_EQ_16KHZ_FREQUENCY EffectKey = 0x012f
	EFFECT_KEY_EQ_16KHZ_VALUE     EffectKey = 0x0130

	// Robot band filter
	EFFECT_KEY_ROBOT_LOW_FREQ    EffectKey = 0x0133
	EFFECT_KEY_ROBOT_LOW_GAIN    EffectKey = 0x0134
	EFFECT_KEY_ROBOT_LOW_WIDTH   EffectKey = 0x0135
	EFFECT_KEY_ROBOT_HI_FREQ     EffectKey = 0x0136
	EFFECT_KEY_ROBOT_HI_GAIN     EffectKey = 0x0137
	EFFECT_KEY_ROBOT_HI_WIDTH    EffectKey = 0x0138
	EFFECT_KEY_ROBOT_MID_FREQ    EffectKey = 0x0139
	EFFECT_KEY_ROBOT_MID_GAIN    EffectKey = 0x013a
	EFFECT_KEY_ROBOT_MID_WIDTH   EffectKey = 0x013b
	EFFECT_KEY_ROBOT_PULSE_WIDTH EffectKey = 0x0146
	EFFECT_KEY_ROBOT_WAVEFORM    EffectKey = 0x0147
	EFFECT_KEY_ROBOT_DRY_MIX     EffectKey = 0x014d
	EFFECT_KEY_ROBOT_ENABLED     EffectKey = 0x014e
	EFFECT_KEY_ROBOT_THRESHOLD   EffectKey = 0x0157

	// Compressor
	EFFECT_KEY_COMPRESSOR_RATIO       EffectKey = 0x013c
	EFFECT_KEY_COMPRESSOR_THRESHOLD   EffectKey = 0x013d
	EFFECT_KEY_COMPRESSOR_ATTACK      EffectKey = 0x013e
	EFFECT_KEY_COMPRESSOR_RELEASE     EffectKey = 0x013f
	EFFECT_KEY_COMPRESSOR_MAKEUP_GAIN EffectKey = 0x0140

	EFFECT_KEY_PITCH_THRESHOLD EffectKey = 0x0159
	EFFECT_KEY_PITCH_CHARACTER EffectKey = 0x0167
)

// effectKeyNames is the display table consumed by rendering code. The
// decoder never consults it to make decisions; unknown keys stay valid.
var effectKeyNames = map[EffectKey]string{
	EFFECT_KEY_ROBOT_STYLE: "RobotStyle",

	EFFECT_KEY_GATE_MODE:        "GateMode",
	EFFECT_KEY_GATE_THRESHOLD:   "GateThreshold",
	EFFECT_KEY_GATE_ENABLED:     "GateEnabled",
	EFFECT_KEY_GATE_ATTENUATION: "GateAttenuation",
	EFFECT_KEY_GATE_ATTACK:      "GateAttack",
	EFFECT_KEY_GATE_RELEASE:     "GateRelease",

	EFFECT_KEY_ECHO_SOURCE:       "EchoSource",
	EFFECT_KEY_ECHO_TEMPO:        "EchoTempo",
	EFFECT_KEY_ECHO_DIV_L:        "EchoDivL",
	EFFECT_KEY_ECHO_DIV_R:        "EchoDivR",
	EFFECT_KEY_ECHO_DELAY_L:      "EchoDelayL",
	EFFECT_KEY_ECHO_DELAY_R:      "EchoDelayR",
	EFFECT_KEY_ECHO_FEEDBACK_L:   "EchoFeedbackL",
	EFFECT_KEY_ECHO_FEEDBACK_R:   "EchoFeedbackR",
	EFFECT_KEY_ECHO_XFB_L_TO_R:   "EchoXFBLtoR",
	EFFECT_KEY_ECHO_XFB_R_TO_L:   "EchoXFBRtoL",
	EFFECT_KEY_ECHO_FEEDBACK:     "EchoFeedback",
	EFFECT_KEY_ECHO_FILTER_STYLE: "EchoFilterStyle",

	EFFECT_KEY_REVERB_TYPE:        "ReverbType",
	EFFECT_KEY_REVERB_DECAY:       "ReverbDecay",
	EFFECT_KEY_REVERB_PREDELAY:    "ReverbPredelay",
	EFFECT_KEY_REVERB_DIFFUSE:     "ReverbDiffuse",
	EFFECT_KEY_REVERB_LO_COLOR:    "ReverbLoColor",
	EFFECT_KEY_REVERB_HI_COLOR:    "ReverbHiColor",
	EFFECT_KEY_REVERB_HI_FACTOR:   "ReverbHiFactor",
	EFFECT_KEY_REVERB_MOD_SPEED:   "ReverbModSpeed",
	EFFECT_KEY_REVERB_MOD_DEPTH:   "ReverbModDepth",
	EFFECT_KEY_REVERB_EARLY_LEVEL: "ReverbEarlyLevel",
	EFFECT_KEY_REVERB_TAIL_LEVEL:  "ReverbTailLevel",

	EFFECT_KEY_MEGAPHONE_STYLE:     "MegaphoneStyle",
	EFFECT_KEY_MEGAPHONE_AMOUNT:    "MegaphoneAmount",
	EFFECT_KEY_MEGAPHONE_HP:        "MegaphoneHP",
	EFFECT_KEY_MEGAPHONE_LP:        "MegaphoneLP",
	EFFECT_KEY_MEGAPHONE_PRE_GAIN:  "MegaphonePreGain",
	EFFECT_KEY_MEGAPHONE_POST_GAIN: "MegaphonePostGain",
	EFFECT_KEY_MEGAPHONE_DIST_TYPE: "MegaphoneDistType",
	EFFECT_KEY_MEGAPHONE_LOW_GAIN:  "MegaphoneLowGain",
	EFFECT_KEY_MEGAPHONE_LOW_FREQ:  "MegaphoneLowFreq",
	EFFECT_KEY_MEGAPHONE_LOW_Q:     "MegaphoneLowQ",
	EFFECT_KEY_MEGAPHONE_MID_GAIN:  "MegaphoneMidGain",
	EFFECT_KEY_MEGAPHONE_MID_FREQ:  "MegaphoneMidFreq",
	EFFECT_KEY_MEGAPHONE_MID_Q:     "MegaphoneMidQ",
	EFFECT_KEY_MEGAPHONE_HI_GAIN:   "MegaphoneHiGain",
	EFFECT_KEY_MEGAPHONE_HI_FREQ:   "MegaphoneHiFreq",
	EFFECT_KEY_MEGAPHONE_HI_Q:      "MegaphoneHiQ",
	EFFECT_KEY_MEGAPHONE_ENABLED:   "MegaphoneEnabled",

	EFFECT_KEY_HARDTUNE_KEY_SOURCE:   "HardTuneKeySource",
	EFFECT_KEY_HARDTUNE_AMOUNT:       "HardTuneAmount",
	EFFECT_KEY_HARDTUNE_WINDOW:       "HardTuneWindow",
	EFFECT_KEY_HARDTUNE_RATE:         "HardTuneRate",
	EFFECT_KEY_HARDTUNE_SCALE:        "HardTuneScale",
	EFFECT_KEY_HARDTUNE_PITCH_AMOUNT: "HardTunePitchAmount",
	EFFECT_KEY_HARDTUNE_ENABLED:      "HardTuneEnabled",

	EFFECT_KEY_PITCH_AMOUNT:    "PitchAmount",
	EFFECT_KEY_PITCH_THRESHOLD: "PitchThreshold",
	EFFECT_KEY_PITCH_CHARACTER: "PitchCharacter",
	EFFECT_KEY_GENDER_AMOUNT:   "GenderAmount",

	EFFECT_KEY_ECHO_AMOUNT:   "EchoAmount",
	EFFECT_KEY_REVERB_AMOUNT: "ReverbAmount",

	EFFECT_KEY_EQ_31HZ_FREQUENCY:  "Equalizer31HzFrequency",
	EFFECT_KEY_EQ_31HZ_VALUE:      "Equalizer31HzValue",
	EFFECT_KEY_EQ_63HZ_FREQUENCY:  "Equalizer63HzFrequency",
	EFFECT_KEY_EQ_63HZ_VALUE:      "Equalizer63HzValue",
	EFFECT_KEY_EQ_125HZ_FREQUENCY: "Equalizer125HzFrequency",
	EFFECT_KEY_EQ_125HZ_VALUE:     "Equalizer125HzValue",
	EFFECT_KEY_EQ_250HZ_FREQUENCY: "Equalizer250HzFrequency",
	EFFECT_KEY_EQ_250HZ_VALUE:     "Equalizer250HzValue",
	EFFECT_KEY_EQ_500HZ_FREQUENCY: "Equalizer500HzFrequency",
	EFFECT_KEY_EQ_500HZ_VALUE:     "Equalizer500HzValue",
	EFFECT_KEY_EQ_1KHZ_FREQUENCY:  "Equalizer1KHzFrequency",
	EFFECT_KEY_EQ_1KHZ_VALUE:      "Equalizer1KHzValue",
	EFFECT_KEY_EQ_2KHZ_FREQUENCY:  "Equalizer2KHzFrequency",
	EFFECT_KEY_EQ_2KHZ_VALUE:      "Equalizer2KHzValue",
	EFFECT_KEY_EQ_4KHZ_FREQUENCY:  "Equalizer4KHzFrequency",
	EFFECT_KEY_EQ_4KHZ_VALUE:      "Equalizer4KHzValue",
	EFFECT_KEY_EQ_8KHZ_FREQUENCY:  "Equalizer8KHzFrequency",
	EFFECT_KEY_EQ_8KHZ_VALUE:      "Equalizer8KHzValue",
	EFFECT_KEY_EQ_16KHZ_FREQUENCY: "Equalizer16KHzFrequency",
	EFFECT_KEY_EQ_16KHZ_VALUE:     "Equalizer16KHzValue",

	EFFECT_KEY_ROBOT_LOW_FREQ:    "RobotLowFreq",
	EFFECT_KEY_ROBOT_LOW_GAIN:    "RobotLowGain",
	EFFECT_KEY_ROBOT_LOW_WIDTH:   "RobotLowWidth",
	EFFECT_KEY_ROBOT_HI_FREQ:     "RobotHiFreq",
	EFFECT_KEY_ROBOT_HI_GAIN:     "RobotHiGain",
	EFFECT_KEY_ROBOT_HI_WIDTH:    "RobotHiWidth",
	EFFECT_KEY_ROBOT_MID_FREQ:    "RobotMidFreq",
	EFFECT_KEY_ROBOT_MID_GAIN:    "RobotMidGain",
	EFFECT_KEY_ROBOT_MID_WIDTH:   "RobotMidWidth",
	EFFECT_KEY_ROBOT_PULSE_WIDTH: "RobotPulseWidth",
	EFFECT_KEY_ROBOT_WAVEFORM:    "RobotWaveform",
	EFFECT_KEY_ROBOT_DRY_MIX:     "RobotDryMix",
	EFFECT_KEY_ROBOT_ENABLED:     "RobotEnabled",
	EFFECT_KEY_ROBOT_THRESHOLD:   "RobotThreshold",

	EFFECT_KEY_COMPRESSOR_RATIO:       "CompressorRatio",
	EFFECT_KEY_COMPRESSOR_THRESHOLD:   "CompressorThreshold",
	EFFECT_KEY_COMPRESSOR_ATTACK:      "CompressorAttack",
	EFFECT_KEY_COMPRESSOR_RELEASE:     "CompressorRelease",
	EFFECT_KEY_COMPRESSOR_MAKEUP_GAIN: "CompressorMakeUpGain",
}

func (k EffectKey) String() string {
	if name, ok := effectKeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Unknown effect key %#04x", uint32(k))
}

// EffectKeyNames returns a copy of the display table, for callers that
// want to enumerate it.
func EffectKeyNames() map[EffectKey]string {
	out := make(map[EffectKey]string, len(effectKeyNames))
	for k, v := range effectKeyNames {
		out[k] = v
	}
	return out
}
