package goxlr

import "testing"

func TestCString(t *testing.T) {
	tests := []struct {
		buf  []byte
		want string
	}{
		{[]byte("S210101000000\x00\x00\x00"), "S210101000000"},
		{[]byte("2021-01-01"), "2021-01-01"},
		{[]byte{0x00}, ""},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := cString(tt.buf); got != tt.want {
			t.Errorf("cString(%q) = %q, want %q", tt.buf, got, tt.want)
		}
	}
}

func TestVersionNumberString(t *testing.T) {
	v := VersionNumber{Major: 1, Minor: 3, Patch: 40, Build: 108}
	if got := v.String(); got != "1.3.40.108" {
		t.Errorf("String() = %q, want 1.3.40.108", got)
	}
}

func TestMicrophoneTypeGainParam(t *testing.T) {
	tests := []struct {
		micType MicrophoneType
		want    MicParamKey
	}{
		{MIC_TYPE_DYNAMIC, MIC_PARAM_DYNAMIC_GAIN},
		{MIC_TYPE_CONDENSER, MIC_PARAM_CONDENSER_GAIN},
		{MIC_TYPE_JACK, MIC_PARAM_JACK_GAIN},
	}
	for _, tt := range tests {
		if got := tt.micType.GainParam(); got != tt.want {
			t.Errorf("%s.GainParam() = %v, want %v", tt.micType, got, tt.want)
		}
	}
	if MIC_TYPE_CONDENSER.HasPhantomPower() != true || MIC_TYPE_DYNAMIC.HasPhantomPower() != false {
		t.Error("phantom power flag wrong")
	}
}
