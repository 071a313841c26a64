package goxlr

import (
	"encoding/binary"
	"fmt"
	"math"
)

// RecordKind selects the value interpretation of a body record. It is
// derived once from the command class and then drives a fixed decode rule.
type RecordKind byte

const (
	RECORD_KIND_NONE      RecordKind = iota // opaque body, no record layout
	RECORD_KIND_EFFECT                      // {key u32 LE, value i32 LE}
	RECORD_KIND_MIC_PARAM                   // {key u32 LE, value f32 LE}
)

func (k RecordKind) String() string {
	switch k {
	case RECORD_KIND_NONE:
		return "opaque"
	case RECORD_KIND_EFFECT:
		return "effect parameter"
	case RECORD_KIND_MIC_PARAM:
		return "mic parameter"
	}
	return fmt.Sprintf("Unknown record kind %02x", byte(k))
}

// RecordKind reports which body record layout applies to a command class.
// Only the two parameter write commands carry structured bodies; anything
// else stays opaque rather than guessing at a layout.
func (c CommandClass) RecordKind() RecordKind {
	switch c {
	case COMMAND_SET_EFFECT_PARAMETERS:
		return RECORD_KIND_EFFECT
	case COMMAND_SET_MICROPHONE_TYPE:
		return RECORD_KIND_MIC_PARAM
	}
	return RECORD_KIND_NONE
}

const recordLen = 8

// BodyRecord is one decoded 8 byte key/value record. Int is valid for
// RECORD_KIND_EFFECT, Float for RECORD_KIND_MIC_PARAM.
type BodyRecord struct {
	Kind  RecordKind
	Key   uint32
	Int   int32
	Float float32
}

// KeyName resolves the record key against the table matching its kind.
func (r BodyRecord) KeyName() string {
	switch r.Kind {
	case RECORD_KIND_EFFECT:
		return EffectKey(r.Key).String()
	case RECORD_KIND_MIC_PARAM:
		return MicParamKey(r.Key).String()
	}
	return fmt.Sprintf("key %#x", r.Key)
}

func (r BodyRecord) String() string {
	switch r.Kind {
	case RECORD_KIND_EFFECT:
		return fmt.Sprintf("%s (%#04x) = %d", r.KeyName(), r.Key, r.Int)
	case RECORD_KIND_MIC_PARAM:
		return fmt.Sprintf("%s (%#05x) = %g", r.KeyName(), r.Key, r.Float)
	}
	return fmt.Sprintf("key %#x (opaque)", r.Key)
}

// decodeRecords splits body into consecutive 8 byte records, left to
// right. Whole records are always returned; a short tail is handed back
// unconsumed together with ErrTruncatedRecord instead of being dropped.
func decodeRecords(kind RecordKind, body []byte) (records []BodyRecord, trailing []byte, err error) {
	for len(body) >= recordLen {
		rec := BodyRecord{
			Kind: kind,
			Key:  binary.LittleEndian.Uint32(body[0:4]),
		}
		raw := binary.LittleEndian.Uint32(body[4:8])
		switch kind {
		case RECORD_KIND_EFFECT:
			rec.Int = int32(raw)
		case RECORD_KIND_MIC_PARAM:
			rec.Float = math.Float32frombits(raw)
		}
		records = append(records, rec)
		body = body[recordLen:]
	}
	if len(body) > 0 {
		return records, body, fmt.Errorf("%d trailing byte(s) after %d record(s): %w",
			len(body), len(records), ErrTruncatedRecord)
	}
	return records, nil, nil
}
