// Package bitfield decodes the parameter bitmask attached to openFPGA data
// slots into named capability flags.
//
// The Analogue platform documents a full bit layout for slot parameters;
// this package carries the complete published table but only decodes the
// entries the catalog cares about. Bits without an enabled table entry are
// permanently masked off regardless of the input.
package bitfield

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Bit is one named flag in the parameters bitmask.
type Bit struct {
	Name    string
	Value   uint32
	Enabled bool // only enabled bits participate in decoding
}

// DataSlotBits is the published data-slot parameter layout. The curated
// subset marked Enabled is what ends up in generated catalog records.
var DataSlotBits = []Bit{
	{Name: "user_reloadable", Value: 0x000001, Enabled: true},
	{Name: "core_specific", Value: 0x000002, Enabled: true},
	{Name: "nonvolatile_filename", Value: 0x000004},
	{Name: "read_only", Value: 0x000008, Enabled: true},
	{Name: "instance_json", Value: 0x000010, Enabled: true},
	{Name: "init_on_load", Value: 0x000020},
	{Name: "reset_while_loading", Value: 0x000040},
	{Name: "reset_around_loading", Value: 0x000080},
	{Name: "full_reload", Value: 0x000100},
	{Name: "persist_browsed_filename", Value: 0x000200},
}

// InstanceJSON is the capability reserved for slots synthesized by the
// emulation host at runtime. Record building drops any slot whose decoded
// flags include it.
const InstanceJSON = "instance_json"

// Decode returns the names of the enabled table bits set in mask, each
// mapped to true. Names whose bit is clear are absent from the result, not
// present as false.
func Decode(mask uint32, table []Bit) map[string]bool {
	flags := make(map[string]bool)
	for _, b := range table {
		if b.Enabled && mask&b.Value != 0 {
			flags[b.Name] = true
		}
	}
	return flags
}

// Mask is a data-slot parameters bitmask. Descriptor files carry it either
// as a JSON number or as a hexadecimal string (with or without an "0x"
// prefix), so it needs a custom unmarshaler.
type Mask uint32

// Decode returns the enabled capability flags set in the mask.
func (m Mask) Decode() map[string]bool {
	return Decode(uint32(m), DataSlotBits)
}

// UnmarshalJSON accepts an integer or a base-16 string.
func (m *Mask) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := ParseHex(s)
		if err != nil {
			return err
		}
		*m = v
		return nil
	}
	var n uint32
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*m = Mask(n)
	return nil
}

// ParseHex parses a hexadecimal mask string. The "0x" prefix is optional;
// an empty string parses as zero.
func ParseHex(s string) (Mask, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	return Mask(v), nil
}
