package generation

import (
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultSeed is the seed worlds are built from when none is configured.
const DefaultSeed = "default"

// Seed is a world seed as it appears in config documents: either a bare
// 32-bit unsigned integer, used verbatim, or an arbitrary string, folded
// to 32 bits with HashSeed. The scalar kind in the document decides which:
// a quoted "12345" is hashed, a bare 12345 is not. An unset or malformed
// seed resolves to DefaultSeed; resolution never fails.
type Seed struct {
	raw     string
	num     uint32
	numeric bool
}

// SeedFromString returns a string seed
func SeedFromString(s string) Seed {
	return Seed{raw: s}
}

// SeedFromInt returns an integer seed
func SeedFromInt(n uint32) Seed {
	return Seed{num: n, numeric: true}
}

// Resolve reduces the seed to the 32-bit RNG state value
func (s Seed) Resolve() uint32 {
	if s.numeric {
		return s.num
	}
	if s.raw == "" {
		return HashSeed(DefaultSeed)
	}
	return HashSeed(s.raw)
}

// String returns the seed as configured, or DefaultSeed when unset
func (s Seed) String() string {
	if s.numeric {
		return strconv.FormatUint(uint64(s.num), 10)
	}
	if s.raw == "" {
		return DefaultSeed
	}
	return s.raw
}

// MarshalJSON writes the seed back in the form it was configured in
func (s Seed) MarshalJSON() ([]byte, error) {
	if s.numeric {
		return json.Marshal(s.num)
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts a JSON number or string. Anything else leaves the
// seed unset so it falls back to DefaultSeed rather than failing the load.
func (s *Seed) UnmarshalJSON(b []byte) error {
	var n uint32
	if err := json.Unmarshal(b, &n); err == nil {
		*s = SeedFromInt(n)
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = SeedFromString(str)
		return nil
	}
	*s = Seed{}
	return nil
}

// MarshalYAML writes the seed back in the form it was configured in
func (s Seed) MarshalYAML() (interface{}, error) {
	if s.numeric {
		return s.num, nil
	}
	return s.String(), nil
}

// UnmarshalYAML accepts a YAML number or string with the same fallback
// rules as UnmarshalJSON.
func (s *Seed) UnmarshalYAML(value *yaml.Node) error {
	var n uint32
	if err := value.Decode(&n); err == nil {
		*s = SeedFromInt(n)
		return nil
	}
	var str string
	if err := value.Decode(&str); err == nil {
		*s = SeedFromString(str)
		return nil
	}
	*s = Seed{}
	return nil
}
