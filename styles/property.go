package styles

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"
	"strings"
)

// Property is a raw value for a style property. For example, with
//
//	leading: 7.15pt
//
// a property value of "7.15pt" is set. Interpretation of the raw string is
// up to the client; this package only stores and cascades it.
type Property string

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a single style setting.
type KeyValue struct {
	Key   string
	Value Property
}

// Map is an immutable group of style settings, the unit a style scope is
// made of. The zero Map is empty.
type Map struct {
	settings []KeyValue
}

// NewMap creates a style map from key/value pairs. Later settings for the
// same key shadow earlier ones.
func NewMap(settings ...KeyValue) Map {
	return Map{settings: settings}
}

// Set returns a copy of m with one more setting, shadowing previous
// settings for the same key. m is left untouched.
func (m Map) Set(key string, value Property) Map {
	settings := make([]KeyValue, len(m.settings), len(m.settings)+1)
	copy(settings, m.settings)
	return Map{settings: append(settings, KeyValue{Key: key, Value: value})}
}

// Get looks up the effective setting for key, in Go's comma-ok idiom.
func (m Map) Get(key string) (Property, bool) {
	for i := len(m.settings) - 1; i >= 0; i-- {
		if m.settings[i].Key == key {
			return m.settings[i].Value, true
		}
	}
	return "", false
}

// IsEmpty is true if m carries no settings.
func (m Map) IsEmpty() bool {
	return len(m.settings) == 0
}

func (m Map) String() string {
	b := strings.Builder{}
	b.WriteByte('{')
	for i, kv := range m.settings {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", kv.Key, kv.Value)
	}
	b.WriteByte('}')
	return b.String()
}
