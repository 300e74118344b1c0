// Package bignat provides arbitrary-precision decimal arithmetic.
// This file contains text and JSON marshaling over the decimal string form.
package bignat

import "fmt"

// MarshalText implements encoding.TextMarshaler.
// The value is rendered exactly as by String.
func (x Nat) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It accepts the same inputs as Parse.
func (x *Nat) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// MarshalJSON marshals the value as a JSON string, e.g. `"998001"`.
// A string is used rather than a JSON number: arbitrary-precision values
// routinely exceed what JSON consumers decode losslessly as numbers.
func (x Nat) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON unmarshals a JSON string or bare number into the value.
func (x *Nat) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("bignat: empty json")
	}
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*x = v
	return nil
}
