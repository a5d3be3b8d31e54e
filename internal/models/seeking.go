package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Seeking is the two-valued "seeking talent" / "seeking venue" flag.
//
// Unset input defaults to [NotSeeking]; the flag is persisted as a boolean.
type Seeking int

const (
	NotSeeking Seeking = iota
	IsSeeking
)

// CheckboxValue is the value an HTML checkbox submits when ticked.
const CheckboxValue = "y"

// SeekingFromForm derives the flag from a checkbox field.
//
// An absent or empty field means not seeking and "y" means seeking; anything
// else is rejected.
func SeekingFromForm(present bool, value string) (Seeking, error) {
	if !present || value == "" {
		return NotSeeking, nil
	}
	if value == CheckboxValue {
		return IsSeeking, nil
	}
	return NotSeeking, fmt.Errorf("unexpected checkbox value %q", value)
}

// Bool reports whether the flag is set.
func (s Seeking) Bool() bool { return s == IsSeeking }

// Checked is the edit-form state of the flag.
func (s Seeking) Checked() bool { return s.Bool() }

func (s Seeking) String() string {
	if s.Bool() {
		return "seeking"
	}
	return "not seeking"
}

// Value implements [driver.Valuer].
func (s Seeking) Value() (driver.Value, error) {
	return s.Bool(), nil
}

// Scan implements [sql.Scanner].
func (s *Seeking) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = NotSeeking
	case bool:
		*s = seekingOf(v)
	case int64:
		*s = seekingOf(v != 0)
	case string:
		*s = seekingOf(v == "1" || v == "true")
	case []byte:
		return s.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Seeking", src)
	}
	return nil
}

// MarshalJSON encodes the flag as a JSON boolean.
func (s Seeking) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Bool())
}

// UnmarshalJSON decodes a JSON boolean.
func (s *Seeking) UnmarshalJSON(b []byte) error {
	var v bool
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = seekingOf(v)
	return nil
}

func seekingOf(v bool) Seeking {
	if v {
		return IsSeeking
	}
	return NotSeeking
}
