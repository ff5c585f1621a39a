package anim

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBounceUnsupported is returned when Bounce is selected. Bounce has no agreed
// behaviour yet.
var ErrBounceUnsupported = errors.New("bounce repeat policy is not supported")

// RepeatPolicy decides what happens once every component has finished.
type RepeatPolicy int

const (
	// RepeatNone stops the animation.
	RepeatNone RepeatPolicy = iota
	// RepeatLoop resets every component and starts again from zero.
	RepeatLoop
	// RepeatBounce is reserved.
	RepeatBounce
	// RepeatPause pauses the animation, leaving components finished.
	RepeatPause
)

var repeatNames = [...]string{"none", "loop", "bounce", "pause"}

func (p RepeatPolicy) String() string {
	if p < 0 || int(p) >= len(repeatNames) {
		return fmt.Sprintf("RepeatPolicy(%d)", int(p))
	}
	return repeatNames[p]
}

// ParseRepeatPolicy is the inverse of String. The empty string is RepeatNone.
func ParseRepeatPolicy(s string) (RepeatPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RepeatNone, nil
	}
	for i, n := range repeatNames {
		if n == s {
			return RepeatPolicy(i), nil
		}
	}
	return RepeatNone, fmt.Errorf("unknown repeat policy %q", s)
}

// UnmarshalYAML reads a policy by name.
func (p *RepeatPolicy) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseRepeatPolicy(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML writes a policy by name.
func (p RepeatPolicy) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}
