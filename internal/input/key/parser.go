package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors.
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification into an Event.
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseParts(strings.Split(spec[1:len(spec)-1], "-"), spec)
	}

	// "+" alone is a character, "Ctrl++" is not supported; use "Ctrl+Plus".
	if spec != "+" && strings.Contains(spec, "+") {
		return parseParts(strings.Split(spec, "+"), spec)
	}

	return parseKey(spec, ModNone, spec)
}

// MustParse is Parse for specifications known to be valid.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return ev
}

func parseParts(parts []string, spec string) (Event, error) {
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := modifierFromName(strings.TrimSpace(p))
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidSpec, p, spec)
		}
		mods |= mod
	}
	return parseKey(strings.TrimSpace(parts[len(parts)-1]), mods, spec)
}

func parseKey(name string, mods Modifier, spec string) (Event, error) {
	if name == "" {
		return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	}

	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if !isPrintable(r) {
			return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
		}
		return NewRuneEvent(r, mods).Normalize(), nil
	}

	switch strings.ToLower(name) {
	case "space":
		return NewRuneEvent(' ', mods).Normalize(), nil
	case "plus":
		return NewRuneEvent('+', mods).Normalize(), nil
	case "minus":
		return NewRuneEvent('-', mods).Normalize(), nil
	case "lt":
		return NewRuneEvent('<', mods).Normalize(), nil
	case "gt":
		return NewRuneEvent('>', mods).Normalize(), nil
	}

	if k := FromName(name); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
}
