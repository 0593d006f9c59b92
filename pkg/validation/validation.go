// Package validation turns raw player input into vessel actions and checks
// player-supplied names.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/opd-ai/go-sail/pkg/entity"
	"github.com/opd-ai/go-sail/pkg/physics"
)

// Input limits
const (
	MaxCommandLen    = 32
	MaxVesselNameLen = 32
)

// ErrUnknownCommand is returned for input that names no action
var ErrUnknownCommand = errors.New("unknown command")

// Allow alphanumeric, spaces, hyphens, underscores, apostrophes and periods
var validVesselNameChars = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.']+$`)

// keyBindings are the single-key controls: arrows, WASD, vi keys, and the
// QEZC / YUBN diagonals.
var keyBindings = map[rune]entity.Action{
	'd': entity.TurnTo(physics.East),
	'l': entity.TurnTo(physics.East),
	'a': entity.TurnTo(physics.West),
	'h': entity.TurnTo(physics.West),
	'w': entity.TurnTo(physics.North),
	'k': entity.TurnTo(physics.North),
	's': entity.TurnTo(physics.South),
	'j': entity.TurnTo(physics.South),
	'q': entity.TurnTo(physics.NorthWest),
	'y': entity.TurnTo(physics.NorthWest),
	'e': entity.TurnTo(physics.NorthEast),
	'u': entity.TurnTo(physics.NorthEast),
	'z': entity.TurnTo(physics.SouthWest),
	'b': entity.TurnTo(physics.SouthWest),
	'c': entity.TurnTo(physics.SouthEast),
	'n': entity.TurnTo(physics.SouthEast),
	' ': entity.Hold(),
	'.': entity.Hold(),
}

var holdWords = map[string]bool{
	"hold": true,
	"wait": true,
	"stay": true,
}

// KeyAction returns the action bound to a single key
func KeyAction(key rune) (entity.Action, bool) {
	a, ok := keyBindings[unicode.ToLower(key)]
	return a, ok
}

// BoundKeys lists every bound key in ascending order
func BoundKeys() []rune {
	keys := make([]rune, 0, len(keyBindings))
	for k := range keyBindings {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ParseCommand converts one line of player input to an action. A single
// character is looked up as a key binding; longer input is read as a word
// command such as "north", "turn ne" or "hold".
func ParseCommand(input string) (entity.Action, error) {
	if len(input) > MaxCommandLen {
		return entity.Action{}, fmt.Errorf("command too long: %d bytes (max %d)", len(input), MaxCommandLen)
	}
	if !utf8.ValidString(input) {
		return entity.Action{}, fmt.Errorf("command contains invalid UTF-8 characters")
	}

	// A bare space is the hold key, so check it before trimming
	if input == " " {
		return entity.Hold(), nil
	}

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return entity.Action{}, fmt.Errorf("%w: empty input", ErrUnknownCommand)
	}
	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return entity.Action{}, fmt.Errorf("command contains control characters")
		}
	}

	if utf8.RuneCountInString(trimmed) == 1 {
		r, _ := utf8.DecodeRuneInString(trimmed)
		if a, ok := KeyAction(r); ok {
			return a, nil
		}
		return entity.Action{}, fmt.Errorf("%w: key %q is not bound", ErrUnknownCommand, trimmed)
	}

	word := strings.ToLower(trimmed)
	for _, prefix := range []string{"turn ", "head ", "go "} {
		word = strings.TrimSpace(strings.TrimPrefix(word, prefix))
	}

	if holdWords[word] {
		return entity.Hold(), nil
	}
	if d, err := physics.ParseDirection(word); err == nil {
		return entity.TurnTo(d), nil
	}
	return entity.Action{}, fmt.Errorf("%w: %q", ErrUnknownCommand, trimmed)
}

// ValidateVesselName validates and trims a vessel name
func ValidateVesselName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("vessel name cannot be empty")
	}

	if len(name) > MaxVesselNameLen {
		return "", fmt.Errorf("vessel name too long: %d characters (max %d)", len(name), MaxVesselNameLen)
	}

	if !utf8.ValidString(name) {
		return "", fmt.Errorf("vessel name contains invalid UTF-8 characters")
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("vessel name cannot be only whitespace")
	}

	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("vessel name contains control characters")
		}
	}

	if !validVesselNameChars.MatchString(trimmed) {
		return "", fmt.Errorf("vessel name contains invalid characters (only letters, digits, spaces, hyphens, underscores, apostrophes and periods allowed)")
	}

	return trimmed, nil
}
