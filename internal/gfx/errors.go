package gfx

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// ErrorCode is a value returned by the backend's error query.
// The vocabulary mirrors glGetError.
type ErrorCode uint32

const (
	NoError                     ErrorCode = 0
	InvalidEnum                 ErrorCode = 0x0500
	InvalidValue                ErrorCode = 0x0501
	InvalidOperation            ErrorCode = 0x0502
	StackOverflow               ErrorCode = 0x0503
	StackUnderflow              ErrorCode = 0x0504
	OutOfMemory                 ErrorCode = 0x0505
	InvalidFramebufferOperation ErrorCode = 0x0506
	ContextLost                 ErrorCode = 0x0507
	TableTooLarge               ErrorCode = 0x8031
)

var errorNames = map[ErrorCode]string{
	NoError:                     "NoError",
	InvalidEnum:                 "InvalidEnum",
	InvalidValue:                "InvalidValue",
	InvalidOperation:            "InvalidOperation",
	StackOverflow:               "StackOverflow",
	StackUnderflow:              "StackUnderflow",
	OutOfMemory:                 "OutOfMemory",
	InvalidFramebufferOperation: "InvalidFramebufferOperation",
	ContextLost:                 "ContextLost",
	TableTooLarge:               "TableTooLarge",
}

// lookup key: lower-cased name without underscores.
var errorsByName = func() map[string]ErrorCode {
	m := make(map[string]ErrorCode, len(errorNames))
	for code, name := range errorNames {
		m[strings.ToLower(name)] = code
	}
	return m
}()

// String returns the enum name, e.g. "InvalidEnum".
func (c ErrorCode) String() string {
	if name, ok := errorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(0x%04X)", uint32(c))
}

// Known reports whether c belongs to the backend vocabulary.
func (c ErrorCode) Known() bool {
	_, ok := errorNames[c]
	return ok
}

// Codes returns every known non-zero code in ascending order.
func Codes() []ErrorCode {
	return []ErrorCode{
		InvalidEnum,
		InvalidValue,
		InvalidOperation,
		StackOverflow,
		StackUnderflow,
		OutOfMemory,
		InvalidFramebufferOperation,
		ContextLost,
		TableTooLarge,
	}
}

// ParseErrorCode accepts an enum name ("InvalidEnum", "GL_INVALID_ENUM",
// "invalid_enum") or a number ("0x0500", "1280").
func ParseErrorCode(s string) (ErrorCode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoError, fmt.Errorf("empty error code")
	}
	key := strings.ToLower(s)
	key = strings.TrimPrefix(key, "gl_")
	key = strings.ReplaceAll(key, "_", "")
	if code, ok := errorsByName[key]; ok {
		return code, nil
	}
	n, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return NoError, fmt.Errorf("unknown error code %q", s)
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return NoError, fmt.Errorf("error code %q out of range: %w", s, err)
	}
	return ErrorCode(v), nil
}
