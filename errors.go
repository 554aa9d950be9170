package toolschema

import (
	"errors"
	"fmt"
)

// Sentinel errors for toolschema. Use errors.Is to check.
var (
	// ErrEnumBindingConflict is returned when an EnumBinding is constructed
	// with a duplicate member name.
	ErrEnumBindingConflict = errors.New("duplicate name in enum binding")
	// ErrDuplicateEnumName is returned by Append/AddEnum when a name is
	// already bound. The existing binding is left unchanged.
	ErrDuplicateEnumName = errors.New("enum name already bound")
	// ErrUnknownEnumName is returned by Decode for a name with no binding.
	ErrUnknownEnumName = errors.New("unknown enum name")
	// ErrUnknownCallable is returned by Registry lookups with no match.
	ErrUnknownCallable = errors.New("callable not found")
	// ErrUnknownTag is returned by Registry.FindByTag when no registered
	// callable carries the tag.
	ErrUnknownTag = errors.New("tag not found")
	// ErrUnknownParameter is returned by AddEnum for a parameter name not
	// retained in the schema.
	ErrUnknownParameter = errors.New("parameter not found")
	// ErrValidation wraps argument validation failures in Registry.Parse.
	ErrValidation = errors.New("validation failed")
)

// ClientError is an error that should be sent back to the LLM for
// self-correction (e.g. malformed arguments payload, schema validation
// failure, bad enum value). Do not expose stack traces or internal details
// to the LLM. Err optionally wraps a sentinel (e.g. ErrValidation) for
// errors.Is/errors.As.
type ClientError struct {
	Reason string
	Err    error // wrapped sentinel for errors.Is/errors.As
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("invalid tool call: %s", e.Reason)
}

// Unwrap supports errors.Is/errors.As on wrapped chains.
func (e *ClientError) Unwrap() error { return e.Err }

// SystemError represents an internal failure (e.g. a recovered panic inside
// the wrapped callable). The LLM should not see the underlying message.
type SystemError struct {
	Err error
}

func (e *SystemError) Error() string {
	return "internal error during tool invocation"
}

func (e *SystemError) Unwrap() error { return e.Err }

// IsClientError returns true if err is or wraps a ClientError.
func IsClientError(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce)
}

// IsSystemError returns true if err is or wraps a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// wrapJSONParseError returns a ClientError for arguments-payload parse failures.
func wrapJSONParseError(err error) error {
	return &ClientError{Reason: "json parse error: " + err.Error()}
}

// panicError wraps a recovered panic value for SystemError; used by WithRecovery.
type panicError struct{ p any }

func (e *panicError) Error() string {
	return "panic: " + fmt.Sprint(e.p)
}
