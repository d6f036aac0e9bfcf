package argon2

import "fmt"

// InvalidParameterError reports that a Params field falls outside the
// range the algorithm requires (spec section 7).
type InvalidParameterError struct {
	Field  string
	Value  uint32
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("argon2: invalid %s (%d): %s", e.Field, e.Value, e.Reason)
}

// UnsupportedTypeError reports a type name that does not name one of the
// three defined Argon2 variants — either a Params.Type value with no
// corresponding variant, or a well-formed but unrecognized type name in an
// encoded hash string (e.g. "argon2x").
type UnsupportedTypeError struct {
	Name string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("argon2: unsupported type %q", e.Name)
}

// UnsupportedVersionError reports an encoded hash string naming a version
// other than 19 (0x13). Version 0x10 is explicitly out of scope.
type UnsupportedVersionError struct {
	Version int
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("argon2: unsupported version %d, only version 19 is supported", e.Version)
}

// InvalidEncodingError reports that an encoded hash string does not match
// the canonical `$argon2X$v=19$m=...,t=...,p=...$<salt>$<hash>` grammar.
type InvalidEncodingError struct {
	Input  string
	Reason string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("argon2: invalid encoded hash %q: %s", e.Input, e.Reason)
}
