package decoder

import "fmt"

// UnsupportedEncodingError reports an event whose type hash matches no known encoding.
// The block containing it cannot be processed.
type UnsupportedEncodingError struct {
	Event       string
	TypeHash    string
	SpecVersion uint32
}

func (e *UnsupportedEncodingError) Error() string {
	return fmt.Sprintf("unsupported encoding of %s: type hash %q in spec version %d", e.Event, e.TypeHash, e.SpecVersion)
}

// PayloadError reports arguments that do not match the encoding their type hash announced.
type PayloadError struct {
	Event   string
	Version Version
	Err     error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("decode %s %s payload: %v", e.Event, e.Version, e.Err)
}

func (e *PayloadError) Unwrap() error {
	return e.Err
}
