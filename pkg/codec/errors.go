package codec

import "errors"

var (
	// ErrEncode is returned when a value cannot be represented in its
	// storage-bound form.
	ErrEncode = errors.New("codec: cannot encode value for storage")

	// ErrDecode is returned when a stored representation cannot be
	// reconstructed into an application value.
	ErrDecode = errors.New("codec: cannot decode stored value")

	// ErrUnsupported is returned by ForType when no generic codec exists
	// for a logical type.
	ErrUnsupported = errors.New("codec: no generic codec for type")
)
