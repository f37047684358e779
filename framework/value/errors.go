package value

import "golang.org/x/xerrors"

var (
	// ErrUnsupportedResource is returned whenever a resource handle is
	// met during conversion or hashing. Handles only mean something to
	// the host's resource table, so a structural mirror of one would be
	// a lie; callers get a typed error instead.
	ErrUnsupportedResource = xerrors.New("value: resource values are not supported")

	ErrUnknownKind = xerrors.New("value: unknown value kind")
)
