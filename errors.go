// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package tuple

import (
	"errors"
	"fmt"
)

// Sentinel errors for the taxonomy described by the wire format's error
// handling design. Use errors.Is to test for a specific kind; DecodeError
// additionally carries the byte offset and code at which a decode error
// occurred.
var (
	// ErrInvalidInput is returned when an element of an unsupported variant,
	// an absent element, or a malformed fixed-size payload (e.g. a UUID that
	// is not exactly 16 bytes) is encoded.
	ErrInvalidInput = errors.New("tuple: invalid input")

	// ErrIntegerTooLarge is returned when a big-integer magnitude requires
	// more than 255 bytes to represent.
	ErrIntegerTooLarge = errors.New("tuple: integer magnitude exceeds 255 bytes")

	// ErrDuplicateVersionstamp is returned when a tuple contains more than
	// one unbound versionstamp, at any nesting depth.
	ErrDuplicateVersionstamp = errors.New("tuple: more than one incomplete versionstamp")

	// ErrIncompleteVersionstamp is returned by Pack when the tuple contains
	// an unbound versionstamp; use PackWithVersionstamp instead.
	ErrIncompleteVersionstamp = errors.New("tuple: contains an incomplete versionstamp; use PackWithVersionstamp")

	// ErrUnexpectedVersionstamp is returned by PackWithVersionstamp when the
	// tuple contains no unbound versionstamp.
	ErrUnexpectedVersionstamp = errors.New("tuple: no incomplete versionstamp present")

	// ErrTruncatedInput is returned when the decoder reaches the end of the
	// buffer in the middle of an element.
	ErrTruncatedInput = errors.New("tuple: truncated input")

	// ErrInvalidTypeCode is returned when the decoder encounters a byte that
	// is not an assigned type code.
	ErrInvalidTypeCode = errors.New("tuple: invalid type code")

	// ErrInvalidUTF8 is returned when a Text element's payload is not
	// well-formed UTF-8.
	ErrInvalidUTF8 = errors.New("tuple: invalid utf-8")

	// ErrMissingCode is returned by BakeVersionstamp when an unbound
	// versionstamp supplies no element-level code and the caller supplies no
	// default code either.
	ErrMissingCode = errors.New("tuple: no user code available to bake versionstamp")
)

// DecodeError augments one of the decode-time sentinel errors above with the
// byte offset and leading type-code byte at which the failure occurred.
type DecodeError struct {
	Offset int
	Code   byte
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("tuple: decode at offset %d (code %#02x): %s", e.Offset, e.Code, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func decodeErr(offset int, code byte, err error) error {
	return &DecodeError{Offset: offset, Code: code, Err: err}
}
