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

// Package tuple implements the FoundationDB tuple encoding: a self-describing,
// order-preserving binary serialization for sequences of typed scalar values.
// Byte-wise comparison of two packed buffers agrees with the logical ordering
// of the tuples they encode, which is what makes the format suitable as a
// database key layer.
package tuple

// Pack encodes t into its wire representation. It fails with
// ErrIncompleteVersionstamp if t contains an unbound versionstamp (from
// IncompleteVersionstamp); use PackWithVersionstamp for that case.
func Pack(t Tuple) ([]byte, error) {
	if hasUnboundVersionstamp(t) {
		return nil, ErrIncompleteVersionstamp
	}
	b := NewBuffer(0)
	var vs vsState
	if err := encodeTopLevel(b, t, &vs); err != nil {
		return nil, err
	}
	return b.Finish(), nil
}

// PackWithVersionstamp encodes t, which must contain exactly one unbound
// versionstamp (at any nesting depth), and returns the packed bytes along
// with the offsets of the reserved commit-version and (if applicable)
// user-code slots so a transactional client can patch them in after commit.
//
// It fails with ErrUnexpectedVersionstamp if t contains no unbound
// versionstamp, and ErrDuplicateVersionstamp if it contains more than one.
func PackWithVersionstamp(t Tuple) (*Versioned, error) {
	if !hasUnboundVersionstamp(t) {
		return nil, ErrUnexpectedVersionstamp
	}
	b := NewBuffer(0)
	var vs vsState
	if err := encodeTopLevel(b, t, &vs); err != nil {
		return nil, err
	}
	return &Versioned{
		Data:          b.Finish(),
		StampOffset:   vs.stampOffset,
		CodeOffset:    vs.codeOffset,
		HasCodeOffset: vs.hasCodeOffset,
	}, nil
}

// Unpack decodes buf into a Tuple. In strict mode, Float32/Float64 elements
// retain their exact wire-level bit pattern (so NaN payloads are not
// normalized and Pack(Unpack(buf, true)) reproduces buf byte-for-byte);
// non-strict decoding returns plain float32/float64 values.
func Unpack(buf []byte, strict bool) (Tuple, error) {
	var t Tuple
	pos := 0
	for pos < len(buf) {
		e, next, err := decodeOne(buf, pos, noVersionstampHint, strict)
		if err != nil {
			return nil, err
		}
		t = append(t, e)
		pos = next
	}
	return t, nil
}
