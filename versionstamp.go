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

// vsState is threaded through the encoder to record the position of an
// unbound versionstamp's reserved slots, the way ion's Buffer threads
// segment/symbol state through its Write* calls. At most one unbound
// versionstamp is permitted per top-level Pack call, including ones nested
// inside child tuples.
type vsState struct {
	seen          bool
	stampOffset   int // offset of the reserved 10-byte commit-version slot
	codeOffset    int // offset of the reserved 2-byte user-code slot
	hasCodeOffset bool
}

// Versioned holds the outcome of PackWithVersionstamp: the packed buffer plus
// the offsets the transactional layer needs to patch in the real commit
// version (and, if the caller didn't supply one, the user code) after commit.
type Versioned struct {
	Data []byte

	// StampOffset is the offset within Data of the reserved 10-byte commit
	// version slot.
	StampOffset int

	// CodeOffset is the offset within Data of the reserved 2-byte user code
	// slot. HasCodeOffset is false if the versionstamp element supplied its
	// own code at encode time, in which case there is nothing left to patch.
	CodeOffset    int
	HasCodeOffset bool
}

// BakeVersionstampBuffer patches a Versioned buffer in place: it writes
// version into the reserved 10-byte slot, and, if the buffer still has an
// unresolved 2-byte code slot, writes code into it.
//
// It panics if version is not exactly 10 bytes, or if the buffer has an
// unresolved code slot but code is not exactly 2 bytes.
func BakeVersionstampBuffer(v *Versioned, version []byte, code []byte) {
	if len(version) != 10 {
		panic("tuple: commit version must be exactly 10 bytes")
	}
	copy(v.Data[v.StampOffset:v.StampOffset+10], version)
	if v.HasCodeOffset {
		if len(code) != 2 {
			panic("tuple: user code must be exactly 2 bytes")
		}
		copy(v.Data[v.CodeOffset:v.CodeOffset+2], code)
	}
}

// BakeVersionstamp walks t (recursing into nested tuples) and rewrites every
// unbound-versionstamp element into a fully-resolved Versionstamp whose 12
// bytes are version followed by either the element's own code (if it
// supplied one) or defaultCode. t is mutated in place; callers sharing t
// across goroutines must serialize their own access.
//
// It returns ErrMissingCode if an unbound versionstamp supplies no code of
// its own and defaultCode is nil.
func BakeVersionstamp(t Tuple, version [10]byte, defaultCode *uint16) error {
	for i, e := range t {
		switch v := e.(type) {
		case unboundVersionstampElem:
			var code uint16
			if v.hasCode {
				code = v.code
			} else if defaultCode != nil {
				code = *defaultCode
			} else {
				return ErrMissingCode
			}
			t[i] = versionstampElem{Version: version, Code: code}
		case nestedElem:
			if err := BakeVersionstamp(v.t, version, defaultCode); err != nil {
				return err
			}
		}
	}
	return nil
}

// hasUnboundVersionstamp reports whether t (recursing into nested tuples)
// contains at least one unbound versionstamp.
func hasUnboundVersionstamp(t Tuple) bool {
	for _, e := range t {
		switch v := e.(type) {
		case unboundVersionstampElem:
			return true
		case nestedElem:
			if hasUnboundVersionstamp(v.t) {
				return true
			}
		}
	}
	return false
}
