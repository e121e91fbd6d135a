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
	"math/big"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// typeCode is the single leading byte that identifies an element's variant.
type typeCode byte

// Bit-exact type codes, per the wire format.
const (
	codeNil         typeCode = 0x00
	codeBytes       typeCode = 0x01
	codeText        typeCode = 0x02
	codeNested      typeCode = 0x05
	codeNegIntStart typeCode = 0x0B // extended-length negative integer (>8 bytes)
	codeIntZero     typeCode = 0x14
	codePosIntEnd   typeCode = 0x1D // extended-length positive integer (>8 bytes)
	codeFloat32     typeCode = 0x20
	codeFloat64     typeCode = 0x21
	codeBoolFalse   typeCode = 0x26
	codeBoolTrue    typeCode = 0x27
	codeUUID        typeCode = 0x30
	codeVersionstmp typeCode = 0x33
)

// negIntLo/negIntHi bound the fixed-width negative integer codes (0x0C..0x13,
// negative integers of 8..1 bytes respectively).
const (
	negIntLo = 0x0C
	negIntHi = 0x13
	posIntLo = 0x15
	posIntHi = 0x1C
)

// Element is one of the types that may appear in a Tuple. It is a closed sum
// type: the only implementations are the ones constructed by this package's
// exported constructors (Nil, Bool, Bytes, Text, Nested, Int, BigInt, Float32,
// Float64, UUID, Versionstamp, and the unbound-versionstamp placeholder
// returned by IncompleteVersionstamp).
//
// Element values are immutable from the caller's perspective; the only
// mutation the package performs is BakeVersionstamp rewriting an unbound
// versionstamp element in place within a Tuple slice.
type Element interface {
	element()
}

// Tuple is an ordered, heterogeneous sequence of Elements.
type Tuple []Element

// Clone returns a deep copy of t. Nested tuples and byte-slice-backed
// elements are copied rather than aliased.
func (t Tuple) Clone() Tuple {
	if t == nil {
		return nil
	}
	out := make(Tuple, len(t))
	for i, e := range t {
		out[i] = cloneElement(e)
	}
	return out
}

func cloneElement(e Element) Element {
	switch v := e.(type) {
	case nilElem:
		return v
	case boolElem:
		return v
	case bytesElem:
		return bytesElem(slices.Clone([]byte(v)))
	case textElem:
		return v
	case nestedElem:
		return nestedElem{t: Tuple(v.t).Clone()}
	case intElem:
		return v
	case bigIntElem:
		return bigIntElem{v: new(big.Int).Set(v.v)}
	case float32Elem:
		return v
	case float64Elem:
		return v
	case uuidElem:
		return v
	case versionstampElem:
		return v
	case unboundVersionstampElem:
		return v
	default:
		return e
	}
}

// concrete variant types -----------------------------------------------

type nilElem struct{}

func (nilElem) element() {}

type boolElem bool

func (boolElem) element() {}

type bytesElem []byte

func (bytesElem) element() {}

type textElem string

func (textElem) element() {}

type nestedElem struct{ t Tuple }

func (nestedElem) element() {}

// intElem holds a signed integer that fits in int64 (payload <= 8 bytes).
type intElem int64

func (intElem) element() {}

// bigIntElem holds an arbitrary-precision integer of any magnitude up to 255
// bytes. It is built by BigInt for any value, and the decoder yields it for
// integers that do not fit in int64. v is never nil.
type bigIntElem struct{ v *big.Int }

func (bigIntElem) element() {}

// float32Elem carries both the numeric value and, optionally, the exact raw
// bit pattern it was constructed from (so strict-mode round-trip can
// reproduce a specific NaN payload).
type float32Elem struct {
	v      float32
	raw    uint32
	hasRaw bool
}

func (float32Elem) element() {}

type float64Elem struct {
	v      float64
	raw    uint64
	hasRaw bool
}

func (float64Elem) element() {}

type uuidElem uuid.UUID

func (uuidElem) element() {}

// VS is a fully-resolved 12-byte versionstamp: a 10-byte commit version
// followed by a 2-byte user-supplied code.
type VS struct {
	Version [10]byte
	Code    uint16
}

type versionstampElem VS

func (versionstampElem) element() {}

// unboundVersionstampElem is a placeholder for a versionstamp that will be
// resolved after the enclosing transaction commits. If hasCode is false, the
// 2-byte user code is supplied later by BakeVersionstamp's caller-provided
// default code.
type unboundVersionstampElem struct {
	code    uint16
	hasCode bool
}

func (unboundVersionstampElem) element() {}

// Exported constructors --------------------------------------------------

// Nil returns the Nil element, which sorts before every other element.
func Nil() Element { return nilElem{} }

// Bool returns a boolean element.
func Bool(v bool) Element { return boolElem(v) }

// Bytes returns a byte-string element. The tuple takes ownership of p's
// contents for encoding purposes; callers should not mutate p afterward.
func Bytes(p []byte) Element { return bytesElem(p) }

// Text returns a UTF-8 text element.
func Text(s string) Element { return textElem(s) }

// Nested returns a nested-tuple element wrapping t.
func Nested(t Tuple) Element { return nestedElem{t: t} }

// Int returns a signed-integer element from an int64.
func Int(v int64) Element { return intElem(v) }

// BigInt returns an arbitrary-precision signed-integer element. v's magnitude
// must fit in 255 bytes or Pack will fail with ErrIntegerTooLarge.
func BigInt(v *big.Int) Element { return bigIntElem{v: new(big.Int).Set(v)} }

// Float32 returns a 32-bit float element.
func Float32(v float32) Element { return float32Elem{v: v} }

// Float32Raw returns a 32-bit float element that round-trips the exact IEEE
// bit pattern bits under strict decoding, even for NaN payloads.
func Float32Raw(bits uint32) Element {
	return float32Elem{v: float32FromBits(bits), raw: bits, hasRaw: true}
}

// Float64 returns a 64-bit float element.
func Float64(v float64) Element { return float64Elem{v: v} }

// Float64Raw returns a 64-bit float element that round-trips the exact IEEE
// bit pattern bits under strict decoding, even for NaN payloads.
func Float64Raw(bits uint64) Element {
	return float64Elem{v: float64FromBits(bits), raw: bits, hasRaw: true}
}

// UUID returns a 16-byte UUID element.
func UUID(id uuid.UUID) Element { return uuidElem(id) }

// Versionstamp returns a fully-resolved versionstamp element.
func Versionstamp(v VS) Element { return versionstampElem(v) }

// IncompleteVersionstamp returns an unbound-versionstamp placeholder element.
// At most one such element (at any nesting depth) may appear in a tuple
// passed to PackWithVersionstamp; supplying an optional code fixes the
// 2-byte user code at encode time, otherwise it is filled in later by
// BakeVersionstamp.
func IncompleteVersionstamp(code ...uint16) Element {
	if len(code) == 0 {
		return unboundVersionstampElem{}
	}
	if len(code) > 1 {
		panic("tuple: IncompleteVersionstamp accepts at most one code")
	}
	return unboundVersionstampElem{code: code[0], hasCode: true}
}
