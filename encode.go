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

import "math/big"

// encodeElement writes one element's bytes to b, updating vs the first time
// an unbound versionstamp is encoded. It fails with ErrInvalidInput for an
// unsupported variant, ErrDuplicateVersionstamp for a second unbound
// versionstamp, or ErrIntegerTooLarge for an oversized big integer.
func encodeElement(b *Buffer, e Element, vs *vsState) error {
	switch v := e.(type) {
	case nilElem:
		b.AppendByte(byte(codeNil))
	case boolElem:
		if v {
			b.AppendByte(byte(codeBoolTrue))
		} else {
			b.AppendByte(byte(codeBoolFalse))
		}
	case bytesElem:
		b.AppendByte(byte(codeBytes))
		appendEscaped(b, []byte(v))
	case textElem:
		b.AppendByte(byte(codeText))
		appendEscaped(b, []byte(v))
	case nestedElem:
		return encodeNested(b, v.t, vs)
	case intElem:
		return encodeInt(b, int64(v))
	case bigIntElem:
		return encodeBigInt(b, v.v)
	case float32Elem:
		encodeFloat32(b, v)
	case float64Elem:
		encodeFloat64(b, v)
	case uuidElem:
		b.AppendByte(byte(codeUUID))
		b.AppendBytes(v[:])
	case versionstampElem:
		b.AppendByte(byte(codeVersionstmp))
		b.AppendBytes(v.Version[:])
		var code [2]byte
		code[0] = byte(v.Code >> 8)
		code[1] = byte(v.Code)
		b.AppendBytes(code[:])
	case unboundVersionstampElem:
		if vs.seen {
			return ErrDuplicateVersionstamp
		}
		vs.seen = true
		b.AppendByte(byte(codeVersionstmp))
		vs.stampOffset = b.Len()
		stamp := b.Reserve(10)
		for i := range stamp {
			stamp[i] = 0xFF
		}
		if v.hasCode {
			codeBuf := b.Reserve(2)
			codeBuf[0] = byte(v.code >> 8)
			codeBuf[1] = byte(v.code)
		} else {
			vs.hasCodeOffset = true
			vs.codeOffset = b.Len()
			codeBuf := b.Reserve(2)
			codeBuf[0] = 0
			codeBuf[1] = 0
		}
	default:
		return ErrInvalidInput
	}
	return nil
}

// appendEscaped writes payload with every 0x00 byte doubled to 0x00 0xFF,
// followed by the trailing terminator 0x00.
func appendEscaped(b *Buffer, payload []byte) {
	start := 0
	for i, c := range payload {
		if c == 0x00 {
			b.AppendBytes(payload[start : i+1])
			b.AppendByte(0xFF)
			start = i + 1
		}
	}
	b.AppendBytes(payload[start:])
	b.AppendByte(0x00)
}

// encodeNested writes a nested-tuple element: a 0x05 header, each child
// encoded recursively (with a Nil child followed by an extra 0xFF so it can
// be told apart from the terminator), and a 0x00 terminator.
func encodeNested(b *Buffer, t Tuple, vs *vsState) error {
	b.AppendByte(byte(codeNested))
	if err := encodeChildren(b, t, vs); err != nil {
		return err
	}
	b.AppendByte(0x00)
	return nil
}

// encodeChildren writes each element of t in sequence, appending an extra
// 0xFF after every Nil child so a decoder reading them back inside a nested
// tuple can tell a Nil element apart from the tuple's 0x00 terminator.
func encodeChildren(b *Buffer, t Tuple, vs *vsState) error {
	for _, child := range t {
		if err := encodeElement(b, child, vs); err != nil {
			return err
		}
		if _, ok := child.(nilElem); ok {
			b.AppendByte(0xFF)
		}
	}
	return nil
}

// encodeTopLevel writes t as the top-level packed form: the elements
// concatenated directly with no enclosing 0x05/0x00 frame and no Nil
// disambiguation suffix, since there is no terminator byte at the top level
// for a bare Nil to be confused with.
func encodeTopLevel(b *Buffer, t Tuple, vs *vsState) error {
	for _, child := range t {
		if err := encodeElement(b, child, vs); err != nil {
			return err
		}
	}
	return nil
}

// encodeInt writes a signed integer per the integer framing rules: zero maps
// to codeIntZero; values fitting in 8 bytes use the fixed-width codes
// (codeIntZero +/- byte-length); larger magnitudes use the extended-length
// frame, but int64 can never need more than 8 bytes, so that branch is
// unreachable from this function (see encodeBigInt).
func encodeInt(b *Buffer, n int64) error {
	if n == 0 {
		b.AppendByte(byte(codeIntZero))
		return nil
	}
	var mag uint64
	neg := n < 0
	if neg {
		mag = uint64(-(n + 1)) + 1 // avoid overflow on math.MinInt64
	} else {
		mag = uint64(n)
	}
	length := intByteLen(mag)
	if length == 0 {
		length = 1
	}
	payload := make([]byte, length)
	putUintBE(payload, mag, length)
	if neg {
		b.AppendByte(byte(int(codeIntZero) - length))
		b.AppendBytes(onesComplement(payload))
	} else {
		b.AppendByte(byte(int(codeIntZero) + length))
		b.AppendBytes(payload)
	}
	return nil
}

// encodeBigInt writes a signed integer of arbitrary magnitude (up to 255
// bytes). Magnitudes that fit within 8 bytes still use the fixed-width codes
// so that BigInt(5) and Int(5) produce byte-identical output.
func encodeBigInt(b *Buffer, v *big.Int) error {
	if v.Sign() == 0 {
		b.AppendByte(byte(codeIntZero))
		return nil
	}
	neg := v.Sign() < 0
	length := bigMagnitudeBytes(v)
	if length == 0 {
		length = 1
	}
	if length > maxBigIntBytes {
		return ErrIntegerTooLarge
	}
	abs := new(big.Int).Abs(v)
	if length <= 8 {
		payload := make([]byte, length)
		appendBigMagnitude(payload, abs, length)
		if neg {
			b.AppendByte(byte(int(codeIntZero) - length))
			b.AppendBytes(onesComplement(payload))
		} else {
			b.AppendByte(byte(int(codeIntZero) + length))
			b.AppendBytes(payload)
		}
		return nil
	}
	payload := make([]byte, length)
	appendBigMagnitude(payload, abs, length)
	if neg {
		b.AppendByte(byte(codeNegIntStart))
		b.AppendByte(byte(length ^ 0xFF))
		b.AppendBytes(onesComplement(payload))
	} else {
		b.AppendByte(byte(codePosIntEnd))
		b.AppendByte(byte(length))
		b.AppendBytes(payload)
	}
	return nil
}

func encodeFloat32(b *Buffer, f float32Elem) {
	b.AppendByte(byte(codeFloat32))
	dst := b.Reserve(4)
	var raw uint32
	if f.hasRaw {
		raw = f.raw
	} else {
		raw = float32Bits(f.v)
	}
	putBE32(dst, raw)
	floatOrderEncode(dst)
}

func encodeFloat64(b *Buffer, f float64Elem) {
	b.AppendByte(byte(codeFloat64))
	dst := b.Reserve(8)
	var raw uint64
	if f.hasRaw {
		raw = f.raw
	} else {
		raw = float64Bits(f.v)
	}
	putBE64(dst, raw)
	floatOrderEncode(dst)
}
