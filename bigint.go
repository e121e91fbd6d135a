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

// maxBigIntBytes is the inclusive ceiling on a big-integer magnitude's
// big-endian byte length: the extended-length frame (codes 0x0B / 0x1D)
// stores the length in a single byte, so 255 is the largest representable
// value.
const maxBigIntBytes = 255

// bigMagnitudeBytes returns the minimum big-endian byte length needed to
// represent v's absolute value. Zero never reaches this helper (the zero
// int is encoded via codeIntZero by the caller).
func bigMagnitudeBytes(v *big.Int) int {
	return (v.BitLen() + 7) / 8
}

// appendBigMagnitude writes the big-endian magnitude of v (which must be
// non-negative) into dst in place, left-padded with zeros to exactly n bytes.
func appendBigMagnitude(dst []byte, v *big.Int, n int) {
	raw := v.Bytes() // big-endian, no leading zeros, len == bigMagnitudeBytes(v)
	pad := n - len(raw)
	for i := 0; i < pad; i++ {
		dst[i] = 0
	}
	copy(dst[pad:], raw)
}
