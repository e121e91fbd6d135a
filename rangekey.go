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

// Range returns the [begin, end) byte-string range that contains every key
// packed from a tuple having prefix as its leading elements. begin is
// Pack(prefix) with a 0x00 appended, and end is Pack(prefix) with a 0xFF
// appended; since 0xFF never appears as the first byte of an element's own
// type code and 0x00 is the lowest type code (Nil's), these two bound every
// continuation of prefix without including prefix's own packed bytes (a Nil
// continuation packs to exactly begin, which the range includes).
func Range(prefix Tuple) (begin, end []byte, err error) {
	packed, err := Pack(prefix)
	if err != nil {
		return nil, nil, err
	}
	begin = make([]byte, len(packed)+1)
	copy(begin, packed)
	begin[len(packed)] = 0x00
	end = make([]byte, len(packed)+1)
	copy(end, packed)
	end[len(packed)] = 0xFF
	return begin, end, nil
}
