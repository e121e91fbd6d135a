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
	"bytes"
	"testing"
)

func TestRange(t *testing.T) {
	begin, end, err := Range(Tuple{Text("x")})
	if err != nil {
		t.Fatal(err)
	}
	wantBegin := []byte{0x02, 'x', 0x00, 0x00}
	wantEnd := []byte{0x02, 'x', 0x00, 0xFF}
	if !bytes.Equal(begin, wantBegin) {
		t.Errorf("begin = % 02x, want % 02x", begin, wantBegin)
	}
	if !bytes.Equal(end, wantEnd) {
		t.Errorf("end = % 02x, want % 02x", end, wantEnd)
	}
}

func TestRangeContainsExtensions(t *testing.T) {
	begin, end, err := Range(Tuple{Text("x")})
	if err != nil {
		t.Fatal(err)
	}
	child, err := Pack(Tuple{Text("x"), Int(5)})
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Compare(begin, child) > 0 || bytes.Compare(child, end) >= 0 {
		t.Errorf("Pack({x,5}) = % 02x not within [% 02x, % 02x)", child, begin, end)
	}
}
