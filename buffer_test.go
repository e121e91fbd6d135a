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

func TestBufferAppend(t *testing.T) {
	b := NewBuffer(0)
	b.AppendByte(0x01)
	b.AppendBytes([]byte{0x02, 0x03})
	if !bytes.Equal(b.Bytes(), []byte{0x01, 0x02, 0x03}) {
		t.Fatalf("got % 02x", b.Bytes())
	}
	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}
}

func TestBufferReserve(t *testing.T) {
	b := NewBuffer(0)
	b.AppendByte(0xAA)
	window := b.Reserve(4)
	copy(window, []byte{1, 2, 3, 4})
	if !bytes.Equal(b.Finish(), []byte{0xAA, 1, 2, 3, 4}) {
		t.Fatalf("got % 02x", b.Bytes())
	}
}

func TestBufferReset(t *testing.T) {
	b := NewBuffer(0)
	b.AppendBytes([]byte{1, 2, 3})
	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("Len() = %d after Reset, want 0", b.Len())
	}
}

func TestBufferGrowthBeyondInitialCap(t *testing.T) {
	b := NewBuffer(0)
	payload := bytes.Repeat([]byte{0x7A}, initialBufferCap*4)
	b.AppendBytes(payload)
	if !bytes.Equal(b.Bytes(), payload) {
		t.Fatalf("buffer contents corrupted across growth")
	}
}
