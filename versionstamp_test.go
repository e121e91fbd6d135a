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

func TestPackBoundVersionstamp(t *testing.T) {
	var version [10]byte
	for i := range version {
		version[i] = 0xE3
	}
	packed, err := Pack(Tuple{Versionstamp(VS{Version: version, Code: 0xE3E3})})
	if err != nil {
		t.Fatal(err)
	}
	want := append([]byte{0x33}, bytes.Repeat([]byte{0xE3}, 12)...)
	if !bytes.Equal(packed, want) {
		t.Fatalf("got % 02x, want % 02x", packed, want)
	}
}

func TestPackWithVersionstamp(t *testing.T) {
	v, err := PackWithVersionstamp(Tuple{Text("x"), IncompleteVersionstamp(7)})
	if err != nil {
		t.Fatalf("PackWithVersionstamp: %v", err)
	}
	if v.HasCodeOffset {
		t.Fatalf("element supplied its own code; HasCodeOffset should be false")
	}
	if v.Data[v.StampOffset-1] != 0x33 {
		t.Fatalf("StampOffset does not follow the versionstamp type code")
	}
	var commit [10]byte
	for i := range commit {
		commit[i] = byte(i)
	}
	BakeVersionstampBuffer(v, commit[:], nil)

	got, err := Unpack(v.Data, false)
	if err != nil {
		t.Fatal(err)
	}
	vs, ok := got[1].(versionstampElem)
	if !ok {
		t.Fatalf("got %T, want a bound versionstamp", got[1])
	}
	if vs.Version != commit || vs.Code != 7 {
		t.Errorf("got version=%v code=%d, want version=%v code=7", vs.Version, vs.Code, commit)
	}
}

func TestPackWithVersionstampMissingCode(t *testing.T) {
	v, err := PackWithVersionstamp(Tuple{IncompleteVersionstamp()})
	if err != nil {
		t.Fatal(err)
	}
	if !v.HasCodeOffset {
		t.Fatal("no code supplied; HasCodeOffset should be true")
	}
	var commit [10]byte
	BakeVersionstampBuffer(v, commit[:], []byte{0x00, 0x01})
	got, err := Unpack(v.Data, false)
	if err != nil {
		t.Fatal(err)
	}
	vs := got[0].(versionstampElem)
	if vs.Code != 1 {
		t.Errorf("got code %d, want 1", vs.Code)
	}
}

func TestBakeVersionstamp(t *testing.T) {
	tup := Tuple{Text("k"), Nested(Tuple{IncompleteVersionstamp()})}
	var version [10]byte
	for i := range version {
		version[i] = 9
	}
	var code uint16 = 42
	if err := BakeVersionstamp(tup, version, &code); err != nil {
		t.Fatal(err)
	}
	nested := tup[1].(nestedElem)
	vs := nested.t[0].(versionstampElem)
	if vs.Version != version || vs.Code != 42 {
		t.Errorf("got %+v", vs)
	}
}

func TestPackWithVersionstampUnexpected(t *testing.T) {
	_, err := PackWithVersionstamp(Tuple{Int(1)})
	if err != ErrUnexpectedVersionstamp {
		t.Fatalf("got %v, want ErrUnexpectedVersionstamp", err)
	}
}

// TestPackWithVersionstampDuplicateNested covers property 7: at most one
// unbound versionstamp may appear in a tuple, at any nesting depth.
func TestPackWithVersionstampDuplicateNested(t *testing.T) {
	_, err := PackWithVersionstamp(Tuple{
		IncompleteVersionstamp(),
		Nested(Tuple{IncompleteVersionstamp()}),
	})
	if err != ErrDuplicateVersionstamp {
		t.Fatalf("got %v, want ErrDuplicateVersionstamp", err)
	}
}
