// seehuhn.de/go/font2png - export font glyphs as PNG images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package woff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"
	"seehuhn.de/go/sfnt"
)

// sfntTables returns the table data of an sfnt file, keyed by tag.
func sfntTables(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	n := int(binary.BigEndian.Uint16(data[4:]))
	res := make(map[string][]byte, n)
	for i := range n {
		rec := data[12+i*16:]
		tag := string(rec[0:4])
		offset := binary.BigEndian.Uint32(rec[8:])
		length := binary.BigEndian.Uint32(rec[12:])
		if uint64(offset)+uint64(length) > uint64(len(data)) {
			t.Fatalf("table %q out of range", tag)
		}
		res[tag] = data[offset : offset+length]
	}
	return res
}

func TestToSFNT(t *testing.T) {
	data, err := os.ReadFile("testdata/Go-Regular.woff")
	if err != nil {
		t.Fatal(err)
	}
	if !IsWOFF(data) {
		t.Fatal("WOFF signature not recognised")
	}

	out, err := ToSFNT(data)
	if err != nil {
		t.Fatal(err)
	}
	if IsWOFF(out) {
		t.Error("result still has a WOFF signature")
	}

	ttf := []byte(goregular.TTF)
	if d := cmp.Diff(sfntTables(t, ttf), sfntTables(t, out)); d != "" {
		t.Errorf("table data differs (-want +got):\n%s", d)
	}
	if !bytes.Equal(out[:12], ttf[:12]) {
		t.Errorf("offset table: got % x, want % x", out[:12], ttf[:12])
	}

	f, err := sfnt.Read(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if f.NumGlyphs() == 0 {
		t.Error("no glyphs")
	}
}

func TestIsWOFF(t *testing.T) {
	tests := []struct {
		data []byte
		want bool
	}{
		{[]byte("wOFF...."), true},
		{[]byte("wOF2...."), true},
		{[]byte("wOF"), false},
		{[]byte{0, 1, 0, 0, 0, 14}, false},
		{[]byte("OTTO"), false},
	}
	for _, test := range tests {
		if got := IsWOFF(test.data); got != test.want {
			t.Errorf("%q: got %t, want %t", test.data, got, test.want)
		}
	}
}

func TestToSFNTErrors(t *testing.T) {
	good, err := os.ReadFile("testdata/Go-Regular.woff")
	if err != nil {
		t.Fatal(err)
	}

	withSignature := func(sig string) []byte {
		data := bytes.Clone(good)
		copy(data, sig)
		return data
	}

	// point the first table beyond the end of the file
	badOffset := bytes.Clone(good)
	binary.BigEndian.PutUint32(badOffset[headerSize+4:], uint32(len(good)))

	// corrupt the compressed glyf data
	badZlib := bytes.Clone(good)
	for i := range 14 {
		entry := badZlib[headerSize+i*dirEntrySize:]
		if string(entry[:4]) == "glyf" {
			offset := binary.BigEndian.Uint32(entry[4:])
			copy(badZlib[offset:], []byte{0xFF, 0xFF, 0xFF, 0xFF})
		}
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"short", good[:20]},
		{"signature", withSignature("true")},
		{"length", good[:len(good)-4]},
		{"offset", badOffset},
		{"zlib", badZlib},
	}
	for _, test := range tests {
		_, err := ToSFNT(test.data)
		var wErr *MalformedFileError
		if !errors.As(err, &wErr) {
			t.Errorf("%s: expected MalformedFileError, got %v", test.name, err)
		}
	}

	_, err = ToSFNT(withSignature("wOF2"))
	if !errors.Is(err, ErrWOFF2) {
		t.Errorf("expected ErrWOFF2, got %v", err)
	}
}
