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

// Package woff converts WOFF 1.0 font files into plain sfnt data.
//
// The WOFF format is described at https://www.w3.org/TR/WOFF/ .
// Extended metadata and private data blocks are ignored.
package woff

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/bits"
)

const (
	signature  = 0x774F4646 // "wOFF"
	signature2 = 0x774F4632 // "wOF2"

	headerSize    = 44
	dirEntrySize  = 20
	sfntEntrySize = 16
)

// ErrWOFF2 is returned by ToSFNT for WOFF 2.0 files.
var ErrWOFF2 = errors.New("WOFF 2.0 fonts are not supported")

// MalformedFileError indicates that a WOFF file could not be decoded.
type MalformedFileError struct {
	Err error
}

func (err *MalformedFileError) Error() string {
	return "malformed WOFF file: " + err.Err.Error()
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

func malformed(format string, args ...any) error {
	return &MalformedFileError{Err: fmt.Errorf(format, args...)}
}

// IsWOFF reports whether data starts with a WOFF 1.0 or WOFF 2.0 signature.
func IsWOFF(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	sig := binary.BigEndian.Uint32(data)
	return sig == signature || sig == signature2
}

type tableEntry struct {
	tag        uint32
	offset     uint32
	compLength uint32
	origLength uint32
	checksum   uint32
}

// ToSFNT unpacks a WOFF 1.0 file.  The table data of the result is
// identical to the data of the font which was packed into the WOFF file.
func ToSFNT(data []byte) ([]byte, error) {
	if len(data) < headerSize {
		return nil, malformed("header too short")
	}
	switch binary.BigEndian.Uint32(data) {
	case signature:
		// pass
	case signature2:
		return nil, ErrWOFF2
	default:
		return nil, malformed("invalid signature")
	}

	flavor := binary.BigEndian.Uint32(data[4:])
	length := binary.BigEndian.Uint32(data[8:])
	numTables := int(binary.BigEndian.Uint16(data[12:]))
	if int64(length) != int64(len(data)) {
		return nil, malformed("length %d does not match file size %d", length, len(data))
	}
	if numTables == 0 {
		return nil, malformed("no tables")
	}
	if headerSize+numTables*dirEntrySize > len(data) {
		return nil, malformed("table directory truncated")
	}

	tables := make([]tableEntry, numTables)
	for i := range tables {
		buf := data[headerSize+i*dirEntrySize:]
		t := tableEntry{
			tag:        binary.BigEndian.Uint32(buf[0:]),
			offset:     binary.BigEndian.Uint32(buf[4:]),
			compLength: binary.BigEndian.Uint32(buf[8:]),
			origLength: binary.BigEndian.Uint32(buf[12:]),
			checksum:   binary.BigEndian.Uint32(buf[16:]),
		}
		if uint64(t.offset)+uint64(t.compLength) > uint64(len(data)) {
			return nil, malformed("table %q extends beyond end of file", tagString(t.tag))
		}
		if t.compLength > t.origLength {
			return nil, malformed("table %q: compressed length exceeds original length", tagString(t.tag))
		}
		if i > 0 && t.tag <= tables[i-1].tag {
			return nil, malformed("table directory not sorted")
		}
		tables[i] = t
	}

	out := &bytes.Buffer{}
	es := bits.Len(uint(numTables)) - 1
	searchRange := (1 << es) * sfntEntrySize
	var hdr [12]byte
	binary.BigEndian.PutUint32(hdr[0:], flavor)
	binary.BigEndian.PutUint16(hdr[4:], uint16(numTables))
	binary.BigEndian.PutUint16(hdr[6:], uint16(searchRange))
	binary.BigEndian.PutUint16(hdr[8:], uint16(es))
	binary.BigEndian.PutUint16(hdr[10:], uint16(numTables*sfntEntrySize-searchRange))
	out.Write(hdr[:])

	pos := uint32(len(hdr) + numTables*sfntEntrySize)
	for _, t := range tables {
		var rec [sfntEntrySize]byte
		binary.BigEndian.PutUint32(rec[0:], t.tag)
		binary.BigEndian.PutUint32(rec[4:], t.checksum)
		binary.BigEndian.PutUint32(rec[8:], pos)
		binary.BigEndian.PutUint32(rec[12:], t.origLength)
		out.Write(rec[:])
		pos += pad4(t.origLength)
	}

	var zeros [3]byte
	for _, t := range tables {
		body, err := tableData(data, t)
		if err != nil {
			return nil, err
		}
		out.Write(body)
		out.Write(zeros[:pad4(t.origLength)-t.origLength])
	}

	return out.Bytes(), nil
}

func tableData(data []byte, t tableEntry) ([]byte, error) {
	raw := data[t.offset : t.offset+t.compLength]
	if t.compLength == t.origLength {
		return raw, nil
	}

	r, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, malformed("table %q: %w", tagString(t.tag), err)
	}
	defer r.Close()

	body := make([]byte, t.origLength)
	_, err = io.ReadFull(r, body)
	if err != nil {
		return nil, malformed("table %q: %w", tagString(t.tag), err)
	}
	var extra [1]byte
	if n, _ := r.Read(extra[:]); n > 0 {
		return nil, malformed("table %q: decompressed data too long", tagString(t.tag))
	}
	return body, nil
}

func pad4(x uint32) uint32 {
	return (x + 3) &^ 3
}

func tagString(tag uint32) string {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], tag)
	return string(b[:])
}
