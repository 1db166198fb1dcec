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

// Package buildinfo reports the module version a tool was built from.
package buildinfo

import (
	"runtime/debug"
)

// Info describes the main module of the running binary.
type Info struct {
	Path     string
	Version  string // module version, or "" for development builds
	Revision string // shortened VCS revision, if known
	Dirty    bool
}

// Read extracts the module information from the running binary.
// The second return value is false if no information is available.
func Read() (*Info, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, false
	}

	info := &Info{Path: bi.Main.Path}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	if len(info.Revision) > 8 {
		info.Revision = info.Revision[:8]
	}
	return info, true
}

// Label returns the version string, the VCS revision, or "".
func (info *Info) Label() string {
	if info.Version != "" {
		return info.Version
	}
	if info.Revision == "" {
		return ""
	}
	if info.Dirty {
		return info.Revision + "+dirty"
	}
	return info.Revision
}

// Short returns a one-line description of a tool, for example
// "font2png (seehuhn.de/go/font2png v0.1.0)".
func Short(toolName string) string {
	info, ok := Read()
	if !ok {
		return toolName
	}
	label := info.Label()
	if label == "" {
		return toolName
	}
	return toolName + " (" + info.Path + " " + label + ")"
}
