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

// Package profile writes CPU and memory profiles for the command line tools.
package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Session is an active profiling session.
type Session struct {
	cpu     *os.File
	memName string
}

// Start begins CPU profiling if cpuName is non-empty.  If memName is
// non-empty, Stop writes an allocation profile to this file.
func Start(cpuName, memName string) (*Session, error) {
	s := &Session{memName: memName}
	if cpuName == "" {
		return s, nil
	}

	f, err := os.Create(cpuName)
	if err != nil {
		return nil, fmt.Errorf("could not create CPU profile: %w", err)
	}
	err = pprof.StartCPUProfile(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("could not start CPU profile: %w", err)
	}
	s.cpu = f
	return s, nil
}

// Stop ends the session.  It is safe to call Stop on a nil Session.
func (s *Session) Stop() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.cpu != nil {
		pprof.StopCPUProfile()
		errs = append(errs, s.cpu.Close())
		s.cpu = nil
	}
	if s.memName != "" {
		errs = append(errs, writeAllocs(s.memName))
		s.memName = ""
	}
	return errors.Join(errs...)
}

func writeAllocs(fname string) error {
	allocs := pprof.Lookup("allocs")
	if allocs == nil {
		return errors.New("could not lookup memory profile")
	}

	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("could not create memory profile: %w", err)
	}
	runtime.GC()
	err = allocs.WriteTo(f, 0)
	if err != nil {
		f.Close()
		return fmt.Errorf("could not write memory profile: %w", err)
	}
	return f.Close()
}
