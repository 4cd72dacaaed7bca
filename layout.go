/*
 * layout.go, part of gosima.
 *
 * Copyright 2023 Eirik Vindal <evindal{at}protonDOTme>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package sima

import (
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ChannelWidth is the number of values each named channel occupies in a
// record: the column-wise flattening of a 3x3 transformation matrix.
const ChannelWidth = 9

// ValueBytes is the size of each stored value. All values are IEEE-754
// single precision floats.
const ValueBytes = 4

// Slot names one channel group of a record and places it in the column map.
// Columns are numbered from 1, as in the key files that document the layout.
type Slot struct {
	Name  string `yaml:"name"`
	Start int    `yaml:"start"`
	Count int    `yaml:"count"`
}

// Layout is the static column map of a fixed-layout record file: column 1
// holds an opaque producer-internal value, column 2 the elapsed time, then
// the channel slots, and a final opaque column closes the record. The
// endianness of the stored floats is not recorded in the files themselves,
// so it travels with the layout ("little", the default, or "big").
type Layout struct {
	Endian   string `yaml:"endian"`
	Channels []Slot `yaml:"channels"`
}

// Elmtra returns the column map for the element transformation matrix files
// (n_elmtra.bin) written by RIFLEX Dynmod: 18 channels of 9 degrees of
// freedom each, 165 columns in total.
func Elmtra() *Layout {
	names := []string{
		"DUMMY", "ML01", "ML02", "ML03", "ML04", "ML05", "ML06",
		"ML07", "ML08", "ML09", "ML10", "ML11", "ML12", "ML13",
		"ML14", "ML15", "ML16", "ML17",
	}
	ch := make([]Slot, len(names))
	for i, n := range names {
		ch[i] = Slot{Name: n, Start: 3 + i*ChannelWidth, Count: ChannelWidth}
	}
	return &Layout{Channels: ch}
}

// ReadLayout reads a column map from a YAML file and checks it.
func ReadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newError("ReadLayout", "can't read layout file %s: %s", path, err.Error())
	}
	L := new(Layout)
	if err := yaml.Unmarshal(data, L); err != nil {
		return nil, newError("ReadLayout", "can't parse layout file %s: %s", path, err.Error())
	}
	if err := L.Check(); err != nil {
		return nil, errDecorate(err, "ReadLayout")
	}
	return L, nil
}

// Check verifies that the layout is well formed: a valid endianness tag,
// at least one channel, unique names, and channels covering columns 3
// onwards contiguously, 9 values each.
func (L *Layout) Check() error {
	switch strings.ToLower(L.Endian) {
	case "", "little", "big":
	default:
		return newError("Layout.Check", "unknown endianness %q", L.Endian)
	}
	if len(L.Channels) == 0 {
		return newError("Layout.Check", "layout has no channels")
	}
	seen := make(map[string]bool, len(L.Channels))
	next := 3 //columns 1 and 2 are the leading bookkeeping value and the time
	for _, c := range L.Channels {
		if c.Name == "" {
			return newError("Layout.Check", "channel starting at column %d has no name", c.Start)
		}
		if seen[c.Name] {
			return newError("Layout.Check", "duplicated channel name %s", c.Name)
		}
		seen[c.Name] = true
		if c.Count != ChannelWidth {
			return newError("Layout.Check", "channel %s has %d values, want %d", c.Name, c.Count, ChannelWidth)
		}
		if c.Start != next {
			return newError("Layout.Check", "channel %s starts at column %d, want %d", c.Name, c.Start, next)
		}
		next += c.Count
	}
	return nil
}

// Columns returns the total number of columns per record, including the
// two opaque bookkeeping columns and the time column.
func (L *Layout) Columns() int {
	return 3 + ChannelWidth*len(L.Channels)
}

// RecordBytes returns the size of one encoded record.
func (L *Layout) RecordBytes() int {
	return ValueBytes * L.Columns()
}

// Order returns the byte order of the stored floats.
func (L *Layout) Order() binary.ByteOrder {
	if strings.ToLower(L.Endian) == "big" {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Names returns the channel names in column order.
func (L *Layout) Names() []string {
	ret := make([]string, len(L.Channels))
	for i, c := range L.Channels {
		ret[i] = c.Name
	}
	return ret
}

// errDecorate is a helper function that asserts that the error implements
// sima.Error and decorates it with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return fmt.Errorf("%s: %s", caller, err.Error())
	}
	err2.Decorate(caller)
	return err2
}
