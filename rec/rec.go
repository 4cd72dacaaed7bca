/*
 * rec.go, part of gosima.
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

//Package rec ties the format-specific readers together, dispatching on the
//file extension the way the exporting tools name their files.
package rec

import (
	"fmt"
	"path/filepath"
	"strings"

	sima "github.com/evindal/gosima"
	"github.com/evindal/gosima/rec/dynbin"
	"github.com/evindal/gosima/rec/ts"
)

// ReadDB reads all time series from a file into a DB, choosing the reader
// from the file extension: .bin for Dynmod binary response files, .ts and
// .tda for direct-access files. The fixed-layout transformation record
// files are record-oriented, not series-oriented, and are read with
// rec/elmtra instead.
func ReadDB(name string, keys []string) (*sima.DB, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".bin":
		return dynbin.Read(name, keys)
	case ".ts", ".tda":
		return ts.Read(name, keys)
	}
	return nil, Error{fmt.Sprintf("%s: no time series reader for this extension", UnknownFormat), name, []string{"ReadDB"}, true}
}

//Errors

// Error is the structure for dispatch errors. It fullfills sima.Error and sima.RecError.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("time series file %s error: %s", err.filename, err.message)
}

// Decorate Adds new information to the error
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file that could not be dispatched
func (err Error) FileName() string { return err.filename }

// Format returns the format associated to the error, which for dispatch errors is unknown
func (err Error) Format() string { return "" }

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	UnknownFormat = "No reader for the file extension"
)
