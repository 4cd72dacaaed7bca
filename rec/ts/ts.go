/*
 * ts.go, part of gosima.
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

/*Package ts reads direct-access time-series files (.ts from SIMO/RIFLEX,
.tda from simo s2xmod).

These files are row-major: the first "row" is an info array whose first
value gives the number of time steps per array (as an int32 on .ts files
and, for some reason, as a float32 on .tda files), the second row is the
time array, and each following row is one response. All rows are float32
and have the same length, so the row count follows from the file size.
*/
package ts

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	sima "github.com/evindal/gosima"
)

// Read reads all responses on a direct-access file into a DB. The variant
// (.ts or .tda) is taken from the file extension. keys gives the response
// names, typically from the accompanying key file (package key); if empty,
// names are generated. Little endianness is assumed; see ReadOrder.
func Read(name string, keys []string) (*sima.DB, error) {
	db, err := ReadOrder(name, binary.LittleEndian, keys)
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	return db, nil
}

// ReadOrder is Read with an explicit byte order.
func ReadOrder(name string, order binary.ByteOrder, keys []string) (*sima.DB, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"os.Open", "ReadOrder"}, true}
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, Error{err.Error(), name, []string{"os.File.Stat", "ReadOrder"}, true}
	}
	size := info.Size()
	if size == 0 {
		return sima.NewDB(), nil
	}
	var ndat int
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".tda" {
		var v float32
		if err := binary.Read(f, order, &v); err != nil {
			return nil, Error{err.Error(), name, []string{"ReadOrder"}, true}
		}
		ndat = int(v)
		if float64(v) != math.Trunc(float64(v)) {
			return nil, Error{fmt.Sprintf("%s: time step count %v is not integral", WrongFormat, v), name, []string{"ReadOrder"}, true}
		}
	} else {
		var v int32
		if err := binary.Read(f, order, &v); err != nil {
			return nil, Error{err.Error(), name, []string{"ReadOrder"}, true}
		}
		ndat = int(v)
	}
	if ndat < 1 {
		return nil, Error{fmt.Sprintf("%s: %d time steps per array", WrongFormat, ndat), name, []string{"ReadOrder"}, true}
	}
	rb := int64(4 * ndat)
	if size%rb != 0 {
		return nil, Error{fmt.Sprintf("%s: size %d is not a multiple of the %d-byte row", WrongFileSize, size, rb), name, []string{"ReadOrder"}, true}
	}
	nrec := int(size / rb) //rows, including the info row and the time array
	nts := nrec - 2
	if nts < 1 {
		return nil, Error{fmt.Sprintf("%s: file holds no responses", WrongFormat), name, []string{"ReadOrder"}, true}
	}
	if len(keys) > 0 && len(keys) != nts {
		return nil, Error{fmt.Sprintf("%d keys given for %d responses", len(keys), nts), name, []string{"ReadOrder"}, true}
	}

	//skip the rest of the info row
	if _, err := f.Seek(rb, io.SeekStart); err != nil {
		return nil, Error{err.Error(), name, []string{"ReadOrder"}, true}
	}
	h := bufio.NewReader(f)
	row := make([]float32, ndat)
	readRow := func(dst []float64) error {
		if err := binary.Read(h, order, row); err != nil {
			return Error{err.Error(), name, []string{"ReadOrder"}, true}
		}
		for i, v := range row {
			dst[i] = float64(v)
		}
		return nil
	}
	time := make([]float64, ndat)
	if err := readRow(time); err != nil {
		return nil, err
	}
	db := sima.NewDB()
	for j := 0; j < nts; j++ {
		x := make([]float64, ndat)
		if err := readRow(x); err != nil {
			return nil, err
		}
		n := fmt.Sprintf("series%03d", j+1)
		if len(keys) > 0 {
			n = keys[j]
		}
		if err := db.Add(&sima.TimeSeries{Name: n, T: time, X: x}); err != nil {
			return nil, errDecorate(err, "ReadOrder")
		}
	}
	return db, nil
}

//Errors

//errDecorate is a helper function that asserts that the error implements
//sima.Error and decorates the error with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(sima.Error)
	err2.Decorate(caller)
	return err2
}

// Error is the general structure for direct-access file errors. It fullfills sima.Error and sima.RecError.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("ts file %s error: %s", err.filename, err.message)
}

// Decorate Adds new information to the error
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file to which the failing read was associated
func (err Error) FileName() string { return err.filename }

// Format returns the format of the file (always "ts") associated to the error
func (err Error) Format() string { return "ts" }

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	WrongFormat   = "Wrong format in the direct-access file"
	WrongFileSize = "File size is not a multiple of the row size"
)
