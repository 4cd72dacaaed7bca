/*
 * dynbin.go, part of gosima.
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

/*Package dynbin reads the general binary time-series files (.bin) exported
from SIMA/RIFLEX Dynmod.

Unlike the element transformation files, these are self-describing: each row
holds one time step, framed by a pair of FORTRAN record markers (int32 byte
counts), with the time in the first payload column and one response per
remaining column. The record width is derived from the leading marker of the
first row; the file length must then be an integer multiple of the record
byte size. The markers are bookkeeping and are never interpreted beyond
that.
*/
package dynbin

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	sima "github.com/evindal/gosima"
)

// Read reads all (or, if ind is given, a subset of) the responses on a
// Dynmod .bin file into a DB. Little endianness is assumed; see ReadOrder.
// keys gives the response names, typically from the accompanying key file
// (package key); if empty, names series001, series002, ... are generated.
// The optional ind are 0-based response sequence numbers selecting which
// responses to keep, in the given order.
func Read(name string, keys []string, ind ...int) (*sima.DB, error) {
	db, err := ReadOrder(name, binary.LittleEndian, keys, ind...)
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	return db, nil
}

// ReadOrder is Read with an explicit byte order, for files produced on
// big-endian hosts. The order can not be inferred from the data.
func ReadOrder(name string, order binary.ByteOrder, keys []string, ind ...int) (*sima.DB, error) {
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
	var marker int32
	if err := binary.Read(f, order, &marker); err != nil {
		return nil, Error{err.Error(), name, []string{"ReadOrder"}, true}
	}
	if marker <= 0 || marker%4 != 0 {
		return nil, Error{fmt.Sprintf("%s: leading record marker is %d", WrongFormat, marker), name, []string{"ReadOrder"}, true}
	}
	nrec := int(marker)/4 + 2 //plus 2 due to the first and last marker columns
	nts := nrec - 3           //responses, excluding the time column
	if nts < 1 {
		return nil, Error{fmt.Sprintf("%s: record holds no responses", WrongFormat), name, []string{"ReadOrder"}, true}
	}
	rb := int64(4 * nrec)
	if size%rb != 0 {
		return nil, Error{fmt.Sprintf("%s: size %d is not a multiple of the %d-byte record", WrongFileSize, size, rb), name, []string{"ReadOrder"}, true}
	}
	ndat := int(size / rb)
	if len(keys) > 0 && len(keys) != nts {
		return nil, Error{fmt.Sprintf("%d keys given for %d responses", len(keys), nts), name, []string{"ReadOrder"}, true}
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, Error{err.Error(), name, []string{"ReadOrder"}, true}
	}

	want := ind
	if len(want) == 0 {
		want = make([]int, nts)
		for j := range want {
			want[j] = j
		}
	}
	pos := make(map[int]int, len(want)) //response index -> output slot
	for k, j := range want {
		if j < 0 || j >= nts {
			return nil, Error{fmt.Sprintf("requested response no. %d, but there are only %d responses on file", j, nts), name, []string{"ReadOrder"}, true}
		}
		pos[j] = k
	}

	time := make([]float64, ndat)
	data := make([][]float64, len(want))
	for k := range data {
		data[k] = make([]float64, ndat)
	}
	h := bufio.NewReader(f)
	row := make([]float32, nrec)
	for i := 0; i < ndat; i++ {
		if err := binary.Read(h, order, row); err != nil {
			return nil, Error{err.Error(), name, []string{"ReadOrder"}, true}
		}
		time[i] = float64(row[1])
		for j, k := range pos {
			data[k][i] = float64(row[2+j])
		}
	}

	db := sima.NewDB()
	for k, j := range want {
		n := fmt.Sprintf("series%03d", j+1)
		if len(keys) > 0 {
			n = keys[j]
		}
		if err := db.Add(&sima.TimeSeries{Name: n, T: time, X: data[k]}); err != nil {
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

// Error is the general structure for .bin file errors. It fullfills sima.Error and sima.RecError.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("bin file %s error: %s", err.filename, err.message)
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

// Format returns the format of the file (always "bin") associated to the error
func (err Error) Format() string { return "bin" }

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	WrongFormat   = "Wrong format in the bin file"
	WrongFileSize = "File size is not a multiple of the record size"
)
