/*
 * key.go, part of gosima.
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

/*Package key parses the plain-text key files that accompany the binary
time-series exports, turning their storage tables into response names such
as Lin01_Seg001_El001_Te.

Key files are legends, not data: for the .bin exports they list, per line
and element, how many degrees of freedom are stored, preceded by a block
describing what each DOF is. The DOF descriptions are free text, so unknown
descriptions fall back to a DOF<xx> suffix.
*/
package key

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadTsKeys reads the key file for a direct-access time-series file.
// filetype is "ts" (no info array), "tda" (leading info array) or "dis"
// (cycle distributions, no time array). Comment lines (starting with **
// or ') and the END line are skipped; the time array entry is dropped for
// "ts" and "tda" since each series carries its own time vector.
func ReadTsKeys(path, filetype string) ([]string, error) {
	switch filetype {
	case "ts", "tda", "dis":
	default:
		return nil, Error{fmt.Sprintf("unknown file format specified: %s", filetype), path, []string{"ReadTsKeys"}, true}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Error{err.Error(), path, []string{"os.ReadFile", "ReadTsKeys"}, true}
	}
	var keys []string
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "**") || strings.HasPrefix(trimmed, "'") {
			continue
		}
		if strings.EqualFold(trimmed, "END") {
			continue
		}
		keys = append(keys, trimmed)
	}
	if filetype == "tda" {
		//skip the info array entry
		if len(keys) > 0 {
			keys = keys[1:]
		}
	}
	if filetype == "ts" || filetype == "tda" {
		//drop the time array entry
		if len(keys) > 0 {
			keys = keys[1:]
		}
	}
	return keys, nil
}

// ReadBinKeys reads the key file associated with a .bin (or .asc) export
// from Dynmod and returns one name per stored response, in storage order.
//
// This parser does not presently handle all kinds of response listings.
// When an unknown DOF description is encountered, the key suffix will be
// DOF<xx>.
func ReadBinKeys(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Error{err.Error(), path, []string{"os.ReadFile", "ReadBinKeys"}, true}
	}
	lines := strings.Split(string(data), "\n")

	//extract 'noddis', 'elmsfo', 'elmfor', ... from the file name
	base := filepath.Base(path)
	parts := strings.Split(base, "_")
	keyfiletype := strings.ToLower(strings.TrimSuffix(parts[len(parts)-1], filepath.Ext(base)))
	elkey := ""
	switch keyfiletype {
	case "noddis":
		elkey = "No"
	case "elmsfo", "elmfor":
		elkey = "El"
	}

	suffices := dofSuffices(lines)
	if suffices == nil {
		return nil, Error{"no DOF description block on key file", path, []string{"ReadBinKeys"}, true}
	}

	//the storage table starts after the separator line
	istart := -1
	for i, l := range lines {
		if strings.Contains(l, "------------------------------------------------------") {
			istart = i + 1
			break
		}
	}
	if istart < 0 {
		return nil, Error{"no storage table separator on key file", path, []string{"ReadBinKeys"}, true}
	}

	var keys []string
	for _, l := range lines[istart:] {
		if strings.TrimSpace(l) == "" || strings.Contains(l, "ignore") {
			continue
		}
		f := strings.Fields(l)
		if len(f) < 4 {
			return nil, Error{fmt.Sprintf("malformed storage line %q", l), path, []string{"ReadBinKeys"}, true}
		}
		var nk int
		if _, err := fmt.Sscanf(f[3], "%d", &nk); err != nil {
			return nil, Error{fmt.Sprintf("malformed storage line %q: %s", l, err.Error()), path, []string{"ReadBinKeys"}, true}
		}
		if nk > len(suffices) {
			return nil, Error{fmt.Sprintf("storage line %q stores %d DOFs, only %d described", l, nk, len(suffices)), path, []string{"ReadBinKeys"}, true}
		}
		a := f[0]
		if isDigits(a) {
			a = "Lin" + zfill(a, 2)
		}
		b := "Seg" + zfill(f[1], 3)
		c := elkey + zfill(f[2], 3)
		for _, suff := range suffices[:nk] {
			keys = append(keys, strings.Join([]string{a, b, c, suff}, "_"))
		}
	}
	return keys, nil
}

//dofSuffices derives the response key suffices ("Te", "My1", ...) from the
//DOF description block of a key file, or nil if there is none.
//If there are two blocks, the first will be bar elements, for which only the
//axial tension is stored. That dof will also be the first dof for beam
//elements, if there are any, so only the last block needs to be parsed.
func dofSuffices(lines []string) []string {
	ind := -1
	for i, l := range lines {
		if strings.Contains(l, "following applies") {
			ind = i
		}
	}
	if ind < 0 {
		return nil
	}
	var descr []string
	for _, l := range lines[ind:] {
		if strings.Contains(l, "DOF") {
			eq := strings.LastIndex(l, "=")
			if eq < 0 {
				continue
			}
			descr = append(descr, strings.TrimSpace(l[eq+1:]))
		}
	}
	suffices := make([]string, len(descr))
	for i, ds := range descr {
		f := strings.Fields(ds)
		switch {
		case strings.HasPrefix(ds, "displacement") && len(f) > 2:
			suffices[i] = strings.ToUpper(f[2]) + "d"
		case strings.HasPrefix(ds, "Axial"):
			suffices[i] = "Te"
		case strings.HasPrefix(ds, "Torsional"):
			suffices[i] = "Mx"
		case strings.HasPrefix(ds, "Mom."):
			suffices[i] = "M" + axisLetter(f, "axis") + f[len(f)-1]
		case strings.HasPrefix(ds, "Shear"):
			suffices[i] = "S" + axisLetter(f, "direction") + f[len(f)-1]
		default:
			suffices[i] = fmt.Sprintf("DOF%02d", i+1)
		}
	}
	return suffices
}

//axisLetter returns the first character of the field containing the given
//marker, e.g. "y" from "y-axis,". Falls back to "x" on malformed lines.
func axisLetter(fields []string, marker string) string {
	for _, w := range fields {
		if strings.Contains(w, marker) {
			return w[:1]
		}
	}
	return "x"
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

//zfill left-pads a number string with zeros to width n.
func zfill(s string, n int) string {
	for len(s) < n {
		s = "0" + s
	}
	return s
}

//Errors

// Error is the general structure for key file errors. It fullfills sima.Error.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("key file %s error: %s", err.filename, err.message)
}

// Decorate Adds new information to the error
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file to which the failing parse was associated
func (err Error) FileName() string { return err.filename }

// Format returns the format of the file (always "key") associated to the error
func (err Error) Format() string { return "key" }

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }
