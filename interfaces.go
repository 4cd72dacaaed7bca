/*
 * interfaces.go, part of gosima.
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

// RecordSource is the interface for anything that produces fixed-layout
// records one at a time, such as an open n_elmtra.bin file.
type RecordSource interface {

	//Is the source ready to be read?
	Readable() bool

	//Next decodes the next record into rec, or discards it if rec is nil.
	//The end of the stream is signaled with an error satisfying
	//LastRecordError.
	Next(rec *Record) error

	//Returns the number of named channels per record.
	Len() int
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else. If passed an empty string, Decorate should just return the current
// decoration slice, not add the empty string to it.
type Error interface {
	Error() string
	Decorate(string) []string
}

// RecError is the interface for errors raised while decoding record files.
type RecError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastRecordError has a useless function to distinguish the harmless errors (i.e. the end of the record stream)
// so they can be filtered in a typeswitch that looks for this interface.
type LastRecordError interface {
	RecError
	NormalLastRecordTermination() //does nothing, just to separate this interface from other RecError's
}
