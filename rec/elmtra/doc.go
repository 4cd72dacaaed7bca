/*
 * doc.go, part of gosima.
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

/*Package elmtra reads and writes the element transformation matrix files
(n_elmtra.bin) exported by RIFLEX Dynmod.

The file is a flat sequence of fixed-width records, one per time step, with
no header. Every value is a 4-byte IEEE-754 single precision float. With the
default column map the record is 165 columns (660 bytes) wide:

	column  1        opaque producer-internal value
	column  2        elapsed time
	columns 3-11     DUMMY: 9 transformation matrix components
	columns 12-20    ML01
	...              9 columns per channel, ML02 through ML16
	columns 156-164  ML17
	column  165      opaque producer-internal value

The 9 components per channel are the column-major flattening of the 3x3
matrix T mapping global to local coordinates, x_local = T*x_global:
T11 T21 T31 T12 T22 T32 T13 T23 T33.

The files record neither their endianness nor their column count, so both
come from the sima.Layout given to New; nothing is inferred from the data. A
plain file whose size is not a multiple of the record size is rejected
before any record is decoded, and a record cut short by the end of the
stream is a fatal error. There is no tolerance policy for malformed
trailing data.
*/
package elmtra
