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

/*Package sima is the main package of the goSIMA library. It provides the core
data structures for time series exported from the SIMA/RIFLEX Dynmod
hydrodynamic simulation tools, and facilities for reading and writing the
binary formats those tools produce.


	**goSIMA Capabilities**


    Reads the fixed-layout element transformation record files
	(n_elmtra.bin) record by record, with the column map kept as data
	rather than hard-coded offsets.

    Writes the same format back, bit-exact for the stored floats.

    Reads the self-describing Dynmod .bin response files and the
	direct-access .ts/.tda files into a name-addressed time series
	collection.

    Parses the plain-text key files that accompany the binary exports,
	producing response names such as Lin01_Seg001_El001_Te.

    Handles gzip, flate, lzw and zstd compressed record streams
	transparently, selected by file extension.

    Represents the per-channel 3x3 global-to-local transformation
	matrices on top of gonum (package t3).

    Statistics (package simastat), FFT filtering (package simafilt),
	rainflow cycle counting (package rainflow), S-N fatigue damage
	(package fatigue) and line plots (package simaplot) for the
	decoded series.

The library uses gonum (gonum.org/v1/gonum) for all linear algebra and
statistics, and never interprets the FORTRAN bookkeeping columns of the
binary files; they are carried verbatim.
*/
package sima
