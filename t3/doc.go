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

//Package t3 implements the 3x3 transformation matrices stored per channel in
//the Dynmod record files, on top of gonum. A matrix T maps global to local
//coordinates, x_local = T*x_global, and travels on disk as 9 single-precision
//values in column-major order: T11 T21 T31 T12 T22 T32 T13 T23 T33.
package t3
