/*
 * timeseries.go, part of gosima.
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
	"path"
)

// TimeSeries is one named response sampled at the instants in T. T and X
// always have the same length. Series read from the same file share the
// backing time slice, so callers should treat T as read-only.
type TimeSeries struct {
	Name string
	T    []float64
	X    []float64
}

// Len returns the number of samples.
func (ts *TimeSeries) Len() int {
	return len(ts.X)
}

// Dt returns the average time step, or 0 for series with fewer than
// two samples. The exporters write equidistant time steps so the average
// is also the actual step.
func (ts *TimeSeries) Dt() float64 {
	if len(ts.T) < 2 {
		return 0
	}
	return (ts.T[len(ts.T)-1] - ts.T[0]) / float64(len(ts.T)-1)
}

// Duration returns the time spanned by the series.
func (ts *TimeSeries) Duration() float64 {
	if len(ts.T) == 0 {
		return 0
	}
	return ts.T[len(ts.T)-1] - ts.T[0]
}

// DB is an ordered, name-addressed collection of time series, typically all
// the responses read from one file. Insertion order is preserved.
type DB struct {
	names []string
	m     map[string]*TimeSeries
}

// NewDB returns an empty collection.
func NewDB() *DB {
	return &DB{m: make(map[string]*TimeSeries)}
}

// Add registers a series under its name. Duplicated names are an error, as
// the name is the only handle the caller has on the series.
func (db *DB) Add(ts *TimeSeries) error {
	if ts.Name == "" {
		return newError("DB.Add", "time series has no name")
	}
	if _, ok := db.m[ts.Name]; ok {
		return newError("DB.Add", "duplicated time series name %s", ts.Name)
	}
	db.names = append(db.names, ts.Name)
	db.m[ts.Name] = ts
	return nil
}

// Get returns the series registered under the exact given name.
func (db *DB) Get(name string) (*TimeSeries, error) {
	ts, ok := db.m[name]
	if !ok {
		return nil, newError("DB.Get", "no time series named %s", name)
	}
	return ts, nil
}

// Match returns all series whose name matches the given glob pattern
// (path.Match syntax, e.g. "Lin01_*_Te"), in insertion order. A malformed
// pattern matches nothing.
func (db *DB) Match(pattern string) []*TimeSeries {
	var ret []*TimeSeries
	for _, n := range db.names {
		if ok, err := path.Match(pattern, n); err == nil && ok {
			ret = append(ret, db.m[n])
		}
	}
	return ret
}

// Names returns the registered names in insertion order.
func (db *DB) Names() []string {
	ret := make([]string, len(db.names))
	copy(ret, db.names)
	return ret
}

// Len returns the number of series in the collection.
func (db *DB) Len() int {
	return len(db.names)
}
