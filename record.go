package sima

import (
	t3 "github.com/evindal/gosima/t3"
)

// Record is one decoded time step of a fixed-layout record file: the elapsed
// time, one 3x3 global-to-local transformation matrix per named channel, and
// the two opaque bookkeeping values that frame each record on disk. The
// bookkeeping values are carried verbatim and never interpreted.
type Record struct {
	Lead  float64
	Time  float64
	Trail float64
	names []string
	chans map[string]*t3.Matrix
}

// NewRecord returns a Record with a zeroed matrix allocated for each channel
// of the given layout. The same Record can be reused across calls to Next.
func NewRecord(L *Layout) *Record {
	R := new(Record)
	R.names = L.Names()
	R.chans = make(map[string]*t3.Matrix, len(R.names))
	for _, n := range R.names {
		R.chans[n] = t3.Zeros()
	}
	return R
}

// Names returns the channel names in column order.
func (R *Record) Names() []string {
	ret := make([]string, len(R.names))
	copy(ret, R.names)
	return ret
}

// Channel returns the transformation matrix for the named channel, or nil
// if the record has no such channel.
func (R *Record) Channel(name string) *t3.Matrix {
	return R.chans[name]
}

// Len returns the number of named channels in the record.
func (R *Record) Len() int {
	return len(R.names)
}
