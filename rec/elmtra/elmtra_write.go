package elmtra

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	sima "github.com/evindal/gosima"
)

//Write!

// Writer encodes records with a fixed column map, producing files the
// Reader (and the original consumers of the format) decode bit-exactly.
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	ly        *sima.Layout
	buf       []float32
	tmp       []float64
	filename  string
	writeable bool
}

// NewWriter creates a record file for writing with the given column map.
// A nil layout selects the built-in n_elmtra map. The optional format
// string works as in New.
func NewWriter(name string, ly *sima.Layout, format ...string) (*Writer, error) {
	W := new(Writer)
	if ly == nil {
		ly = sima.Elmtra()
	}
	if err := ly.Check(); err != nil {
		return nil, Error{err.Error(), name, []string{"NewWriter"}, true}
	}
	W.ly = ly
	fk := ""
	if len(format) > 0 {
		fk = format[0]
	}
	if err := W.prepTarget(name, fk); err != nil {
		return nil, errDecorate(err, "NewWriter")
	}
	W.buf = make([]float32, ly.Columns())
	W.tmp = make([]float64, sima.ChannelWidth)
	W.writeable = true
	return W, nil
}

// WNext writes the given record as the next one in the file. The stored
// floats are the single-precision values of the record, so a written file
// read back reproduces them bit for bit.
func (W *Writer) WNext(rec *sima.Record) error {
	if !W.writeable {
		return Error{RecUnIniWrite, W.filename, []string{"WNext"}, true}
	}
	if rec == nil {
		return Error{NilRecord, W.filename, []string{"WNext"}, true}
	}
	W.buf[0] = float32(rec.Lead)
	W.buf[1] = float32(rec.Time)
	W.buf[len(W.buf)-1] = float32(rec.Trail)
	for _, slot := range W.ly.Channels {
		M := rec.Channel(slot.Name)
		if M == nil {
			return Error{fmt.Sprintf("given record has no channel %s", slot.Name), W.filename, []string{"WNext"}, true}
		}
		M.ColMajor(W.tmp)
		base := slot.Start - 1
		for i, v := range W.tmp {
			W.buf[base+i] = float32(v)
		}
	}
	if err := binary.Write(W.h, W.ly.Order(), W.buf); err != nil {
		return Error{err.Error(), W.filename, []string{"WNext"}, true}
	}
	return nil
}

// Layout returns the column map the writer encodes with.
func (W *Writer) Layout() *sima.Layout {
	return W.ly
}

// Close flushes and closes the file. The Writer can not be used after this call.
func (W *Writer) Close() {
	if W == nil || !W.writeable {
		return
	}
	W.h.Close()
	W.f.Close()
	W.writeable = false
}
