package elmtra

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	sima "github.com/evindal/gosima"
)

//Read!

// Reader decodes a fixed-layout record file one record at a time. It
// fullfills sima.RecordSource.
type Reader struct {
	f        *os.File
	h        io.ReadCloser //f itself, or a decompressor over it
	ly       *sima.Layout
	buf      []float32
	filename string
	nrecords int //-1 when the source is compressed and the count is unknown
	read     int
	readable bool
}

// New opens a record file for reading with the given column map. A nil
// layout selects the built-in n_elmtra map (sima.Elmtra). The optional
// format string selects the compression ("bin", "gz", "zst", "lzw",
// "flate"); when empty it is deduced from the file extension. For plain
// files the total size must be an integer multiple of the record size.
func New(name string, ly *sima.Layout, format ...string) (*Reader, error) {
	R := new(Reader)
	R.nrecords = -1
	if ly == nil {
		ly = sima.Elmtra()
	}
	if err := ly.Check(); err != nil {
		return nil, Error{err.Error(), name, []string{"New"}, true}
	}
	R.ly = ly
	fk := ""
	if len(format) > 0 {
		fk = format[0]
	}
	plain, err := R.prepSource(name, fk)
	if err != nil {
		return nil, errDecorate(err, "New")
	}
	if plain {
		info, err := R.f.Stat()
		if err != nil {
			R.f.Close()
			return nil, Error{err.Error(), R.filename, []string{"os.File.Stat", "New"}, true}
		}
		size := info.Size()
		rb := int64(ly.RecordBytes())
		if size%rb != 0 {
			R.f.Close()
			return nil, Error{fmt.Sprintf("%s: size %d is not a multiple of the %d-byte record", WrongFileSize, size, rb), R.filename, []string{"New"}, true}
		}
		R.nrecords = int(size / rb)
	}
	R.buf = make([]float32, ly.Columns())
	R.readable = true
	return R, nil
}

// Readable returns true if the handle is readable (if it is possible to call Next on it).
func (R *Reader) Readable() bool {
	return R.readable
}

// Next decodes the next record into rec, which must have been built for the
// same layout (sima.NewRecord). A nil rec reads and discards the record.
// The end of the stream is signaled with an error satisfying
// sima.LastRecordError; a record cut short by the end of the stream is a
// critical error, as the format has no tolerance for malformed trailing
// data.
func (R *Reader) Next(rec *sima.Record) error {
	if !R.readable {
		return Error{RecUnIniRead, R.filename, []string{"Next"}, true}
	}
	if err := binary.Read(R.h, R.ly.Order(), R.buf); err != nil {
		if err == io.EOF {
			//nothing bad happened here, the stream just ended on a record boundary.
			R.Close()
			return newlastRecordError(R.filename, "Next")
		}
		if err == io.ErrUnexpectedEOF {
			return Error{TruncatedRecord, R.filename, []string{"Next"}, true}
		}
		return Error{err.Error(), R.filename, []string{"Next"}, true}
	}
	R.read++
	if rec == nil {
		return nil //We ignore this whole record, reading the content but not saving it.
	}
	rec.Lead = float64(R.buf[0])
	rec.Time = float64(R.buf[1])
	rec.Trail = float64(R.buf[len(R.buf)-1])
	for _, slot := range R.ly.Channels {
		M := rec.Channel(slot.Name)
		if M == nil {
			return Error{fmt.Sprintf("given record has no channel %s", slot.Name), R.filename, []string{"Next"}, true}
		}
		base := slot.Start - 1
		for c := 0; c < 3; c++ {
			for r := 0; r < 3; r++ {
				M.Set(r, c, float64(R.buf[base+3*c+r]))
			}
		}
	}
	return nil
}

// Len returns the number of named channels per record.
func (R *Reader) Len() int {
	return len(R.ly.Channels)
}

// NRecords returns the total number of records in the file, known from the
// file size for plain files, or -1 for compressed sources.
func (R *Reader) NRecords() int {
	return R.nrecords
}

// Layout returns the column map the reader decodes with.
func (R *Reader) Layout() *sima.Layout {
	return R.ly
}

// Close closes the object, and marks it as unreadable.
func (R *Reader) Close() {
	if !R.readable {
		return
	}
	if R.h != nil {
		R.h.Close()
	}
	if R.f != nil {
		R.f.Close() //already closed when the source was plain, which is harmless
	}
	R.readable = false
}

//Errors

//errDecorate is a helper function that asserts that the error implements
//sima.Error and decorates the error with the caller's name before returning it.
//if used with a non-sima.Error error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(sima.Error)
	err2.Decorate(caller)
	return err2
}

// Error is the general structure for record file errors. It fullfills sima.Error and sima.RecError.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("elmtra file %s error: %s", err.filename, err.message)
}

// Decorate Adds new information to the error
func (err Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file to which the failing record stream was associated
func (err Error) FileName() string { return err.filename }

// Format returns the format of the file (always "elmtra") associated to the error
func (err Error) Format() string { return "elmtra" }

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	RecUnIniRead    = "Record file uninitialized to read"
	RecUnIniWrite   = "Record file uninitialized to write"
	WrongFileSize   = "File size is not a multiple of the record size"
	TruncatedRecord = "Stream ended in the middle of a record"
	NilRecord       = "Given nil record"
)

// lastRecordError implements sima.LastRecordError
type lastRecordError struct {
	deco     []string
	fileName string
}

// lastRecordError does nothing
func (err lastRecordError) NormalLastRecordTermination() {}

func (err lastRecordError) FileName() string { return err.fileName }

func (err lastRecordError) Error() string { return "EOF" }

func (err lastRecordError) Critical() bool { return false }

func (err lastRecordError) Format() string { return "elmtra" }

func (err lastRecordError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func newlastRecordError(filename string, caller string) *lastRecordError {
	e := new(lastRecordError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
