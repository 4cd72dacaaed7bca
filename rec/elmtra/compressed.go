package elmtra

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"io"
	"log"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

const (
	lzwOrder        = lzw.MSB
	lzwLitwidth int = 8
)

//This will cause additional indirections but each record read takes enough
//time to make those delays irrelevant.
//Also, why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type stdql struct {
	closeql func()
	*zstd.Decoder
}

// Close closes the object. It can not be used after this call.
func (s stdql) Close() error {
	s.closeql()
	return nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

//prepSource takes a filename and format string, opens the file and sets up an
//object that will read data from the file, either 'as is' or decompressing
//first, depending on the format string. If the format string is empty, it
//will try to deduce it from the file extension. Extensions supported are
//.bin (non-compressed), .gz (gzip), .zst (zstd), .lzw and .flate. If the
//format string is empty and the extension doesn't match any supported type,
//a message will be logged and the non-compressed format will be assumed.
//It returns whether the source is plain (and can thus be size-checked).
func (R *Reader) prepSource(fname string, format string) (bool, error) {
	var err error
	fk := format
	if fk == "" {
		temp := strings.Split(fname, ".")
		fk = strings.ToLower(temp[len(temp)-1])
	}
	R.filename = fname
	R.f, err = os.Open(fname)
	if err != nil {
		return false, Error{err.Error(), R.filename, []string{"os.Open", "prepSource"}, true}
	}
	reader := bufio.NewReader(R.f)
	plain := false
	switch fk {
	case "gz":
		R.h, err = gzip.NewReader(reader)
	case "zst", "zstd":
		var d *zstd.Decoder
		d, err = zstd.NewReader(reader)
		if err == nil {
			R.h = &stdql{d.Close, d}
		}
	case "lzw":
		R.h = lzw.NewReader(reader, lzwOrder, lzwLitwidth)
	case "flate":
		R.h = flate.NewReader(reader)
	case "bin":
		R.h = R.f
		plain = true
	default:
		log.Printf("Format string %s not supported. %s will be assumed to be a plain record file", fk, R.filename)
		R.h = R.f
		plain = true
	}
	if err != nil {
		R.f.Close()
		return false, Error{err.Error(), R.filename, []string{"prepSource"}, true}
	}
	return plain, nil
}

//prepTarget creates the file and sets up an io.WriteCloser that will write
//data, crude or compressed, depending on the format string or, if empty, the
//file extension. The same formats as prepSource are supported. Unlike the
//DCD-style formats, these records carry no frame count up front, so
//compressed streams can be written strictly forward.
func (W *Writer) prepTarget(fname string, format string) error {
	var err error
	fk := format
	if fk == "" {
		temp := strings.Split(fname, ".")
		fk = strings.ToLower(temp[len(temp)-1])
	}
	W.filename = fname
	W.f, err = os.Create(fname)
	if err != nil {
		return Error{err.Error(), W.filename, []string{"os.Create", "prepTarget"}, true}
	}
	switch fk {
	case "gz":
		W.h, err = gzip.NewWriterLevel(W.f, gzip.DefaultCompression)
	case "zst", "zstd":
		W.h, err = zstd.NewWriter(W.f)
	case "lzw":
		W.h = lzw.NewWriter(W.f, lzwOrder, lzwLitwidth)
	case "flate":
		W.h, err = flate.NewWriter(W.f, flate.DefaultCompression)
	case "bin":
		W.h = nopCloser{W.f}
	default:
		log.Printf("Format string %s not supported. %s will be written as a plain record file", fk, W.filename)
		W.h = nopCloser{W.f}
	}
	if err != nil {
		W.f.Close()
		return Error{err.Error(), W.filename, []string{"prepTarget"}, true}
	}
	return nil
}
