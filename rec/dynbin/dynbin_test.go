package dynbin

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	sima "github.com/evindal/gosima"
)

//writeBin encodes ndat rows of nts responses, each row framed by FORTRAN
//record markers, the way Dynmod writes its .bin files.
func writeBin(Te *testing.T, dir string, nts, ndat int) string {
	buf := new(bytes.Buffer)
	marker := int32(4 * (nts + 1)) //payload: time plus nts responses
	for i := 0; i < ndat; i++ {
		binary.Write(buf, binary.LittleEndian, marker)
		binary.Write(buf, binary.LittleEndian, float32(0.5*float64(i)))
		for j := 0; j < nts; j++ {
			binary.Write(buf, binary.LittleEndian, float32(100*(j+1)+i))
		}
		binary.Write(buf, binary.LittleEndian, marker)
	}
	name := filepath.Join(dir, "n_elmfor.bin")
	if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
		Te.Fatal(err)
	}
	return name
}

func TestRead(Te *testing.T) {
	name := writeBin(Te, Te.TempDir(), 3, 4)
	keys := []string{"Lin01_Seg001_El001_Te", "Lin01_Seg001_El001_Sy1", "Lin01_Seg001_El001_Sz1"}
	db, err := Read(name, keys)
	if err != nil {
		Te.Fatal(err)
	}
	if db.Len() != 3 {
		Te.Fatalf("got %d series, want 3", db.Len())
	}
	ts, err := db.Get("Lin01_Seg001_El001_Sy1")
	if err != nil {
		Te.Fatal(err)
	}
	if ts.Len() != 4 {
		Te.Fatalf("series has %d samples, want 4", ts.Len())
	}
	for i := 0; i < 4; i++ {
		if ts.T[i] != 0.5*float64(i) {
			Te.Errorf("time[%d]: %v", i, ts.T[i])
		}
		if ts.X[i] != float64(200+i) {
			Te.Errorf("x[%d]: %v, want %v", i, ts.X[i], 200+i)
		}
	}
	if got := len(db.Match("Lin01_*")); got != 3 {
		Te.Errorf("glob matched %d series, want 3", got)
	}
	fmt.Println("series on file:", db.Names())
}

func TestReadSubset(Te *testing.T) {
	name := writeBin(Te, Te.TempDir(), 5, 3)
	db, err := Read(name, nil, 4, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if db.Len() != 2 {
		Te.Fatalf("got %d series, want 2", db.Len())
	}
	//generated names follow the on-file sequence numbers
	if n := db.Names(); n[0] != "series005" || n[1] != "series002" {
		Te.Errorf("unexpected names %v", n)
	}
	ts, _ := db.Get("series002")
	if ts.X[0] != 200 {
		Te.Errorf("series002 x[0]: %v, want 200", ts.X[0])
	}
}

func TestBadSize(Te *testing.T) {
	dir := Te.TempDir()
	name := writeBin(Te, dir, 2, 2)
	data, err := os.ReadFile(name)
	if err != nil {
		Te.Fatal(err)
	}
	if err := os.WriteFile(name, data[:len(data)-4], 0644); err != nil {
		Te.Fatal(err)
	}
	_, err = Read(name, nil)
	if err == nil {
		Te.Fatal("expected an error for a truncated file")
	}
	if rerr, ok := err.(sima.RecError); !ok || !rerr.Critical() {
		Te.Errorf("want a critical RecError, got %v", err)
	}
}

func TestEmpty(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "empty.bin")
	if err := os.WriteFile(name, nil, 0644); err != nil {
		Te.Fatal(err)
	}
	db, err := Read(name, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if db.Len() != 0 {
		Te.Errorf("empty file gave %d series", db.Len())
	}
}
