package key

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

const elmsfoKeyText = ` RIFLEX DYNMOD results key file
 Run: mooring analysis

    The following applies for bar elements:
      DOF 1 = Axial tension

    The following applies for beam elements:
      DOF 1 = Axial tension
      DOF 2 = Torsional moment
      DOF 3 = Mom. about local y-axis, end 1
      DOF 4 = Mom. about local y-axis, end 2
      DOF 5 = Mom. about local z-axis, end 1
      DOF 6 = Mom. about local z-axis, end 2
      DOF 7 = Shear force in local y-direction, end 1
      DOF 8 = Shear force in local z-direction, end 1

 Line  Segment  Element  Number of DOFs stored
 ------------------------------------------------------
    1       1        1        2
    1       1        2        8
`

const noddisKeyText = ` RIFLEX DYNMOD results key file

    The following applies for nodes:
      DOF 1 = displacement in x direction
      DOF 2 = displacement in y direction
      DOF 3 = displacement in z direction

 ------------------------------------------------------
    2       1        1        3
`

func writeKeyFile(Te *testing.T, name, text string) string {
	path := filepath.Join(Te.TempDir(), name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		Te.Fatal(err)
	}
	return path
}

func TestReadBinKeysBeam(Te *testing.T) {
	path := writeKeyFile(Te, "key_mooring_elmsfo.txt", elmsfoKeyText)
	keys, err := ReadBinKeys(path)
	if err != nil {
		Te.Fatal(err)
	}
	want := []string{
		"Lin01_Seg001_El001_Te",
		"Lin01_Seg001_El001_Mx",
		"Lin01_Seg001_El002_Te",
		"Lin01_Seg001_El002_Mx",
		"Lin01_Seg001_El002_My1",
		"Lin01_Seg001_El002_My2",
		"Lin01_Seg001_El002_Mz1",
		"Lin01_Seg001_El002_Mz2",
		"Lin01_Seg001_El002_Sy1",
		"Lin01_Seg001_El002_Sz1",
	}
	if len(keys) != len(want) {
		Te.Fatalf("got %d keys, want %d: %v", len(keys), len(want), keys)
	}
	for i, k := range keys {
		if k != want[i] {
			Te.Errorf("key %d: got %s, want %s", i, k, want[i])
		}
	}
	fmt.Println("keys on file:", keys)
}

func TestReadBinKeysDisplacement(Te *testing.T) {
	path := writeKeyFile(Te, "key_mooring_noddis.txt", noddisKeyText)
	keys, err := ReadBinKeys(path)
	if err != nil {
		Te.Fatal(err)
	}
	want := []string{
		"Lin02_Seg001_No001_Xd",
		"Lin02_Seg001_No001_Yd",
		"Lin02_Seg001_No001_Zd",
	}
	if len(keys) != len(want) {
		Te.Fatalf("got %d keys, want %d: %v", len(keys), len(want), keys)
	}
	for i, k := range keys {
		if k != want[i] {
			Te.Errorf("key %d: got %s, want %s", i, k, want[i])
		}
	}
}

func TestReadBinKeysFallback(Te *testing.T) {
	text := ` key file
    The following applies:
      DOF 1 = transformation matrix component
      DOF 2 = transformation matrix component

 ------------------------------------------------------
    1       1        1        2
`
	path := writeKeyFile(Te, "key_mooring_elmtra.txt", text)
	keys, err := ReadBinKeys(path)
	if err != nil {
		Te.Fatal(err)
	}
	if len(keys) != 2 || keys[0] != "Lin01_Seg001_001_DOF01" || keys[1] != "Lin01_Seg001_001_DOF02" {
		Te.Errorf("unexpected keys %v", keys)
	}
}

func TestReadTsKeys(Te *testing.T) {
	text := `** key file for mooring.ts
** one name per array, in storage order
Time
Surge
Sway
Heave
END
`
	path := writeKeyFile(Te, "mooring.txt", text)
	keys, err := ReadTsKeys(path, "ts")
	if err != nil {
		Te.Fatal(err)
	}
	want := []string{"Surge", "Sway", "Heave"}
	if len(keys) != len(want) {
		Te.Fatalf("got %d keys, want %d: %v", len(keys), len(want), keys)
	}
	for i, k := range keys {
		if k != want[i] {
			Te.Errorf("key %d: got %s, want %s", i, k, want[i])
		}
	}
	if _, err := ReadTsKeys(path, "csv"); err == nil {
		Te.Error("expected an error for an unknown file type")
	}
}
