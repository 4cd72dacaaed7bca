package t3

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

//a rotation of angle a about the z axis
func zRotation(a float64) *Matrix {
	c, s := math.Cos(a), math.Sin(a)
	T, _ := NewMatrix([]float64{c, -s, 0, s, c, 0, 0, 0, 1})
	return T
}

func TestColMajorRoundTrip(Te *testing.T) {
	colmajor := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	T, err := NewMatrix(colmajor)
	if err != nil {
		Te.Fatal(err)
	}
	//component k lands in row k%3, column k/3
	if T.At(1, 0) != 2 || T.At(0, 1) != 4 || T.At(2, 2) != 9 {
		Te.Errorf("column-major order not respected: %v", mat.Formatted(T.Dense))
	}
	back := T.ColMajor(nil)
	for i, v := range back {
		if v != colmajor[i] {
			Te.Fatalf("flattened to %v, want %v", back, colmajor)
		}
	}
	if _, err := NewMatrix(colmajor[:5]); err == nil {
		Te.Error("expected an error for 5 components")
	}
}

func TestToLocal(Te *testing.T) {
	//with the components packed column by column, a=pi/2 gives
	//T = [[0,1,0],[-1,0,0],[0,0,1]], so the global x axis lands on
	//local -y
	T := zRotation(math.Pi / 2)
	loc, err := T.ToLocal(nil, []float64{1, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	want := []float64{0, -1, 0}
	for i := range want {
		if math.Abs(loc[i]-want[i]) > 1e-14 {
			Te.Fatalf("local vector %v, want %v", loc, want)
		}
	}
	//transforming there and back with the transpose recovers the input
	glob, err := T.Transposed().ToLocal(nil, loc)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(glob[0]-1) > 1e-14 || math.Abs(glob[1]) > 1e-14 {
		Te.Errorf("round trip gave %v", glob)
	}
	if _, err := T.ToLocal(nil, []float64{1, 0}); err == nil {
		Te.Error("expected an error for a 2-vector")
	}
}

func TestDet(Te *testing.T) {
	if d := Ident().Det(); d != 1 {
		Te.Errorf("identity determinant %v", d)
	}
	if d := zRotation(0.7).Det(); math.Abs(d-1) > 1e-14 {
		Te.Errorf("rotation determinant %v", d)
	}
	T, _ := NewMatrix([]float64{2, 0, 0, 0, 3, 0, 0, 0, 4})
	if d := T.Det(); d != 24 {
		Te.Errorf("diagonal determinant %v, want 24", d)
	}
}

func TestIsRotation(Te *testing.T) {
	if !zRotation(1.1).IsRotation(-1) {
		Te.Error("a z rotation should be a rotation")
	}
	//an improper rotation (reflection) has determinant -1
	T, _ := NewMatrix([]float64{1, 0, 0, 0, 1, 0, 0, 0, -1})
	if T.IsRotation(-1) {
		Te.Error("a reflection is not a proper rotation")
	}
	//scaling breaks orthonormality
	S, _ := NewMatrix([]float64{2, 0, 0, 0, 2, 0, 0, 0, 2})
	if S.IsRotation(-1) {
		Te.Error("a scaling is not a rotation")
	}
}

func TestDense2Matrix(Te *testing.T) {
	if _, err := Dense2Matrix(mat.NewDense(2, 3, nil)); err == nil {
		Te.Error("expected an error for a 2x3 matrix")
	}
	D := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	T, err := Dense2Matrix(D)
	if err != nil {
		Te.Fatal(err)
	}
	if !T.IsRotation(-1) {
		Te.Error("identity should pass the rotation check")
	}
}
