package t3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//The main container, must be able to implement any gonum interface.
//Matrix is a 3x3 transformation matrix from a global to a local
//coordinate frame.
type Matrix struct {
	*mat.Dense
}

func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

func Dense2Matrix(A *mat.Dense) (*Matrix, error) {
	r, c := A.Dims()
	if r != 3 || c != 3 {
		return nil, Error{fmt.Sprintf("matrix is %dx%d, want 3x3", r, c), []string{"Dense2Matrix"}, true}
	}
	return &Matrix{A}, nil
}

//Zeros returns a zeroed 3x3 matrix.
func Zeros() *Matrix {
	return &Matrix{mat.NewDense(3, 3, nil)}
}

//Ident returns the identity transformation.
func Ident() *Matrix {
	T := Zeros()
	for i := 0; i < 3; i++ {
		T.Set(i, i, 1)
	}
	return T
}

//NewMatrix builds a matrix from its 9 column-major components, in the order
//they are stored on disk.
func NewMatrix(colmajor []float64) (*Matrix, error) {
	T := Zeros()
	if err := T.SetColMajor(colmajor); err != nil {
		return nil, errDecorate(err, "NewMatrix")
	}
	return T, nil
}

//SetColMajor fills the receiver from 9 column-major components.
func (T *Matrix) SetColMajor(colmajor []float64) error {
	if len(colmajor) != 9 {
		return Error{fmt.Sprintf("%d components given, want 9", len(colmajor)), []string{"SetColMajor"}, true}
	}
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			T.Set(r, c, colmajor[3*c+r])
		}
	}
	return nil
}

//ColMajor flattens the matrix back to the on-disk component order. If dst is
//non-nil and has room for 9 values it is filled and returned, otherwise a new
//slice is allocated.
func (T *Matrix) ColMajor(dst []float64) []float64 {
	if dst == nil || len(dst) < 9 {
		dst = make([]float64, 9)
	}
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			dst[3*c+r] = T.At(r, c)
		}
	}
	return dst[:9]
}

//ToLocal applies the transformation to the global-frame vector, putting the
//local-frame result in dst (allocated if nil) and returning it.
func (T *Matrix) ToLocal(dst, global []float64) ([]float64, error) {
	if len(global) != 3 {
		return nil, Error{fmt.Sprintf("global vector has %d components, want 3", len(global)), []string{"ToLocal"}, true}
	}
	if dst == nil {
		dst = make([]float64, 3)
	}
	var tmp [3]float64
	for i := 0; i < 3; i++ {
		tmp[i] = T.At(i, 0)*global[0] + T.At(i, 1)*global[1] + T.At(i, 2)*global[2]
	}
	copy(dst, tmp[:])
	return dst[:3], nil
}

//Transposed returns a newly allocated transpose of the receiver. For a
//proper rotation this is also the inverse, i.e. the local-to-global
//transformation.
func (T *Matrix) Transposed() *Matrix {
	R := Zeros()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R.Set(i, j, T.At(j, i))
		}
	}
	return R
}

//Det returns the determinant of the matrix.
func (T *Matrix) Det() float64 {
	A := T.Dense
	return A.At(0, 0)*(A.At(1, 1)*A.At(2, 2)-A.At(2, 1)*A.At(1, 2)) -
		A.At(1, 0)*(A.At(0, 1)*A.At(2, 2)-A.At(2, 1)*A.At(0, 2)) +
		A.At(2, 0)*(A.At(0, 1)*A.At(1, 2)-A.At(1, 1)*A.At(0, 2))
}

//IsRotation returns whether the matrix is a proper rotation within the given
//tolerance: orthonormal columns and determinant +1. The producing tools write
//rotations, but the files carry no guarantee, so consumers that rely on the
//inverse-equals-transpose property should check first.
func (T *Matrix) IsRotation(epsilon float64) bool {
	if epsilon < 0 {
		epsilon = appzero
	}
	var P mat.Dense
	P.Mul(T.Dense, T.Dense.T())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(P.At(i, j)-want) > epsilon {
				return false
			}
		}
	}
	return math.Abs(T.Det()-1) <= epsilon
}

const appzero float64 = 0.000000000001 //used to correct floating point errors. Everything equal or less than this is considered zero.

//Errors

//the same as sima.Error but avoids a circular import.
type errorInt interface {
	Error() string
	Decorate(string) []string
}

type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//errDecorate asserts that the error implements errorInt and decorates it
//with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(errorInt)
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//For errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNot3x3Matrix = PanicMsg("gosima/t3: A transformation matrix must be 3x3")
	ErrShape        = PanicMsg("gosima/t3: Dimension mismatch")
)
