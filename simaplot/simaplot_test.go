package simaplot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	sima "github.com/evindal/gosima"
	"github.com/evindal/gosima/rainflow"
	"github.com/evindal/gosima/simastat"
)

func sineSeries(name string, n int, freq float64) *sima.TimeSeries {
	t := make([]float64, n)
	x := make([]float64, n)
	for i := range t {
		t[i] = 0.1 * float64(i)
		x[i] = math.Sin(2 * math.Pi * freq * t[i])
	}
	return &sima.TimeSeries{Name: name, T: t, X: x}
}

func checkFile(Te *testing.T, name string) {
	info, err := os.Stat(name)
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Errorf("%s is empty", name)
	}
}

func TestTimeSeries(Te *testing.T) {
	file := filepath.Join(Te.TempDir(), "responses.png")
	err := TimeSeries(file, "Mooring line tension", sineSeries("El001_Te", 200, 0.2), sineSeries("El002_Te", 200, 0.35))
	if err != nil {
		Te.Fatal(err)
	}
	checkFile(Te, file)
	if err := TimeSeries(file, "nothing"); err == nil {
		Te.Error("expected an error with no series")
	}
}

func TestCycleDistribution(Te *testing.T) {
	series := []float64{0, -2, 1, -3, 5, -1, 3, -4, 4, -2, 0}
	binned, err := rainflow.Rebin(rainflow.CountCycles(series, false), "range", 5, 0)
	if err != nil {
		Te.Fatal(err)
	}
	file := filepath.Join(Te.TempDir(), "cycles.png")
	if err := CycleDistribution(file, "Tension cycles", binned); err != nil {
		Te.Fatal(err)
	}
	checkFile(Te, file)
}

func TestMaxima(Te *testing.T) {
	ts := sineSeries("Surge", 1000, 0.05)
	maxima, _ := simastat.FindMaxima(ts.X, false, true)
	cdf, err := simastat.EmpiricalCDF(len(maxima), "gringorten")
	if err != nil {
		Te.Fatal(err)
	}
	file := filepath.Join(Te.TempDir(), "maxima.png")
	if err := Maxima(file, "Surge maxima", maxima, cdf); err != nil {
		Te.Fatal(err)
	}
	checkFile(Te, file)
}
