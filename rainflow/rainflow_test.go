package rainflow

import (
	"fmt"
	"math"
	"testing"
)

//the worked example from ASTM E1049-85, section 5.4.4
var astmSeries = []float64{0, -2, 1, -3, 5, -1, 3, -4, 4, -2, 0}

func TestReversals(Te *testing.T) {
	rev := Reversals(astmSeries, false)
	want := []float64{-2, 1, -3, 5, -1, 3, -4, 4, -2}
	if len(rev) != len(want) {
		Te.Fatalf("got %d reversals (%v), want %d", len(rev), rev, len(want))
	}
	for i, v := range rev {
		if v != want[i] {
			Te.Fatalf("reversals %v, want %v", rev, want)
		}
	}
	//with endpoints the original end values come along
	rev = Reversals(astmSeries, true)
	if rev[0] != 0 || rev[len(rev)-1] != 0 {
		Te.Errorf("endpoint reversals %v", rev)
	}
	//repeated samples are not reversals
	rev = Reversals([]float64{0, 1, 1, 1, 0}, false)
	if len(rev) != 1 || rev[0] != 1 {
		Te.Errorf("plateau reversals %v, want [1]", rev)
	}
}

func TestCycles(Te *testing.T) {
	full, half := Cycles(astmSeries, false)
	wantFull := []Cycle{{4, 1, 1}}
	wantHalf := []Cycle{{3, -0.5, 0.5}, {4, -1, 0.5}, {8, 1, 0.5}, {6, 1, 0.5}, {8, 0, 0.5}, {9, 0.5, 0.5}}
	if len(full) != len(wantFull) {
		Te.Fatalf("got %d full cycles (%v), want %d", len(full), full, len(wantFull))
	}
	for i, c := range full {
		if c != wantFull[i] {
			Te.Errorf("full cycle %d: %v, want %v", i, c, wantFull[i])
		}
	}
	if len(half) != len(wantHalf) {
		Te.Fatalf("got %d half cycles (%v), want %d", len(half), half, len(wantHalf))
	}
	for i, c := range half {
		if c != wantHalf[i] {
			Te.Errorf("half cycle %d: %v, want %v", i, c, wantHalf[i])
		}
	}
	fmt.Println("full:", full, "half:", half)
}

func TestCyclesNested(Te *testing.T) {
	//a small cycle closing mid-stream: when 9 arrives, the (7,4) excursion
	//is counted as a full cycle and its peak and valley are removed, but
	//the surrounding points 10 and 3 must survive for the trailing halves
	series := []float64{0, 10, 3, 7, 4, 9, 0}
	full, half := Cycles(series, false)
	wantFull := []Cycle{{3, 5.5, 1}}
	wantHalf := []Cycle{{6, 6, 0.5}, {7, 6.5, 0.5}}
	if len(full) != len(wantFull) {
		Te.Fatalf("got %d full cycles (%v), want %d", len(full), full, len(wantFull))
	}
	for i, c := range full {
		if c != wantFull[i] {
			Te.Errorf("full cycle %d: %v, want %v", i, c, wantFull[i])
		}
	}
	if len(half) != len(wantHalf) {
		Te.Fatalf("got %d half cycles (%v), want %d", len(half), half, len(wantHalf))
	}
	for i, c := range half {
		if c != wantHalf[i] {
			Te.Errorf("half cycle %d: %v, want %v", i, c, wantHalf[i])
		}
	}
}

func TestCycleBookkeeping(Te *testing.T) {
	//every full cycle consumes two reversal points and every half cycle
	//one, so 2*full + half must equal the reversal count minus one,
	//whatever the input signal looks like
	x := make([]float64, 500)
	seed := 12345
	for i := range x {
		seed = (seed*1103515245 + 12345) % (1 << 31)
		x[i] = float64(seed%2000)/100 - 10
	}
	rev := Reversals(x, false)
	full, half := Cycles(x, false)
	if got, want := 2*len(full)+len(half), len(rev)-1; got != want {
		Te.Errorf("%d full and %d half cycles account for %d reversals, want %d", len(full), len(half), got, want)
	}
	for _, c := range append(full, half...) {
		if c.Range < 0 {
			Te.Fatalf("negative cycle range in %v", c)
		}
	}
}

func TestCountCycles(Te *testing.T) {
	counts := CountCycles(astmSeries, false)
	want := []Cycle{
		{3, -0.5, 0.5},
		{4, -1, 0.5},
		{4, 1, 1},
		{6, 1, 0.5},
		{8, 0, 0.5},
		{8, 1, 0.5},
		{9, 0.5, 0.5},
	}
	if len(counts) != len(want) {
		Te.Fatalf("got %d cycles (%v), want %d", len(counts), counts, len(want))
	}
	for i, c := range counts {
		if c != want[i] {
			Te.Errorf("cycle %d: %v, want %v", i, c, want[i])
		}
	}
}

func TestRebinByRange(Te *testing.T) {
	counts := CountCycles(astmSeries, false)
	binned, err := Rebin(counts, "range", 0, 2.0)
	if err != nil {
		Te.Fatal(err)
	}
	//total cycle count must survive the rebinning
	var orig, after float64
	for _, c := range counts {
		orig += c.Count
	}
	for _, c := range binned {
		after += c.Count
	}
	if orig != after {
		Te.Errorf("count %v before rebin, %v after", orig, after)
	}
	//the (2,4] bin holds three cycles: ranges 3, 4 and 4
	var b24 Cycle
	for _, c := range binned {
		if c.Range == 3 {
			b24 = c
		}
	}
	if b24.Count != 2 {
		Te.Errorf("bin at range 3 holds %v cycles, want 2", b24.Count)
	}
	if math.Abs(b24.Mean-0.125) > 1e-12 {
		Te.Errorf("bin at range 3 has weighted mean %v, want 0.125", b24.Mean)
	}
	//empty bins are kept with a NaN secondary value
	if !math.IsNaN(binned[0].Mean) || binned[0].Count != 0 {
		Te.Errorf("first bin %v, want empty with NaN mean", binned[0])
	}
}

func TestRebinByMean(Te *testing.T) {
	counts := CountCycles(astmSeries, false)
	binned, err := Rebin(counts, "mean", 4, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if len(binned) != 4 {
		Te.Fatalf("got %d bins, want 4", len(binned))
	}
	//bins are open at the lower edge, so the cycle sitting exactly on the
	//lowest mean (4, -1, 0.5) falls outside every bin
	var orig, after float64
	for _, c := range counts {
		orig += c.Count
	}
	for _, c := range binned {
		after += c.Count
	}
	if orig-after != 0.5 {
		Te.Errorf("count %v before rebin, %v after", orig, after)
	}
	if _, err := Rebin(counts, "amplitude", 4, 0); err == nil {
		Te.Error("expected an error for an unknown binning quantity")
	}
	if _, err := Rebin(counts, "range", 0, 0); err == nil {
		Te.Error("expected an error when neither n nor w is given")
	}
}
