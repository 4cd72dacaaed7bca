//Package fatigue implements S-N curves (linear and bi-linear, with optional
//thickness correction per DNV-RP-C203) and Miner-sum fatigue damage from
//counted rainflow cycles.
package fatigue

import (
	"fmt"
	"math"

	"github.com/evindal/gosima/rainflow"
)

// SNCurve relates a stress range to the number of cycles to failure,
// log-linearly with negative inverse slope M1 and intercept LogA1. For
// bi-linear curves a second slope M2 applies beyond NSwitch cycles, i.e.
// below the SSwitch stress range; LogA2 and SSwitch follow from the
// requirement that the two branches meet at NSwitch.
type SNCurve struct {
	Name    string
	M1      float64
	M2      float64 //0 for linear curves
	LogA1   float64
	LogA2   float64
	NSwitch float64
	SSwitch float64
	kThickn float64
	tRef    float64
	thickn  bool
}

// NewLinear returns a single-slope S-N curve with negative inverse slope m1
// and intercept log10(a1) = loga1.
func NewLinear(name string, m1, loga1 float64) (*SNCurve, error) {
	if m1 <= 0 {
		return nil, fmt.Errorf("fatigue: non-positive slope parameter m1 %v", m1)
	}
	return &SNCurve{Name: name, M1: m1, LogA1: loga1}, nil
}

// NewBilinear returns a two-slope S-N curve: slope m1 and intercept
// log10(a1) = loga1 up to nswitch cycles, slope m2 beyond. The second
// intercept and the transition stress range are derived from continuity
// at nswitch.
func NewBilinear(name string, m1, m2, loga1, nswitch float64) (*SNCurve, error) {
	if m1 <= 0 || m2 <= 0 {
		return nil, fmt.Errorf("fatigue: non-positive slope parameters m1 %v, m2 %v", m1, m2)
	}
	if nswitch <= 0 {
		return nil, fmt.Errorf("fatigue: non-positive transition cycle count %v", nswitch)
	}
	c := &SNCurve{Name: name, M1: m1, M2: m2, LogA1: loga1, NSwitch: nswitch}
	c.LogA2 = m2/m1*loga1 + (1-m2/m1)*math.Log10(nswitch)
	c.SSwitch = math.Pow(10, (loga1-math.Log10(nswitch))/m1)
	return c, nil
}

// Bilinear returns whether the curve has a second slope.
func (c *SNCurve) Bilinear() bool {
	return c.M2 > 0
}

// SetThicknessCorrection enables thickness correction with exponent k and
// reference thickness tref (mm).
func (c *SNCurve) SetThicknessCorrection(k, tref float64) error {
	if tref <= 0 {
		return fmt.Errorf("fatigue: non-positive reference thickness %v", tref)
	}
	c.kThickn = k
	c.tRef = tref
	c.thickn = true
	return nil
}

// ThicknessCorrection returns the stress scaling factor for the given
// thickness (mm). Thicknesses below the reference use the reference, so
// the factor is never below 1 for positive exponents.
func (c *SNCurve) ThicknessCorrection(t float64) (float64, error) {
	if !c.thickn {
		return 0, fmt.Errorf("fatigue: thickness correction is not defined for curve %s", c.Name)
	}
	if t < c.tRef {
		t = c.tRef
	}
	return math.Pow(t/c.tRef, c.kThickn), nil
}

// N returns the predicted number of cycles to failure at the stress range
// s (MPa), without thickness correction. A non-positive stress range gives
// +Inf (infinite life).
func (c *SNCurve) N(s float64) float64 {
	if s <= 0 {
		return math.Inf(1)
	}
	m, loga := c.M1, c.LogA1
	if c.Bilinear() && s < c.SSwitch {
		m, loga = c.M2, c.LogA2
	}
	return math.Pow(10, loga-m*math.Log10(s))
}

// NThickness is N with the stress range scaled by the thickness correction
// for the given thickness (mm).
func (c *SNCurve) NThickness(s, t float64) (float64, error) {
	tcorr, err := c.ThicknessCorrection(t)
	if err != nil {
		return 0, err
	}
	return c.N(s * tcorr), nil
}

// MinerSum returns the accumulated fatigue damage of the counted cycles
// under the Palmgren-Miner rule: the sum over cycles of count divided by
// the cycles to failure at that range. The cycle ranges must be stress
// ranges in the curve's unit (MPa). Failure is predicted at damage 1.
func MinerSum(cycles []rainflow.Cycle, c *SNCurve) float64 {
	d := 0.0
	for _, cy := range cycles {
		d += cy.Count / c.N(cy.Range)
	}
	return d
}
