package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pamsum/matrix"
)

// ErrEmptyMatrix is returned for a matrix with no rows or no columns.
var ErrEmptyMatrix = errors.New("stats: matrix has no sites or no species")

// Statistic keys used by Summary.Vectors and Summary.Scalars.
const (
	KeyAlpha           = "alpha"
	KeyAlphaProp       = "alphaProp"
	KeyPhi             = "phi"
	KeyPhiAvgProp      = "phiAvgProp"
	KeyOmega           = "omega"
	KeyOmegaProp       = "omegaProp"
	KeyPsi             = "psi"
	KeyPsiAvgProp      = "psiAvgProp"
	KeyWhittaker       = "whittaker"
	KeyLande           = "lande"
	KeyLegendre        = "legendre"
	KeySchluterSites   = "schluterSites"
	KeySchluterSpecies = "schluterSpecies"
)

// SiteStats holds the per-site vectors, one entry per compressed row.
type SiteStats struct {
	Alpha, AlphaProp, Phi, PhiAvgProp []float64
}

// SpeciesStats holds the per-species vectors, one entry per compressed column.
type SpeciesStats struct {
	Omega, OmegaProp, Psi, PsiAvgProp []float64
}

// Summary collects every statistic computed over one matrix.
type Summary struct {
	NumSites, NumSpecies int

	Sites   SiteStats
	Species SpeciesStats

	SigmaSites   *mat.Dense
	SigmaSpecies *mat.Dense

	SchluterSites, SchluterSpecies float64
	Whittaker, Lande, Legendre     float64
}

// Dense converts m to a gonum matrix of 0/1 values.
func Dense(m *matrix.Incidence) *mat.Dense {
	r, c := m.Shape()
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.Bit(i, j) {
				data[i*c+j] = 1
			}
		}
	}
	return mat.NewDense(r, c, data)
}

// Summarize computes the full Summary of m.
// Returns matrix.ErrNilMatrix for nil m and ErrEmptyMatrix for an empty shape.
// Complexity: O(S²·N + S·N²) for the covariance products.
func Summarize(m *matrix.Incidence) (*Summary, error) {
	if m == nil {
		return nil, fmt.Errorf("stats.Summarize: %w", matrix.ErrNilMatrix)
	}
	nSites, nSpecies := m.Shape()
	if nSites == 0 || nSpecies == 0 {
		return nil, fmt.Errorf("stats.Summarize: %dx%d: %w", nSites, nSpecies, ErrEmptyMatrix)
	}
	x := Dense(m)
	s, n := float64(nSites), float64(nSpecies)

	alpha := toFloats(m.RowSums())
	omega := toFloats(m.ColSums())
	alphaProp := make([]float64, nSites)
	floats.ScaleTo(alphaProp, 1/n, alpha)
	omegaProp := make([]float64, nSpecies)
	floats.ScaleTo(omegaProp, 1/s, omega)

	var phi, psi mat.VecDense
	phi.MulVec(x, mat.NewVecDense(nSpecies, omega))
	psi.MulVec(x.T(), mat.NewVecDense(nSites, alpha))
	phiRaw := append([]float64(nil), phi.RawVector().Data...)
	psiRaw := append([]float64(nil), psi.RawVector().Data...)

	sum := &Summary{
		NumSites:   nSites,
		NumSpecies: nSpecies,
		Sites: SiteStats{
			Alpha:      alpha,
			AlphaProp:  alphaProp,
			Phi:        phiRaw,
			PhiAvgProp: safeRatio(phiRaw, alpha, s),
		},
		Species: SpeciesStats{
			Omega:      omega,
			OmegaProp:  omegaProp,
			Psi:        psiRaw,
			PsiAvgProp: safeRatio(psiRaw, omega, n),
		},
	}

	sum.SigmaSites = covariance(x, x.T(), n, alphaProp)
	sum.SigmaSpecies = covariance(x.T(), x, s, omegaProp)
	sum.SchluterSites = schluter(sum.SigmaSites)
	sum.SchluterSpecies = schluter(sum.SigmaSpecies)

	sumOmegaProp := floats.Sum(omegaProp)
	sum.Whittaker = zeroIfNaN(n / sumOmegaProp)
	sum.Lande = n - sumOmegaProp
	sum.Legendre = floats.Sum(omega) - floats.Dot(omega, omega)/s

	return sum, nil
}

// Vectors returns the per-site and per-species vectors keyed by statistic name.
func (s *Summary) Vectors() map[string][]float64 {
	return map[string][]float64{
		KeyAlpha:      s.Sites.Alpha,
		KeyAlphaProp:  s.Sites.AlphaProp,
		KeyPhi:        s.Sites.Phi,
		KeyPhiAvgProp: s.Sites.PhiAvgProp,
		KeyOmega:      s.Species.Omega,
		KeyOmegaProp:  s.Species.OmegaProp,
		KeyPsi:        s.Species.Psi,
		KeyPsiAvgProp: s.Species.PsiAvgProp,
	}
}

// Scalars returns the beta-diversity and Schluter values keyed by statistic name.
func (s *Summary) Scalars() map[string]float64 {
	return map[string]float64{
		KeyWhittaker:       s.Whittaker,
		KeyLande:           s.Lande,
		KeyLegendre:        s.Legendre,
		KeySchluterSites:   s.SchluterSites,
		KeySchluterSpecies: s.SchluterSpecies,
	}
}

// covariance returns a·b/div − p·pᵀ.
func covariance(a, b mat.Matrix, div float64, p []float64) *mat.Dense {
	var prod mat.Dense
	prod.Mul(a, b)
	prod.Scale(1/div, &prod)
	pv := mat.NewVecDense(len(p), append([]float64(nil), p...))
	var outer mat.Dense
	outer.Outer(1, pv, pv)
	prod.Sub(&prod, &outer)
	return &prod
}

func schluter(sigma *mat.Dense) float64 {
	return zeroIfNaN(mat.Sum(sigma) / mat.Trace(sigma))
}

// safeRatio returns num[i] / (scale·den[i]) with 0 where the denominator is 0.
func safeRatio(num, den []float64, scale float64) []float64 {
	out := make([]float64, len(num))
	for i := range num {
		out[i] = zeroIfNaN(num[i] / (scale * den[i]))
	}
	return out
}

func zeroIfNaN(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func toFloats(v []int) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
