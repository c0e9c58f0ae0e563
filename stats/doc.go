// Package stats summarizes a compressed PAM with marginal-sum statistics.
//
// For a compressed matrix X with S sites (rows) and N species (columns):
//
//	alpha      = X·1           species richness per site
//	alphaProp  = alpha / N
//	omega      = Xᵀ·1          range size per species
//	omegaProp  = omega / S
//	phi        = X·omega       per-site sum of range sizes
//	phiAvgProp = phi / (S·alpha)
//	psi        = Xᵀ·alpha      per-species sum of richness
//	psiAvgProp = psi / (N·omega)
//
// Covariances and their Schluter variance ratios:
//
//	sigmaSites   = X·Xᵀ/N − alphaProp·alphaPropᵀ
//	sigmaSpecies = Xᵀ·X/S − omegaProp·omegaPropᵀ
//	schluter     = sum(sigma) / trace(sigma)
//
// Beta diversity:
//
//	whittaker = N / Σ omegaProp
//	lande     = N − Σ omegaProp
//	legendre  = Σ omega − Σ omega² / S
//
// Ratios with a zero denominator are reported as 0.
// Summarize is a pure function of the matrix; it never mutates the input.
package stats
