package service

import "math"

// computeTotaux derives TVA and TTC from an HT amount, rounded to the
// cent. Every document goes through here so TTC = HT + TVA holds by
// construction instead of being recomputed ad hoc per screen.
func computeTotaux(montantHT, tauxTVA float64) (tva, ttc float64) {
	tva = round2(montantHT * tauxTVA / 100)
	ttc = round2(montantHT + tva)
	return tva, ttc
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
