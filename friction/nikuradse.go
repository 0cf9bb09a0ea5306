package friction

import "math"

// Nikuradse implements the single explicit closure that spans laminar
// and turbulent regimes without a regime switch. Uses the Churchill (1977) all-Reynolds-
// number blend, which reduces to 64/Re in the laminar limit and to the
// fully-rough Nikuradse form at high Re.
type Nikuradse struct{}

func (Nikuradse) Lambda(re, relRoughness float64) float64 {
	return churchill(re, relRoughness)
}

func (o Nikuradse) DLambdaDRe(re, relRoughness float64) float64 {
	const h = 1e-3
	return (o.Lambda(re+h, relRoughness) - o.Lambda(re-h, relRoughness)) / (2 * h)
}

func churchill(re, relRoughness float64) float64 {
	if re <= 0 {
		return 0
	}
	A := math.Pow(2.457*math.Log(1/(math.Pow(7/re, 0.9)+0.27*relRoughness)), 16)
	B := math.Pow(37530/re, 16)
	term1 := math.Pow(8/re, 12)
	term2 := math.Pow(1/(A+B), 1.5)
	return 8 * math.Pow(term1+term2, 1.0/12.0)
}
