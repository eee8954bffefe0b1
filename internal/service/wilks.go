package service

// Wilks polynomial coefficients (Wilks, 1994). The denominator is evaluated at
// the lifter's bodyweight in kilograms.
var (
	wilksMale   = [6]float64{-216.0475144, 16.2606339, -0.002388645, -0.00113732, 7.01863e-06, -1.291e-08}
	wilksFemale = [6]float64{594.31747775582, -27.23842536447, 0.82112226871, -0.00930733913, 4.731582e-05, -9.054e-08}
)

// WilksCoefficient returns the Wilks coefficient for a lifter of the given
// bodyweight. Female coefficients are used when female is true.
func WilksCoefficient(bodyweight float64, female bool) float64 {
	if bodyweight <= 0 {
		return 0
	}
	coeffs := wilksMale
	if female {
		coeffs = wilksFemale
	}
	denom := 0.0
	x := 1.0
	for _, c := range coeffs {
		denom += c * x
		x *= bodyweight
	}
	if denom == 0 {
		return 0
	}
	return 500 / denom
}

// WilksScore returns the Wilks points for a competition total, rounded to one
// decimal as stored in resultados.
func WilksScore(total, bodyweight float64, female bool) float64 {
	score := total * WilksCoefficient(bodyweight, female)
	return roundTo1(score)
}

func roundTo1(v float64) float64 {
	if v < 0 {
		return float64(int64(v*10-0.5)) / 10
	}
	return float64(int64(v*10+0.5)) / 10
}
