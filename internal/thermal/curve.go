package thermal

import "math"

// Ambient reference temperature of the standard fire curve.
const baseTempK = 293.0

// StandardFireCurve returns the furnace gas temperature in kelvin at
// time t seconds under the standard fire regime (GOST 30247):
//
//	Tg(t) = 345·log10((8/60)·t + 1) + 293
func StandardFireCurve(tSec float64) float64 {
	return 345.0*math.Log10(8.0/60.0*tSec+1.0) + baseTempK
}

// KelvinToCelsius converts an absolute temperature to °C.
func KelvinToCelsius(k float64) float64 { return k - 273.15 }

// CelsiusToKelvin converts a temperature in °C to kelvin.
func CelsiusToKelvin(c float64) float64 { return c + 273.15 }
