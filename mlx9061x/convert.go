// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mlx9061x

import (
	"fmt"
	"math"

	"periph.io/x/conn/v3/physic"
)

// Unit selects the scale temperatures are returned in. The zero value is
// Celsius.
type Unit int

const (
	Celsius Unit = iota
	Fahrenheit
)

func (u Unit) String() string {
	switch u {
	case Celsius:
		return "°C"
	case Fahrenheit:
		return "°F"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

func (u Unit) valid() bool {
	return u == Celsius || u == Fahrenheit
}

const (
	// One LSB of a temperature register.
	countResolution = 20 * physic.MilliKelvin
	countScale      = 0.02
	kelvinOffset    = 273.15
)

// countToCelsius converts a temperature register to °C.
func countToCelsius(count uint16) float64 {
	return float64(float64(count)*countScale) - kelvinOffset
}

// celsiusToFahrenheit converts °C to °F. The explicit conversion keeps the
// compiler from fusing the multiply-add.
func celsiusToFahrenheit(c float64) float64 {
	return float64(c*1.8) + 32.0
}

// countToUnit converts a temperature register to u, which must be valid.
func countToUnit(count uint16, u Unit) float64 {
	c := countToCelsius(count)
	if u == Fahrenheit {
		return celsiusToFahrenheit(c)
	}
	return c
}

// countToTemperature converts a temperature register to a physic.Temperature
// without going through floating point.
func countToTemperature(count uint16) physic.Temperature {
	return physic.Temperature(count) * countResolution
}

// countToEmissivity converts an emissivity register to a fraction.
func countToEmissivity(count uint16, scale float64) float64 {
	return float64(count) / scale
}

// emissivityToCount encodes a fraction in [0, 1] as an emissivity register,
// rounding half up. NaN and values outside [0, 1] are rejected.
func emissivityToCount(epsilon, scale float64) (uint16, error) {
	if math.IsNaN(epsilon) || epsilon < 0.0 || epsilon > 1.0 {
		return 0, fmt.Errorf("%w: emissivity %g not in [0, 1]", ErrInvalidInput, epsilon)
	}
	return uint16(epsilon*scale + 0.5), nil
}
