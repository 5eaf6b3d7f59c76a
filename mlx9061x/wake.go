// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mlx9061x

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Wake brings a sensor of the given variant out of sleep by holding its SCL
// line low for the wake-up time (33ms for the MLX90614, 39ms for the
// MLX90615), then releasing it high.
//
// scl must be the GPIO wired to the sensor SCL line, for example the pin
// returned by i2c.Pins.SCL(). If driving the line fails the sequence stops
// and the sensor state is unknown.
func Wake(scl gpio.PinOut, variant Variant) error {
	regs, ok := variants[variant]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedVariant, string(variant))
	}
	if err := scl.Out(gpio.Low); err != nil {
		return fmt.Errorf("mlx9061x: error pulling %s low: %w", scl, err)
	}
	sleep(regs.wakeDelay)
	if err := scl.Out(gpio.High); err != nil {
		return fmt.Errorf("mlx9061x: error releasing %s: %w", scl, err)
	}
	return nil
}
