// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mlx9061x

import "time"

// Variant identifies the sensor IC, which selects the register map.
type Variant string

const (
	MLX90614 Variant = "MLX90614"
	MLX90615 Variant = "MLX90615"
)

// MLX90614 register addresses. RAM registers are read at 0x00|addr, EEPROM
// cells at 0x20|addr.
const (
	mlx90614RawIR1     byte = 0x04
	mlx90614RawIR2     byte = 0x05
	mlx90614Ta         byte = 0x06
	mlx90614TObj1      byte = 0x07
	mlx90614TObj2      byte = 0x08
	mlx90614Emissivity byte = 0x24
	mlx90614Address    byte = 0x2e
	mlx90614ID0        byte = 0x3c
	mlx90614Sleep      byte = 0xff
)

// MLX90615 register addresses. EEPROM cells are read at 0x10|addr, RAM
// registers at 0x20|addr.
const (
	mlx90615Address    byte = 0x10
	mlx90615Emissivity byte = 0x13
	mlx90615ID0        byte = 0x1e
	mlx90615RawIR      byte = 0x25
	mlx90615Ta         byte = 0x26
	mlx90615TObj       byte = 0x27
	mlx90615Sleep      byte = 0xc6
)

// Emissivity is stored as a fraction of these.
const (
	mlx90614EmissivityScale = 65535.0
	mlx90615EmissivityScale = 16384.0
)

// registers describes where a variant keeps each quantity.
//
// A zero register in objects[1] or rawIR[1] means the variant has a single
// object channel.
type registers struct {
	ambient         byte
	objects         [2]byte
	rawIR           [2]byte
	emissivity      byte
	emissivityScale float64
	address         byte
	id0             byte
	sleep           byte
	wakeDelay       time.Duration
}

var variants = map[Variant]registers{
	MLX90614: {
		ambient:         mlx90614Ta,
		objects:         [2]byte{mlx90614TObj1, mlx90614TObj2},
		rawIR:           [2]byte{mlx90614RawIR1, mlx90614RawIR2},
		emissivity:      mlx90614Emissivity,
		emissivityScale: mlx90614EmissivityScale,
		address:         mlx90614Address,
		id0:             mlx90614ID0,
		sleep:           mlx90614Sleep,
		wakeDelay:       33 * time.Millisecond,
	},
	MLX90615: {
		ambient:         mlx90615Ta,
		objects:         [2]byte{mlx90615TObj, 0},
		rawIR:           [2]byte{mlx90615RawIR, 0},
		emissivity:      mlx90615Emissivity,
		emissivityScale: mlx90615EmissivityScale,
		address:         mlx90615Address,
		id0:             mlx90615ID0,
		sleep:           mlx90615Sleep,
		wakeDelay:       39 * time.Millisecond,
	},
}
