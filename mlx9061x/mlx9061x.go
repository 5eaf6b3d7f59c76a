// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mlx9061x

import (
	"errors"
	"fmt"
	"time"

	"github.com/GermanBionicSystems/irdevices/common"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

const (
	// DefaultAddress is the factory I²C address of both variants.
	DefaultAddress i2c.Addr = 0x5a

	// DefaultEEPROMWriteDelay is how long the sensor needs to program an
	// EEPROM cell.
	DefaultEEPROMWriteDelay = 10 * time.Millisecond

	maxEEPROMWriteDelay = 255 * time.Millisecond

	// Addresses outside this range are reserved by the I²C specification.
	minAddress uint16 = 0x08
	maxAddress uint16 = 0x77
)

var (
	// ErrChecksumMismatch is returned when the PEC sent by the sensor does not
	// match the one computed over the transfer. The value read is discarded.
	ErrChecksumMismatch = errors.New("mlx9061x: checksum mismatch")

	// ErrInvalidInput is returned when an argument is outside the range the
	// sensor accepts. No bus transfer takes place.
	ErrInvalidInput = errors.New("mlx9061x: invalid input")

	// ErrUnsupportedVariant is returned when an operation or variant isn't
	// available on the device.
	ErrUnsupportedVariant = errors.New("mlx9061x: unsupported variant")
)

// Opts holds the configuration options.
type Opts struct {
	// Addr is the 7-bit address the sensor answers on. Zero selects
	// DefaultAddress. It must match the address stored in the sensor EEPROM.
	Addr uint16
	// EEPROMWriteDelay is the time to wait after each EEPROM write. Zero
	// selects DefaultEEPROMWriteDelay.
	EEPROMWriteDelay time.Duration
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Addr:             uint16(DefaultAddress),
	EEPROMWriteDelay: DefaultEEPROMWriteDelay,
}

// Dev is a handle to an MLX90614 or MLX90615 sensor.
//
// Dev is not safe for concurrent use; callers sharing a bus between sensors
// must serialize access themselves.
type Dev struct {
	d          *i2c.Dev
	variant    Variant
	regs       registers
	eepromWait time.Duration
}

// NewMLX90614 returns an object that communicates over I²C to an MLX90614.
func NewMLX90614(b i2c.Bus, opts *Opts) (*Dev, error) {
	return New(b, MLX90614, opts)
}

// NewMLX90615 returns an object that communicates over I²C to an MLX90615.
func NewMLX90615(b i2c.Bus, opts *Opts) (*Dev, error) {
	return New(b, MLX90615, opts)
}

// New returns an object that communicates over I²C to the sensor variant.
//
// The address is validated before any bus transfer; nothing is sent to the
// sensor during construction. To move a sensor to another address, connect
// on the current one and call SetAddress.
func New(b i2c.Bus, variant Variant, opts *Opts) (*Dev, error) {
	regs, ok := variants[variant]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVariant, string(variant))
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	addr := opts.Addr
	if addr == 0 {
		addr = uint16(DefaultAddress)
	}
	if err := validateAddress(addr); err != nil {
		return nil, err
	}
	wait := opts.EEPROMWriteDelay
	if wait == 0 {
		wait = DefaultEEPROMWriteDelay
	}
	if wait < 0 || wait > maxEEPROMWriteDelay {
		return nil, fmt.Errorf("%w: EEPROM write delay %s not in (0, %s]", ErrInvalidInput, wait, maxEEPROMWriteDelay)
	}
	return &Dev{
		d:          &i2c.Dev{Bus: b, Addr: addr},
		variant:    variant,
		regs:       regs,
		eepromWait: wait,
	}, nil
}

func validateAddress(addr uint16) error {
	if addr < minAddress || addr > maxAddress {
		return fmt.Errorf("%w: address %#x not in [%#x, %#x]", ErrInvalidInput, addr, minAddress, maxAddress)
	}
	return nil
}

// Address returns the address the driver talks to.
func (d *Dev) Address() uint16 {
	return d.d.Addr
}

// Variant returns the sensor IC.
func (d *Dev) Variant() Variant {
	return d.variant
}

// AmbientTemperature returns the die temperature of the sensor.
func (d *Dev) AmbientTemperature(u Unit) (float64, error) {
	return d.temperature(d.regs.ambient, u)
}

// ObjectTemperature returns the temperature of the object in the field of
// view, or of the first zone on dual-zone MLX90614 parts.
func (d *Dev) ObjectTemperature(u Unit) (float64, error) {
	return d.temperature(d.regs.objects[0], u)
}

// ObjectTemperature2 returns the temperature seen by the second zone of a
// dual-zone MLX90614. The MLX90615 returns ErrUnsupportedVariant.
func (d *Dev) ObjectTemperature2(u Unit) (float64, error) {
	if d.regs.objects[1] == 0 {
		return 0, d.unsupported("second object channel")
	}
	return d.temperature(d.regs.objects[1], u)
}

// RawIR returns the raw value of the first IR channel.
func (d *Dev) RawIR() (uint16, error) {
	return d.readU16(d.regs.rawIR[0])
}

// RawIR2 returns the raw value of the second IR channel of an MLX90614. The
// MLX90615 returns ErrUnsupportedVariant.
func (d *Dev) RawIR2() (uint16, error) {
	if d.regs.rawIR[1] == 0 {
		return 0, d.unsupported("second IR channel")
	}
	return d.readU16(d.regs.rawIR[1])
}

// Emissivity returns the emissivity setting, a fraction between 0 and 1.
func (d *Dev) Emissivity() (float64, error) {
	scale := d.regs.emissivityScale
	return read(d, d.regs.emissivity, func(count uint16) float64 {
		return countToEmissivity(count, scale)
	})
}

// SetEmissivity stores the emissivity epsilon in [0, 1] in EEPROM.
//
// Values outside the range return ErrInvalidInput without touching the bus.
func (d *Dev) SetEmissivity(epsilon float64) error {
	count, err := emissivityToCount(epsilon, d.regs.emissivityScale)
	if err != nil {
		return err
	}
	return d.writeU16EEPROM(d.regs.emissivity, count)
}

// DeviceID returns the identification number programmed at the factory. The
// first ID word is the most significant.
func (d *Dev) DeviceID() (uint32, error) {
	hi, err := d.readU16(d.regs.id0)
	if err != nil {
		return 0, err
	}
	lo, err := d.readU16(d.regs.id0 + 1)
	if err != nil {
		return 0, err
	}
	return uint32(hi)<<16 | uint32(lo), nil
}

// SetAddress stores a new 7-bit I²C address in the sensor EEPROM.
//
// The driver keeps using the current address. The sensor answers on the new
// one after a power cycle; create a new Dev with Opts.Addr set to it.
func (d *Dev) SetAddress(addr uint16) error {
	if err := validateAddress(addr); err != nil {
		return err
	}
	return d.writeU16EEPROM(d.regs.address, addr)
}

// Sleep puts the sensor in its low power mode. It stops answering on the bus
// until woken up with Wake.
func (d *Dev) Sleep() error {
	cmd := d.regs.sleep
	pec := common.PEC([]byte{byte(d.d.Addr << 1), cmd})
	if err := d.d.Tx([]byte{cmd, pec}, nil); err != nil {
		return fmt.Errorf("mlx9061x: error sending sleep command: %w", err)
	}
	return nil
}

// Sense reads the object temperature. Only env.Temperature is set.
//
// Implements physic.SenseEnv.
func (d *Dev) Sense(env *physic.Env) error {
	t, err := read(d, d.regs.objects[0], countToTemperature)
	if err != nil {
		return err
	}
	env.Temperature = t
	return nil
}

// SenseContinuous is not supported. Call Sense at the rate needed.
//
// Implements physic.SenseEnv.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	return nil, errors.New("mlx9061x: continuous sensing is not supported")
}

// Precision implements physic.SenseEnv.
func (d *Dev) Precision(env *physic.Env) {
	env.Temperature = countResolution
	env.Pressure = 0
	env.Humidity = 0
}

// Halt implements conn.Resource. The sensor has no operation in progress to
// stop.
func (d *Dev) Halt() error {
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("%s{%s}", string(d.variant), d.d)
}

func (d *Dev) unsupported(what string) error {
	return fmt.Errorf("%w: %s has no %s", ErrUnsupportedVariant, string(d.variant), what)
}

// temperature reads a temperature register in the unit u. The unit is
// checked before the read.
func (d *Dev) temperature(reg byte, u Unit) (float64, error) {
	if !u.valid() {
		return 0, fmt.Errorf("%w: %s", ErrInvalidInput, u)
	}
	return read(d, reg, func(count uint16) float64 {
		return countToUnit(count, u)
	})
}

// read reads a register and decodes it.
func read[T any](d *Dev, reg byte, decode func(uint16) T) (T, error) {
	count, err := d.readU16(reg)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode(count), nil
}

// readU16 reads a register. The sensor returns the low byte, the high byte,
// then the PEC computed over the whole transaction including both address
// bytes.
func (d *Dev) readU16(reg byte) (uint16, error) {
	r := make([]byte, 3)
	if err := d.d.Tx([]byte{reg}, r); err != nil {
		return 0, fmt.Errorf("mlx9061x: error reading register 0x%02x: %w", reg, err)
	}
	addr := byte(d.d.Addr << 1)
	pec := common.PEC([]byte{addr, reg, addr | 1, r[0], r[1]})
	if pec != r[2] {
		return 0, fmt.Errorf("%w: register 0x%02x sent PEC 0x%02x, computed 0x%02x", ErrChecksumMismatch, reg, r[2], pec)
	}
	return uint16(r[0]) | uint16(r[1])<<8, nil
}

// writeU16EEPROM writes an EEPROM cell, then waits for the sensor to finish
// programming it. The wait happens even when the write fails.
func (d *Dev) writeU16EEPROM(reg byte, value uint16) error {
	w := []byte{reg, byte(value), byte(value >> 8), 0}
	w[3] = common.PEC([]byte{byte(d.d.Addr << 1), w[0], w[1], w[2]})
	err := d.d.Tx(w, nil)
	sleep(d.eepromWait)
	if err != nil {
		return fmt.Errorf("mlx9061x: error writing register 0x%02x: %w", reg, err)
	}
	return nil
}

var sleep = time.Sleep

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
