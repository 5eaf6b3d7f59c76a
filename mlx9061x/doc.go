// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mlx9061x provides a driver for the Melexis MLX90614 and MLX90615
// non-contact infrared thermometers.
//
// Both devices speak SMBus. Every word read from the sensor is followed by a
// Packet Error Code (PEC) which is verified before the value is used, and
// every word written carries one. Writes land in EEPROM, after which the
// sensor is unresponsive for a few milliseconds; the driver blocks for the
// configured EEPROM write delay after each write.
//
// The MLX90614 has one or two object channels (dual-zone parts) and stores
// emissivity as a fraction of 65535. The MLX90615 has a single object channel
// and stores emissivity as a fraction of 16384.
//
// A sensor put to sleep with Dev.Sleep is brought back by Wake, which pulses
// the SCL line low.
//
// # Datasheets
//
// https://www.melexis.com/en/documents/documentation/datasheets/datasheet-mlx90614
//
// https://www.melexis.com/en/documents/documentation/datasheets/datasheet-mlx90615
package mlx9061x
