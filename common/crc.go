// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, a CRC8 calculation
package common

// CRC8 calculates the 8-bit CRC of the byte slice parameter using the given
// polynomial and initial register value. Bits are processed most significant
// first, with no reflection and no final XOR.
func CRC8(poly, init byte, bytes []byte) byte {
	crc := init
	for _, val := range bytes {
		crc ^= val
		for i := 0; i < 8; i++ {
			if (crc & 0x80) == 0 {
				crc <<= 1
			} else {
				crc = (byte)((crc << 1) ^ poly)
			}
		}
	}
	return crc
}

// PEC returns the SMBus Packet Error Code of the byte slice. It is CRC-8
// with polynomial x⁸+x²+x+1 (0x07) and an initial value of 0, as used by
// Melexis infrared thermometers.
func PEC(bytes []byte) byte {
	return CRC8(0x07, 0x00, bytes)
}
