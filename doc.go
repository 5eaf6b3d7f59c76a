// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package devices is a container for infrared thermometer drivers.
//
// The drivers are built on periph.io/x/conn/v3 and consume an i2c.Bus
// opened through i2creg.
package devices
