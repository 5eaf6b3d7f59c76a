// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mlx9061x_test

import (
	"log"

	"github.com/GermanBionicSystems/irdevices/mlx9061x"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

// Example shows reading temperatures from an MLX90614.
func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer bus.Close()

	dev, err := mlx9061x.NewMLX90614(bus, nil)
	if err != nil {
		log.Fatal(err)
	}

	ta, err := dev.AmbientTemperature(mlx9061x.Celsius)
	if err != nil {
		log.Fatal(err)
	}
	to, err := dev.ObjectTemperature(mlx9061x.Fahrenheit)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Ambient: %.2f°C   Object: %.2f°F\n", ta, to)

	env := physic.Env{}
	if err := dev.Sense(&env); err != nil {
		log.Fatal(err)
	}
	log.Printf("Object: %s\n", env.Temperature)
}

// Example_emissivity shows changing the emissivity of an MLX90615 on a non
// default address.
func Example_emissivity() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer bus.Close()

	dev, err := mlx9061x.NewMLX90615(bus, &mlx9061x.Opts{Addr: 0x5b})
	if err != nil {
		log.Fatal(err)
	}
	id, err := dev.DeviceID()
	if err != nil {
		log.Fatal(err)
	}
	if err := dev.SetEmissivity(0.95); err != nil {
		log.Fatal(err)
	}
	eps, err := dev.Emissivity()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%s id 0x%08x emissivity %.3f\n", dev, id, eps)
}

// ExampleWake shows putting a sensor to sleep and waking it up through the
// bus SCL line.
func ExampleWake() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer bus.Close()

	dev, err := mlx9061x.NewMLX90614(bus, nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := dev.Sleep(); err != nil {
		log.Fatal(err)
	}

	// Use the bus SCL pin if the driver exposes it, otherwise a GPIO wired to
	// the line.
	scl := gpioreg.ByName("GPIO3")
	if p, ok := bus.(i2c.Pins); ok && p.SCL() != nil {
		scl = p.SCL()
	}
	if scl == nil {
		log.Fatal("no SCL pin")
	}
	if err := mlx9061x.Wake(scl, mlx9061x.MLX90614); err != nil {
		log.Fatal(err)
	}
}
