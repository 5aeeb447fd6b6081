//go:build rp2040

package main

import (
	"log/slog"
	"machine"
	"time"

	"github.com/FarisAnsara/Theremin/config"
	"github.com/FarisAnsara/Theremin/theremin"
)

//go:generate tinygo flash -target=pico

func main() {
	// give the USB console a moment to attach
	time.Sleep(time.Second)

	tuning, err := config.Default()
	if err != nil {
		halt("tuning: " + err.Error())
	}
	level, _ := tuning.Level()
	log := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{Level: level}))

	devs, err := configureInstruments(tuning)
	if err != nil {
		log.Error("configure", "err", err)
		halt(err.Error())
	}

	ctl, err := theremin.NewController(devs, tuning.Controller(),
		theremin.WithLogger(log),
		theremin.WithNoteSink(theremin.LogNotes(log)),
	)
	if err != nil {
		log.Error("controller", "err", err)
		halt(err.Error())
	}

	machine.Watchdog.Configure(machine.WatchdogConfig{
		TimeoutMillis: 3000,
	})
	machine.Watchdog.Start()

	log.Info("calibrating", "samples", theremin.CalibrationSamples)
	for {
		ctl.Step()
		machine.Watchdog.Update()
	}
}

// halt stops the firmware on a configuration error and blinks the LED.
func halt(reason string) {
	println("halt: " + reason)
	config.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		config.LED.High()
		time.Sleep(time.Millisecond * 100)
		config.LED.Low()
		time.Sleep(time.Millisecond * 900)
	}
}
