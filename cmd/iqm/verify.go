package main

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/hqsquantum/iqm-go/pkg/circuit"
	"github.com/hqsquantum/iqm-go/pkg/devices"
)

// sampleCircuit builds a small circuit touching a register definition, a
// two-qubit interaction native to the device and a measurement. Devices
// without direct qubit-qubit coupling get a store/cz/load sequence through
// the central resonator instead of ControlledPauliZ. The readout register is
// sized to hold a measure-all on any of the supported devices.
func sampleCircuit(device devices.Device, shots int) *circuit.Circuit {
	c := circuit.New()
	c.Add(
		circuit.DefinitionBit{Name: "ro", Length: 6, IsOutput: true},
		circuit.RotateXY{QubitIndex: 2, Theta: 1.0, Phi: 1.0},
	)
	if _, ok := device.TwoQubitGateTime("ControlledPauliZ", 0, 2); ok {
		c.Add(circuit.ControlledPauliZ{ControlQubit: 0, TargetQubit: 2})
	} else {
		c.Add(
			circuit.SingleExcitationStore{QubitIndex: 0, Mode: 0},
			circuit.CZQubitResonator{QubitIndex: 2, Mode: 0},
			circuit.SingleExcitationLoad{QubitIndex: 0, Mode: 0},
		)
	}
	c.Add(circuit.PragmaRepeatedMeasurement{Readout: "ro", Shots: shots})
	return c
}

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Build a backend against the selected device and validate a sample circuit",
		Action: func(c *cli.Context) error {
			banner := figure.NewFigure("IQM Go", "", true)
			banner.Print()
			fmt.Println("")

			log := appLogger(c)
			b, err := newBackend(c)
			if err != nil {
				return err
			}

			if err := b.ValidateCircuit(sampleCircuit(b.Device(), 1)); err != nil {
				return err
			}

			log.Info("backend constructed",
				zap.String("device", b.Device().Name()),
				zap.Int("qubits", b.Device().NumberQubits()),
				zap.String("endpoint", b.Device().RemoteHost()))
			return nil
		},
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Submit a sample circuit to the device and wait for the results",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "shots",
				Value: 10,
				Usage: "Number of measurements",
			},
		},
		Action: func(c *cli.Context) error {
			log := appLogger(c)
			b, err := newBackend(c)
			if err != nil {
				return err
			}

			registers, err := b.Run(c.Context, sampleCircuit(b.Device(), c.Int("shots")))
			if err != nil {
				return err
			}

			for name, reg := range registers.Bit {
				log.Info("register results", zap.String("register", name), zap.Int("shots", len(reg)))
				for _, shot := range reg {
					fmt.Println(shot)
				}
			}
			return nil
		},
	}
}
