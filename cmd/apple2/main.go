// Command apple2 runs the Apple II+ core against a real 6502 core and
// renders text page 1 or 2 to the terminal. The CPU, ROM loader, renderer
// and keyboard source are the external collaborators spec.md places
// outside the core's scope; this binary is where they are wired up.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beevik/go6502"
	"github.com/urfave/cli/v2"

	"github.com/sehugg/apple2go/internal/config"
	"github.com/sehugg/apple2go/internal/machine"
)

func main() {
	app := &cli.App{
		Name:  "apple2",
		Usage: "run an Apple II+ session against a terminal renderer",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a YAML session config"},
			&cli.StringFlag{Name: "rom", Usage: "path to the 12 KiB Apple II+ ROM image"},
			&cli.StringFlag{Name: "disk1", Usage: "path to a 143360-byte DOS-order disk image for drive 1"},
			&cli.StringFlag{Name: "disk2", Usage: "path to a 143360-byte DOS-order disk image for drive 2"},
			&cli.UintFlag{Name: "volume", Usage: "disk volume number used when nibblizing", Value: 254},
			&cli.BoolFlag{Name: "write-protect1", Usage: "mark drive 1's image write-protected"},
			&cli.BoolFlag{Name: "write-protect2", Usage: "mark drive 2's image write-protected"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if v := c.String("rom"); v != "" {
		cfg.ROMPath = v
	}
	if v := c.String("disk1"); v != "" {
		cfg.Slot6.Disk1 = v
	}
	if v := c.String("disk2"); v != "" {
		cfg.Slot6.Disk2 = v
	}
	if c.IsSet("volume") {
		cfg.Volume = byte(c.Uint("volume"))
	}
	if c.Bool("write-protect1") {
		cfg.Slot6.WriteProtect[0] = true
	}
	if c.Bool("write-protect2") {
		cfg.Slot6.WriteProtect[1] = true
	}

	a, err := machine.New(machine.Options{
		ROMPath:           cfg.ROMPath,
		Volume:            cfg.Volume,
		Disk1Path:         cfg.Slot6.Disk1,
		Disk2Path:         cfg.Slot6.Disk2,
		Disk1WriteProtect: cfg.Slot6.WriteProtect[0],
		Disk2WriteProtect: cfg.Slot6.WriteProtect[1],
	})
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}

	cpu := go6502.NewCPU(go6502.NMOS, a.Bus)
	cpu.Reset()

	return runTerminal(a, cpu)
}
