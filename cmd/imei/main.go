package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Version is set at build time.
var Version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                   "imei",
		Usage:                  "Parse, validate and generate IMEI numbers",
		Version:                Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level for diagnostics on stderr",
				Value: "warn",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Aliases:   []string{"p"},
				Usage:     "Decode the TAC, FAC, SNR and check digit of an IMEI",
				ArgsUsage: "<imei>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Output as JSON",
					},
					writeAsFlag(),
				},
				Action: parseCommand,
			},
			{
				Name:      "validate",
				Aliases:   []string{"v"},
				Usage:     "Check IMEIs; exits non-zero if any is invalid",
				ArgsUsage: "<imei>...",
				Action:    validateCommand,
			},
			{
				Name:    "generate",
				Aliases: []string{"g"},
				Usage:   "Generate valid IMEIs",
				Flags: []cli.Flag{
					&cli.Uint64Flag{
						Name:    "seed",
						Aliases: []string{"s"},
						Usage:   "Seed for reproducible output (0=secure random)",
					},
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Usage:   "Number of IMEIs to generate",
						Value:   1,
					},
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Output as a JSON array",
					},
					writeAsFlag(),
				},
				Action: generateCommand,
			},
			{
				Name:   "samples",
				Usage:  "Walk through the library on a known device",
				Action: samplesCommand,
			},
		},
	}
}

func writeAsFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "write-as",
		Usage: "JSON representation of IMEIs: default, number or string",
		Value: "default",
	}
}
