package main

import (
	"log"
	"os"

	"github.com/aussiebroadwan/oidcreg/internal/registration/app"
	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:    "oidcreg",
		Usage:   "OpenID Connect dynamic client registration service",
		Version: app.BuildVersion,
		Action:  serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the registration HTTP server (default)",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply pending client store migrations and exit",
				Action: migrate,
			},
			{
				Name:  "clients",
				Usage: "inspect registered clients",
				Subcommands: []*cli.Command{
					{
						Name:  "list",
						Usage: "list registered clients, newest first",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "service-id",
								Usage: "only clients registered for this redirect uri, in evaluation order",
							},
						},
						Action: listClients,
					},
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatalf("oidcreg: %v", err)
	}
}
