package main

import (
	"fmt"
	"os"

	"github.com/robinjoseph08/golib/logger"
	"github.com/urfave/cli/v2"

	"github.com/openshelf/openshelf/pkg/sessions"
)

func main() {
	log := logger.New()

	app := &cli.App{
		Name:        "hashpw",
		Usage:       "CLI to generate argon2id password hashes",
		Description: "Generates PHC-encoded argon2id hashes for seeding principals",
		Commands: []*cli.Command{
			{
				Name:      "hash",
				Usage:     "hash a password",
				ArgsUsage: "<password>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("expected exactly one password argument", 1)
					}

					hash, err := sessions.HashPassword(c.Args().First())
					if err != nil {
						return err
					}

					fmt.Println(hash)
					return nil
				},
			},
			{
				Name:      "verify",
				Usage:     "verify a password against a PHC hash",
				ArgsUsage: "<password> <hash>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return cli.Exit("expected password and hash arguments", 1)
					}

					ok, err := sessions.VerifyPassword(c.Args().Get(0), c.Args().Get(1))
					if err != nil {
						return err
					}
					if !ok {
						return cli.Exit("password does not match", 1)
					}

					fmt.Println("ok")
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Err(err).Error("hashpw error")
		os.Exit(1)
	}
}
