package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/configs"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/db/seeders"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/helpers"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/models"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/models/migrations"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed the catalog with the sample categories, products and settings",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "fake",
						Usage: "additionally generate N fake products for demos",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}
					if n := c.Int("fake"); n > 0 {
						if err := seeders.SeedFakeProducts(db, int(n)); err != nil {
							return err
						}
					}
					log.Println("✅ Seed complete")
					return nil
				},
			},
			{
				Name:  "create-admin",
				Usage: "Create an admin account from ADMIN_EMAIL / ADMIN_PASSWORD",
				Action: func(ctx context.Context, c *cli.Command) error {
					env := configs.LoadEnv()
					if env.AdminEmail == "" || env.AdminPassword == "" {
						return fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
					}

					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}

					admin := models.Admin{
						ID:       uuid.New().String(),
						Name:     "Admin",
						Email:    env.AdminEmail,
						Password: helpers.HashPassword(env.AdminPassword),
					}
					if err := db.FirstOrCreate(&admin, "email = ?", admin.Email).Error; err != nil {
						return err
					}
					log.Printf("✅ Admin account ready: %s", admin.Email)
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Println("✅ Key generation complete. Please copy the keys to your .env file.")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
