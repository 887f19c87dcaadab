package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"

	"github.com/demostore/go-store-admin/app/configs"
	"github.com/demostore/go-store-admin/app/controllers"
	"github.com/demostore/go-store-admin/app/feedback"
	"github.com/demostore/go-store-admin/app/models"
	"github.com/demostore/go-store-admin/app/repositories"
	"github.com/demostore/go-store-admin/app/services"
	"github.com/demostore/go-store-admin/app/sessions"
)

// deps bundles everything a command needs. Built once per invocation, after
// the env and session keys are known to be usable.
type deps struct {
	env     configs.ENV
	fb      feedback.Feedback
	confirm feedback.Confirmer
	store   *sessions.FileStore
	api     *services.APIClient
}

func buildDeps() (*deps, error) {
	env := configs.LoadEnv()

	keys, err := configs.LoadSessionKeys(env)
	if err != nil {
		return nil, err
	}

	store := sessions.NewFileStore(env.TokenPath, keys.AuthKey, keys.EncKey)
	fb := feedback.NewTerminal(feedback.SoundConfig{
		Player:  env.SoundPlayer,
		Confirm: env.SoundConfirm,
		Success: env.SoundSuccess,
		Error:   env.SoundError,
	})

	return &deps{
		env:     env,
		fb:      fb,
		confirm: feedback.NewTerminalConfirmer(),
		store:   store,
		api:     services.NewAPIClient(env.APIBaseURL, env.RequestTimeout, store),
	}, nil
}

// exitSilently sets a failing exit code without printing anything: every
// failure has already been reported once through the feedback layer.
func exitSilently() error {
	return cli.Exit("", 1)
}

// finish maps controller outcomes to process results. A declined
// confirmation is not a failure.
func finish(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, controllers.ErrCancelled) {
		log.Println("Aborted.")
		return nil
	}
	return exitSilently()
}

func RunCli() {
	cmd := &cli.Command{
		Name:  "store-admin",
		Usage: "Administration client for the clothing store API",
		Commands: []*cli.Command{
			authCommand(),
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
			usersCommand(),
			sizesCommand(),
			colorsCommand(),
			brandsCommand(),
			categoriesCommand(),
			gendersCommand(),
			productsCommand(),
			statsCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func authCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Log in and out of the store API",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Authenticate and store the session token",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					auth := services.NewAuthService(d.api, d.store)
					user, err := auth.Login(ctx, c.String("username"), c.String("password"))
					if err != nil {
						return err
					}
					d.fb.Notify(feedback.KindSuccess, fmt.Sprintf("Logged in as %s", user.Username))
					d.fb.Cue(feedback.KindSuccess)
					return nil
				},
			},
			{
				Name:  "logout",
				Usage: "Invalidate and forget the stored session",
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					auth := services.NewAuthService(d.api, d.store)
					if err := auth.Logout(ctx); err != nil {
						return err
					}
					log.Println("Session cleared.")
					return nil
				},
			},
			{
				Name:  "whoami",
				Usage: "Show the account the stored session belongs to",
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					auth := services.NewAuthService(d.api, d.store)
					user, err := auth.Verify(ctx)
					if err != nil {
						return err
					}
					fmt.Printf("%s <%s> (role %s, status %s)\n", user.Username, user.Email, user.Role, user.Status)
					return nil
				},
			},
		},
	}
}

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show record counts across the catalog",
		Action: func(ctx context.Context, c *cli.Command) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}

			users, err := repositories.NewUserRepository(d.api).Count(ctx)
			if err != nil {
				return err
			}
			sizes, err := repositories.NewSizeRepository(d.api).Count(ctx)
			if err != nil {
				return err
			}
			colors, err := repositories.NewColorRepository(d.api).Count(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("Users:  %d\nSizes:  %d\nColors: %d\n", users, sizes, colors)
			return nil
		},
	}
}

// listFlags are shared by every entity list command.
func listFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "case-insensitive substring match on name"},
		&cli.StringFlag{Name: "status", Usage: "exact status filter (e.g. ACTIVE)"},
		&cli.BoolFlag{Name: "include-inactive", Usage: "request inactive records as well"},
		&cli.BoolFlag{Name: "json", Usage: "print raw JSON instead of a table"},
	}
}

// runList loads a controller with the command's filter flags applied and
// hands the filtered view to the printer.
func runList[T controllers.Entity, C any, U any](ctx context.Context, c *cli.Command, ctrl *controllers.EntityController[T, C, U], print func([]T)) error {
	if err := ctrl.SetIncludeInactive(ctx, c.Bool("include-inactive")); err != nil {
		return exitSilently()
	}
	ctrl.SetSearch(c.String("search"))
	ctrl.SetStatusFilter(models.Status(c.String("status")))

	view := ctrl.Filtered()
	if c.Bool("json") {
		return printJSON(view)
	}
	print(view)
	return nil
}

func parsePrice(c *cli.Command, name string) (*decimal.Decimal, error) {
	raw := c.String(name)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return &d, nil
}
