package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/demostore/go-store-admin/app/controllers"
	"github.com/demostore/go-store-admin/app/models"
	"github.com/demostore/go-store-admin/app/repositories"
)

func argID(c *cli.Command) (int64, error) {
	raw := c.Args().First()
	if raw == "" {
		return 0, fmt.Errorf("missing required <id> argument")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func int64Ptr(c *cli.Command, name string) *int64 {
	if !c.IsSet(name) {
		return nil
	}
	v := c.Int64(name)
	return &v
}

// loaded fills the controller's list snapshot before a write so the
// uniqueness pre-check and the delete prompt have data to work with.
func loaded[T controllers.Entity, C any, U any](ctx context.Context, ctrl *controllers.EntityController[T, C, U]) error {
	if err := ctrl.Load(ctx); err != nil {
		return exitSilently()
	}
	return nil
}

func runCreate[T controllers.Entity, C any, U any](ctx context.Context, ctrl *controllers.EntityController[T, C, U], req C) error {
	if err := loaded(ctx, ctrl); err != nil {
		return err
	}
	ctrl.OpenCreate()
	created, err := ctrl.SubmitCreate(ctx, req)
	if err != nil {
		return finish(err)
	}
	fmt.Printf("ID: %d\n", (*created).EntityID())
	return nil
}

func runUpdate[T controllers.Entity, C any, U any](ctx context.Context, ctrl *controllers.EntityController[T, C, U], id int64, req U) error {
	if err := loaded(ctx, ctrl); err != nil {
		return err
	}
	if err := ctrl.OpenEdit(id); err != nil {
		return err
	}
	_, err := ctrl.SubmitUpdate(ctx, req)
	return finish(err)
}

func runDelete[T controllers.Entity, C any, U any](ctx context.Context, ctrl *controllers.EntityController[T, C, U], id int64) error {
	if err := loaded(ctx, ctrl); err != nil {
		return err
	}
	return finish(ctrl.DeleteByID(ctx, id))
}

func usersCommand() *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "Manage user accounts",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List user accounts",
				Flags: listFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					ctrl := controllers.NewUserController(repositories.NewUserRepository(d.api), d.fb, d.confirm)
					return runList(ctx, c, ctrl, printUsers)
				},
			},
			{
				Name:      "get",
				Usage:     "Show one user account",
				ArgsUsage: "<id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					user, err := repositories.NewUserRepository(d.api).GetByID(ctx, id)
					if err != nil {
						return err
					}
					return printJSON(user)
				},
			},
			{
				Name:  "create",
				Usage: "Create a user account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
					&cli.StringFlag{Name: "phone"},
					&cli.StringFlag{Name: "role", Value: string(models.RoleCustomer)},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					ctrl := controllers.NewUserController(repositories.NewUserRepository(d.api), d.fb, d.confirm)
					return runCreate(ctx, ctrl, models.CreateUserRequest{
						Username: c.String("username"),
						Email:    c.String("email"),
						Password: c.String("password"),
						Phone:    c.String("phone"),
						Role:     models.Role(c.String("role")),
					})
				},
			},
			{
				Name:      "update",
				Usage:     "Update a user account",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username"},
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "phone"},
					&cli.StringFlag{Name: "role"},
					&cli.StringFlag{Name: "status"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					ctrl := controllers.NewUserController(repositories.NewUserRepository(d.api), d.fb, d.confirm)
					return runUpdate(ctx, ctrl, id, models.UpdateUserRequest{
						Username: c.String("username"),
						Email:    c.String("email"),
						Phone:    c.String("phone"),
						Role:     models.Role(c.String("role")),
						Status:   models.Status(c.String("status")),
					})
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a user account",
				ArgsUsage: "<id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					ctrl := controllers.NewUserController(repositories.NewUserRepository(d.api), d.fb, d.confirm)
					return runDelete(ctx, ctrl, id)
				},
			},
		},
	}
}

func sizesCommand() *cli.Command {
	return &cli.Command{
		Name:  "sizes",
		Usage: "Manage garment sizes",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List sizes",
				Flags: listFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					ctrl := controllers.NewSizeController(repositories.NewSizeRepository(d.api), d.fb, d.confirm)
					return runList(ctx, c, ctrl, printSizes)
				},
			},
			{
				Name:      "get",
				Usage:     "Show one size",
				ArgsUsage: "<id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					size, err := repositories.NewSizeRepository(d.api).GetByID(ctx, id)
					if err != nil {
						return err
					}
					return printJSON(size)
				},
			},
			{
				Name:  "create",
				Usage: "Create a size",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					ctrl := controllers.NewSizeController(repositories.NewSizeRepository(d.api), d.fb, d.confirm)
					return runCreate(ctx, ctrl, models.CreateSizeRequest{SizeName: c.String("name")})
				},
			},
			{
				Name:      "update",
				Usage:     "Rename a size or change its status",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "status"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					ctrl := controllers.NewSizeController(repositories.NewSizeRepository(d.api), d.fb, d.confirm)
					return runUpdate(ctx, ctrl, id, models.UpdateSizeRequest{
						SizeName: c.String("name"),
						Status:   models.Status(c.String("status")),
					})
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a size",
				ArgsUsage: "<id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					ctrl := controllers.NewSizeController(repositories.NewSizeRepository(d.api), d.fb, d.confirm)
					return runDelete(ctx, ctrl, id)
				},
			},
		},
	}
}

func colorsCommand() *cli.Command {
	return &cli.Command{
		Name:  "colors",
		Usage: "Manage colors",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List colors",
				Flags: listFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					ctrl := controllers.NewColorController(repositories.NewColorRepository(d.api), d.fb, d.confirm)
					return runList(ctx, c, ctrl, printColors)
				},
			},
			{
				Name:      "get",
				Usage:     "Show one color",
				ArgsUsage: "<id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					color, err := repositories.NewColorRepository(d.api).GetByID(ctx, id)
					if err != nil {
						return err
					}
					return printJSON(color)
				},
			},
			{
				Name:  "create",
				Usage: "Create a color",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					ctrl := controllers.NewColorController(repositories.NewColorRepository(d.api), d.fb, d.confirm)
					return runCreate(ctx, ctrl, models.CreateColorRequest{ColorName: c.String("name")})
				},
			},
			{
				Name:      "update",
				Usage:     "Rename a color or change its status",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "status"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					ctrl := controllers.NewColorController(repositories.NewColorRepository(d.api), d.fb, d.confirm)
					return runUpdate(ctx, ctrl, id, models.UpdateColorRequest{
						ColorName: c.String("name"),
						Status:    models.Status(c.String("status")),
					})
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a color",
				ArgsUsage: "<id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					ctrl := controllers.NewColorController(repositories.NewColorRepository(d.api), d.fb, d.confirm)
					return runDelete(ctx, ctrl, id)
				},
			},
			{
				Name:      "images",
				Usage:     "Manage a color's image gallery",
				ArgsUsage: "<colorId>",
				Commands: []*cli.Command{
					{
						Name:      "list",
						Usage:     "List a color's images",
						ArgsUsage: "<colorId>",
						Action: func(ctx context.Context, c *cli.Command) error {
							d, err := buildDeps()
							if err != nil {
								return err
							}
							id, err := argID(c)
							if err != nil {
								return err
							}
							images, err := repositories.NewColorRepository(d.api).ListImages(ctx, id)
							if err != nil {
								return err
							}
							return printJSON(images)
						},
					},
					{
						Name:      "upload",
						Usage:     "Upload image files to a color",
						ArgsUsage: "<colorId> <file>...",
						Action: func(ctx context.Context, c *cli.Command) error {
							d, err := buildDeps()
							if err != nil {
								return err
							}
							id, err := argID(c)
							if err != nil {
								return err
							}
							paths := c.Args().Tail()
							if len(paths) == 0 {
								return fmt.Errorf("at least one image file is required")
							}
							images, err := repositories.NewColorRepository(d.api).UploadImages(ctx, id, paths)
							if err != nil {
								return err
							}
							return printJSON(images)
						},
					},
					{
						Name:      "set-primary",
						Usage:     "Mark one image as the color's primary image",
						ArgsUsage: "<colorId> <imageId>",
						Action: func(ctx context.Context, c *cli.Command) error {
							d, err := buildDeps()
							if err != nil {
								return err
							}
							id, imageID, err := argIDPair(c)
							if err != nil {
								return err
							}
							img, err := repositories.NewColorRepository(d.api).SetPrimaryImage(ctx, id, imageID)
							if err != nil {
								return err
							}
							return printJSON(img)
						},
					},
					{
						Name:      "delete",
						Usage:     "Remove one image from a color",
						ArgsUsage: "<colorId> <imageId>",
						Action: func(ctx context.Context, c *cli.Command) error {
							d, err := buildDeps()
							if err != nil {
								return err
							}
							id, imageID, err := argIDPair(c)
							if err != nil {
								return err
							}
							return repositories.NewColorRepository(d.api).DeleteImage(ctx, id, imageID)
						},
					},
				},
			},
		},
	}
}

func argIDPair(c *cli.Command) (int64, int64, error) {
	first, err := argID(c)
	if err != nil {
		return 0, 0, err
	}
	raw := c.Args().Get(1)
	if raw == "" {
		return 0, 0, fmt.Errorf("missing second <id> argument")
	}
	second, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid id %q", raw)
	}
	return first, second, nil
}

func brandsCommand() *cli.Command {
	return &cli.Command{
		Name:  "brands",
		Usage: "Manage brands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List brands",
				Flags: listFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					ctrl := controllers.NewBrandController(repositories.NewBrandRepository(d.api), d.fb, d.confirm, "")
					return runList(ctx, c, ctrl, printBrands)
				},
			},
			{
				Name:      "get",
				Usage:     "Show one brand",
				ArgsUsage: "<id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					brand, err := repositories.NewBrandRepository(d.api).GetByID(ctx, id)
					if err != nil {
						return err
					}
					return printJSON(brand)
				},
			},
			{
				Name:  "create",
				Usage: "Create a brand",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "description"},
					&cli.StringFlag{Name: "website"},
					&cli.StringFlag{Name: "logo", Usage: "path to a logo image file"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					ctrl := controllers.NewBrandController(repositories.NewBrandRepository(d.api), d.fb, d.confirm, c.String("logo"))
					return runCreate(ctx, ctrl, models.CreateBrandRequest{
						BrandName:   c.String("name"),
						Description: c.String("description"),
						Website:     c.String("website"),
					})
				},
			},
			{
				Name:      "update",
				Usage:     "Update a brand",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "description"},
					&cli.StringFlag{Name: "website"},
					&cli.StringFlag{Name: "logo", Usage: "path to a replacement logo image file"},
					&cli.StringFlag{Name: "status"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					ctrl := controllers.NewBrandController(repositories.NewBrandRepository(d.api), d.fb, d.confirm, c.String("logo"))
					return runUpdate(ctx, ctrl, id, models.UpdateBrandRequest{
						BrandName:   c.String("name"),
						Description: c.String("description"),
						Website:     c.String("website"),
						Status:      models.Status(c.String("status")),
					})
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a brand",
				ArgsUsage: "<id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					ctrl := controllers.NewBrandController(repositories.NewBrandRepository(d.api), d.fb, d.confirm, "")
					return runDelete(ctx, ctrl, id)
				},
			},
		},
	}
}

func categoriesCommand() *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "Manage categories",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List categories",
				Flags: listFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					ctrl := controllers.NewCategoryController(repositories.NewCategoryRepository(d.api), d.fb, d.confirm, "")
					return runList(ctx, c, ctrl, printCategories)
				},
			},
			{
				Name:      "get",
				Usage:     "Show one category",
				ArgsUsage: "<id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					category, err := repositories.NewCategoryRepository(d.api).GetByID(ctx, id)
					if err != nil {
						return err
					}
					return printJSON(category)
				},
			},
			{
				Name:  "create",
				Usage: "Create a category",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.Int64Flag{Name: "parent", Usage: "parent category id"},
					&cli.StringFlag{Name: "description"},
					&cli.StringFlag{Name: "image", Usage: "path to a category image file"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					ctrl := controllers.NewCategoryController(repositories.NewCategoryRepository(d.api), d.fb, d.confirm, c.String("image"))
					return runCreate(ctx, ctrl, models.CreateCategoryRequest{
						CategoryName: c.String("name"),
						ParentID:     int64Ptr(c, "parent"),
						Description:  c.String("description"),
					})
				},
			},
			{
				Name:      "update",
				Usage:     "Update a category",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.Int64Flag{Name: "parent", Usage: "parent category id"},
					&cli.StringFlag{Name: "description"},
					&cli.StringFlag{Name: "status"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					ctrl := controllers.NewCategoryController(repositories.NewCategoryRepository(d.api), d.fb, d.confirm, "")
					return runUpdate(ctx, ctrl, id, models.UpdateCategoryRequest{
						CategoryName: c.String("name"),
						ParentID:     int64Ptr(c, "parent"),
						Description:  c.String("description"),
						Status:       models.Status(c.String("status")),
					})
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a category",
				ArgsUsage: "<id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					ctrl := controllers.NewCategoryController(repositories.NewCategoryRepository(d.api), d.fb, d.confirm, "")
					return runDelete(ctx, ctrl, id)
				},
			},
		},
	}
}

func gendersCommand() *cli.Command {
	return &cli.Command{
		Name:  "genders",
		Usage: "Manage gender groupings",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List gender groupings",
				Flags: listFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					ctrl := controllers.NewGenderController(repositories.NewGenderRepository(d.api), d.fb, d.confirm)
					return runList(ctx, c, ctrl, printGenders)
				},
			},
			{
				Name:      "get",
				Usage:     "Show one gender grouping by id or code",
				ArgsUsage: "<id|code>",
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					repo := repositories.NewGenderRepository(d.api)

					raw := c.Args().First()
					if raw == "" {
						return fmt.Errorf("missing required <id|code> argument")
					}
					if id, convErr := strconv.ParseInt(raw, 10, 64); convErr == nil {
						gender, err := repo.GetByID(ctx, id)
						if err != nil {
							return err
						}
						return printJSON(gender)
					}
					gender, err := repo.GetByCode(ctx, raw)
					if err != nil {
						return err
					}
					return printJSON(gender)
				},
			},
			{
				Name:  "create",
				Usage: "Create a gender grouping",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "code", Required: true},
					&cli.StringFlag{Name: "description"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					ctrl := controllers.NewGenderController(repositories.NewGenderRepository(d.api), d.fb, d.confirm)
					return runCreate(ctx, ctrl, models.CreateGenderRequest{
						GenderName:  c.String("name"),
						GenderCode:  c.String("code"),
						Description: c.String("description"),
					})
				},
			},
			{
				Name:      "update",
				Usage:     "Update a gender grouping",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "code", Required: true},
					&cli.StringFlag{Name: "description"},
					&cli.StringFlag{Name: "status"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					ctrl := controllers.NewGenderController(repositories.NewGenderRepository(d.api), d.fb, d.confirm)
					return runUpdate(ctx, ctrl, id, models.UpdateGenderRequest{
						GenderName:  c.String("name"),
						GenderCode:  c.String("code"),
						Description: c.String("description"),
						Status:      models.Status(c.String("status")),
					})
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a gender grouping",
				ArgsUsage: "<id>",
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					ctrl := controllers.NewGenderController(repositories.NewGenderRepository(d.api), d.fb, d.confirm)
					return runDelete(ctx, ctrl, id)
				},
			},
		},
	}
}
