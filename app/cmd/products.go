package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"

	"github.com/demostore/go-store-admin/app/controllers"
	"github.com/demostore/go-store-admin/app/models"
	"github.com/demostore/go-store-admin/app/repositories"
)

func productsCommand() *cli.Command {
	return &cli.Command{
		Name:  "products",
		Usage: "Manage products, their image galleries and their variants",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List products",
				Flags: listFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					ctrl := controllers.NewProductController(repositories.NewProductRepository(d.api), d.fb, d.confirm, nil)
					return runList(ctx, c, ctrl, printProducts)
				},
			},
			{
				Name:      "get",
				Usage:     "Show one product",
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
					product, err := repositories.NewProductRepository(d.api).GetByID(ctx, id)
					if err != nil {
						return err
					}
					return printJSON(product)
				},
			},
			{
				Name:  "create",
				Usage: "Create a product",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "sku", Required: true},
					&cli.Int64Flag{Name: "brand", Usage: "brand id", Required: true},
					&cli.StringFlag{Name: "price", Usage: "decimal price, e.g. 59.90"},
					&cli.Int64SliceFlag{Name: "category", Usage: "category id, repeatable"},
					&cli.Int64Flag{Name: "gender", Usage: "gender grouping id"},
					&cli.StringFlag{Name: "description"},
					&cli.StringFlag{Name: "status", Value: string(models.StatusActive)},
					&cli.StringSliceFlag{Name: "image", Usage: "path to a gallery image file, repeatable"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					price, err := parsePrice(c, "price")
					if err != nil {
						return err
					}
					ctrl := controllers.NewProductController(repositories.NewProductRepository(d.api), d.fb, d.confirm, c.StringSlice("image"))
					return runCreate(ctx, ctrl, models.CreateProductRequest{
						ProductName: c.String("name"),
						SKU:         c.String("sku"),
						Description: c.String("description"),
						Price:       price,
						Status:      models.Status(c.String("status")),
						BrandID:     c.Int64("brand"),
						CategoryIDs: c.Int64Slice("category"),
						GenderID:    int64Ptr(c, "gender"),
					})
				},
			},
			{
				Name:      "update",
				Usage:     "Update a product",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "sku"},
					&cli.Int64Flag{Name: "brand", Usage: "brand id"},
					&cli.StringFlag{Name: "price", Usage: "decimal price, e.g. 59.90"},
					&cli.Int64SliceFlag{Name: "category", Usage: "category id, repeatable"},
					&cli.Int64Flag{Name: "gender", Usage: "gender grouping id"},
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
					price, err := parsePrice(c, "price")
					if err != nil {
						return err
					}
					ctrl := controllers.NewProductController(repositories.NewProductRepository(d.api), d.fb, d.confirm, nil)
					return runUpdate(ctx, ctrl, id, models.UpdateProductRequest{
						ProductName: c.String("name"),
						SKU:         c.String("sku"),
						Description: c.String("description"),
						Price:       price,
						Status:      models.Status(c.String("status")),
						BrandID:     int64Ptr(c, "brand"),
						CategoryIDs: c.Int64Slice("category"),
						GenderID:    int64Ptr(c, "gender"),
					})
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a product",
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
					ctrl := controllers.NewProductController(repositories.NewProductRepository(d.api), d.fb, d.confirm, nil)
					return runDelete(ctx, ctrl, id)
				},
			},
			productImagesCommand(),
			variantsCommand(),
		},
	}
}

func productImagesCommand() *cli.Command {
	return &cli.Command{
		Name:  "images",
		Usage: "Manage a product's image gallery",
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "List a product's images",
				ArgsUsage: "<productId>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "print raw JSON instead of a table"},
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
					images, err := repositories.NewProductRepository(d.api).ListImages(ctx, id)
					if err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(images)
					}
					printProductImages(images)
					return nil
				},
			},
			{
				Name:      "upload",
				Usage:     "Upload image files to a product",
				ArgsUsage: "<productId> <file>...",
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
					images, err := repositories.NewProductRepository(d.api).UploadImages(ctx, id, paths)
					if err != nil {
						return err
					}
					printProductImages(images)
					return nil
				},
			},
			{
				Name:      "set-primary",
				Usage:     "Mark one image as the product's primary image",
				ArgsUsage: "<productId> <imageId>",
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					id, imageID, err := argIDPair(c)
					if err != nil {
						return err
					}
					img, err := repositories.NewProductRepository(d.api).SetPrimaryImage(ctx, id, imageID)
					if err != nil {
						return err
					}
					return printJSON(img)
				},
			},
			{
				Name:      "delete",
				Usage:     "Remove one image from a product",
				ArgsUsage: "<productId> <imageId>",
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					id, imageID, err := argIDPair(c)
					if err != nil {
						return err
					}
					return repositories.NewProductRepository(d.api).DeleteImage(ctx, id, imageID)
				},
			},
		},
	}
}

func variantsCommand() *cli.Command {
	return &cli.Command{
		Name:  "variants",
		Usage: "Manage size and color variants of a product",
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "List a product's variants",
				ArgsUsage: "<productId>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "print raw JSON instead of a table"},
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
					variants, err := repositories.NewVariantRepository(d.api).ListByProduct(ctx, id)
					if err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(variants)
					}
					printVariants(variants)
					return nil
				},
			},
			{
				Name:      "get",
				Usage:     "Show one variant by id or SKU",
				ArgsUsage: "<id|sku>",
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					repo := repositories.NewVariantRepository(d.api)

					raw := c.Args().First()
					if raw == "" {
						return fmt.Errorf("missing required <id|sku> argument")
					}
					if id, convErr := strconv.ParseInt(raw, 10, 64); convErr == nil {
						variant, err := repo.GetByID(ctx, id)
						if err != nil {
							return err
						}
						return printJSON(variant)
					}
					variant, err := repo.GetBySKU(ctx, raw)
					if err != nil {
						return err
					}
					if variant == nil {
						return fmt.Errorf("no variant with SKU %q", raw)
					}
					return printJSON(variant)
				},
			},
			{
				Name:  "create",
				Usage: "Create a variant",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "product", Usage: "product id", Required: true},
					&cli.Int64Flag{Name: "size", Usage: "size id", Required: true},
					&cli.Int64Flag{Name: "color", Usage: "color id", Required: true},
					&cli.StringFlag{Name: "sku", Required: true},
					&cli.StringFlag{Name: "price", Usage: "decimal price, e.g. 59.90", Required: true},
					&cli.IntFlag{Name: "stock"},
					&cli.StringFlag{Name: "status", Value: string(models.StatusActive)},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					price, err := decimal.NewFromString(c.String("price"))
					if err != nil {
						return fmt.Errorf("invalid price %q: %w", c.String("price"), err)
					}
					variant, err := repositories.NewVariantRepository(d.api).Create(ctx, models.CreateVariantRequest{
						ProductID: c.Int64("product"),
						SizeID:    c.Int64("size"),
						ColorID:   c.Int64("color"),
						SKU:       c.String("sku"),
						Price:     price,
						Stock:     c.Int("stock"),
						Status:    models.Status(c.String("status")),
					})
					if err != nil {
						return err
					}
					fmt.Printf("ID: %d\n", variant.VariantID)
					return nil
				},
			},
			{
				Name:      "update",
				Usage:     "Update a variant",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "size", Usage: "size id", Required: true},
					&cli.Int64Flag{Name: "color", Usage: "color id", Required: true},
					&cli.StringFlag{Name: "sku", Required: true},
					&cli.StringFlag{Name: "price", Usage: "decimal price, e.g. 59.90", Required: true},
					&cli.IntFlag{Name: "stock"},
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
					price, err := decimal.NewFromString(c.String("price"))
					if err != nil {
						return fmt.Errorf("invalid price %q: %w", c.String("price"), err)
					}
					variant, err := repositories.NewVariantRepository(d.api).Update(ctx, id, models.UpdateVariantRequest{
						SKU:     c.String("sku"),
						SizeID:  c.Int64("size"),
						ColorID: c.Int64("color"),
						Price:   price,
						Stock:   c.Int("stock"),
						Status:  models.Status(c.String("status")),
					})
					if err != nil {
						return err
					}
					return printJSON(variant)
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a variant",
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
					if !d.confirm.Confirm(fmt.Sprintf("Delete variant %d? This cannot be undone.", id)) {
						return finish(controllers.ErrCancelled)
					}
					return repositories.NewVariantRepository(d.api).Delete(ctx, id)
				},
			},
			{
				Name:      "bulk",
				Usage:     "Create several variants of one product in a single request",
				ArgsUsage: "<productId>",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:     "item",
						Usage:    "variant spec sizeId:colorId:sku:price:stock, repeatable",
						Required: true,
					},
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
					items := make([]models.BulkVariantItem, 0, len(c.StringSlice("item")))
					for _, raw := range c.StringSlice("item") {
						item, err := parseVariantSpec(raw)
						if err != nil {
							return err
						}
						items = append(items, item)
					}
					variants, err := repositories.NewVariantRepository(d.api).BulkCreate(ctx, models.BulkVariantCreateRequest{
						ProductID: id,
						Variants:  items,
					})
					if err != nil {
						return err
					}
					printVariants(variants)
					return nil
				},
			},
			{
				Name:      "upload-image",
				Usage:     "Attach an image file to a variant",
				ArgsUsage: "<id> <file>",
				Action: func(ctx context.Context, c *cli.Command) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					id, err := argID(c)
					if err != nil {
						return err
					}
					path := c.Args().Get(1)
					if path == "" {
						return fmt.Errorf("missing required <file> argument")
					}
					variant, err := repositories.NewVariantRepository(d.api).UploadImage(ctx, id, path)
					if err != nil {
						return err
					}
					return printJSON(variant)
				},
			},
		},
	}
}

// parseVariantSpec decodes one --item value in sizeId:colorId:sku:price:stock
// form.
func parseVariantSpec(raw string) (models.BulkVariantItem, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 5 {
		return models.BulkVariantItem{}, fmt.Errorf("invalid variant spec %q, want sizeId:colorId:sku:price:stock", raw)
	}
	sizeID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return models.BulkVariantItem{}, fmt.Errorf("invalid size id in %q", raw)
	}
	colorID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return models.BulkVariantItem{}, fmt.Errorf("invalid color id in %q", raw)
	}
	price, err := decimal.NewFromString(parts[3])
	if err != nil {
		return models.BulkVariantItem{}, fmt.Errorf("invalid price in %q", raw)
	}
	stock, err := strconv.Atoi(parts[4])
	if err != nil {
		return models.BulkVariantItem{}, fmt.Errorf("invalid stock in %q", raw)
	}
	return models.BulkVariantItem{
		SizeID:  sizeID,
		ColorID: colorID,
		SKU:     parts[2],
		Price:   price,
		Stock:   stock,
	}, nil
}
