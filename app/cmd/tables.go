package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/demostore/go-store-admin/app/models"
	"github.com/demostore/go-store-admin/app/utils/format"
	"github.com/demostore/go-store-admin/app/utils/renderer"
)

func printJSON(v any) error {
	return renderer.JSON(os.Stdout, v)
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func printUsers(users []models.User) {
	w := newTable()
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tPHONE\tROLE\tSTATUS")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", u.UserID, u.Username, u.Email, u.Phone, u.Role, u.Status)
	}
	w.Flush()
}

func printSizes(sizes []models.Size) {
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tPRODUCTS")
	for _, s := range sizes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", s.SizeID, s.SizeName, s.Status, s.ProductCount)
	}
	w.Flush()
}

func printColors(colors []models.Color) {
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tPRODUCTS")
	for _, c := range colors {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", c.ColorID, c.ColorName, c.Status, c.ProductCount)
	}
	w.Flush()
}

func printBrands(brands []models.Brand) {
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tWEBSITE\tSTATUS\tPRODUCTS")
	for _, b := range brands {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", b.BrandID, b.BrandName, b.Website, b.Status, b.ProductCount)
	}
	w.Flush()
}

func printCategories(categories []models.Category) {
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tPARENT\tSTATUS\tPRODUCTS")
	for _, c := range categories {
		parent := "-"
		if c.ParentID != nil {
			parent = fmt.Sprintf("%d", *c.ParentID)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", c.CategoryID, c.CategoryName, parent, c.Status, c.ProductCount)
	}
	w.Flush()
}

func printGenders(genders []models.Gender) {
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tCODE\tSTATUS\tPRODUCTS")
	for _, g := range genders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", g.GenderID, g.GenderName, g.GenderCode, g.Status, g.ProductCount)
	}
	w.Flush()
}

func printProducts(products []models.Product) {
	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tSKU\tBRAND\tPRICE\tSTOCK\tSTATUS")
	for _, p := range products {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n",
			p.ProductID, p.ProductName, p.SKU, p.BrandName, format.OptionalPrice(p.Price), p.TotalStock, p.Status)
	}
	w.Flush()
}

func printProductImages(images []models.ProductImage) {
	w := newTable()
	fmt.Fprintln(w, "ID\tURL\tPRIMARY\tORDER")
	for _, img := range images {
		fmt.Fprintf(w, "%d\t%s\t%t\t%d\n", img.ImageID, img.ImageURL, img.IsPrimary, img.DisplayOrder)
	}
	w.Flush()
}

func printVariants(variants []models.ProductVariant) {
	w := newTable()
	fmt.Fprintln(w, "ID\tSKU\tSIZE\tCOLOR\tPRICE\tSTOCK\tSTATUS")
	for _, v := range variants {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n",
			v.VariantID, v.SKU, v.Size.Name, v.Color.Name, format.Price(v.Price), v.Stock, v.Status)
	}
	w.Flush()
}
