package controllers

import (
	"context"
	"fmt"

	"github.com/demostore/go-store-admin/app/feedback"
	"github.com/demostore/go-store-admin/app/models"
	"github.com/demostore/go-store-admin/app/repositories"
)

// The constructors below instantiate the generic controller for each entity
// type. Screens differ only in their endpoint set, payload shapes and the
// odd extra validation rule; everything else is shared.

type UserController = EntityController[models.User, models.CreateUserRequest, models.UpdateUserRequest]

func NewUserController(repo repositories.UserRepositoryImpl, fb feedback.Feedback, confirm feedback.Confirmer) *UserController {
	return New(Config[models.User, models.CreateUserRequest, models.UpdateUserRequest]{
		Label:      "user",
		List:       repo.List,
		GetByName:  repo.GetByName,
		Create:     repo.Create,
		Update:     repo.Update,
		Delete:     repo.Delete,
		CreateName: func(req models.CreateUserRequest) string { return req.Username },
		UpdateName: func(req models.UpdateUserRequest) string { return req.Username },
	}, fb, confirm)
}

type SizeController = EntityController[models.Size, models.CreateSizeRequest, models.UpdateSizeRequest]

func NewSizeController(repo repositories.SizeRepositoryImpl, fb feedback.Feedback, confirm feedback.Confirmer) *SizeController {
	return New(Config[models.Size, models.CreateSizeRequest, models.UpdateSizeRequest]{
		Label:      "size",
		List:       repo.List,
		GetByName:  repo.GetByName,
		Create:     repo.Create,
		Update:     repo.Update,
		Delete:     repo.Delete,
		CreateName: func(req models.CreateSizeRequest) string { return req.SizeName },
		UpdateName: func(req models.UpdateSizeRequest) string { return req.SizeName },
	}, fb, confirm)
}

type ColorController = EntityController[models.Color, models.CreateColorRequest, models.UpdateColorRequest]

func NewColorController(repo repositories.ColorRepositoryImpl, fb feedback.Feedback, confirm feedback.Confirmer) *ColorController {
	return New(Config[models.Color, models.CreateColorRequest, models.UpdateColorRequest]{
		Label:      "color",
		List:       repo.List,
		GetByName:  repo.GetByName,
		Create:     repo.Create,
		Update:     repo.Update,
		Delete:     repo.Delete,
		CreateName: func(req models.CreateColorRequest) string { return req.ColorName },
		UpdateName: func(req models.UpdateColorRequest) string { return req.ColorName },
	}, fb, confirm)
}

type BrandController = EntityController[models.Brand, models.CreateBrandRequest, models.UpdateBrandRequest]

// NewBrandController wires the brand screen. A non-empty logoPath switches
// the create/update submissions to the multipart endpoint with the logo
// file attached.
func NewBrandController(repo repositories.BrandRepositoryImpl, fb feedback.Feedback, confirm feedback.Confirmer, logoPath string) *BrandController {
	create := repo.Create
	update := repo.Update
	if logoPath != "" {
		create = func(ctx context.Context, req models.CreateBrandRequest) (*models.Brand, error) {
			return repo.CreateWithLogo(ctx, req, logoPath)
		}
		update = func(ctx context.Context, id int64, req models.UpdateBrandRequest) (*models.Brand, error) {
			return repo.UpdateWithLogo(ctx, id, req, logoPath)
		}
	}

	return New(Config[models.Brand, models.CreateBrandRequest, models.UpdateBrandRequest]{
		Label:      "brand",
		List:       repo.List,
		GetByName:  repo.GetByName,
		Create:     create,
		Update:     update,
		Delete:     repo.Delete,
		CreateName: func(req models.CreateBrandRequest) string { return req.BrandName },
		UpdateName: func(req models.UpdateBrandRequest) string { return req.BrandName },
	}, fb, confirm)
}

type CategoryController = EntityController[models.Category, models.CreateCategoryRequest, models.UpdateCategoryRequest]

// NewCategoryController wires the category screen, enforcing that a parent
// assignment never creates a cycle in the category tree.
func NewCategoryController(repo repositories.CategoryRepositoryImpl, fb feedback.Feedback, confirm feedback.Confirmer, imagePath string) *CategoryController {
	create := repo.Create
	if imagePath != "" {
		create = func(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
			return repo.CreateWithImage(ctx, req, imagePath)
		}
	}

	return New(Config[models.Category, models.CreateCategoryRequest, models.UpdateCategoryRequest]{
		Label:      "category",
		List:       repo.List,
		GetByName:  repo.GetByName,
		Create:     create,
		Update:     repo.Update,
		Delete:     repo.Delete,
		CreateName: func(req models.CreateCategoryRequest) string { return req.CategoryName },
		UpdateName: func(req models.UpdateCategoryRequest) string { return req.CategoryName },
		ValidateCreate: func(req models.CreateCategoryRequest, snapshot []models.Category) error {
			return checkParent(snapshot, 0, req.ParentID)
		},
		ValidateUpdate: func(id int64, req models.UpdateCategoryRequest, snapshot []models.Category) error {
			return checkParent(snapshot, id, req.ParentID)
		},
	}, fb, confirm)
}

func checkParent(snapshot []models.Category, id int64, parentID *int64) error {
	if parentID == nil {
		return nil
	}
	if id != 0 && *parentID == id {
		return fmt.Errorf("a category cannot be its own parent")
	}
	if models.ParentWouldCycle(snapshot, id, *parentID) {
		return fmt.Errorf("parent assignment would create a cycle in the category tree")
	}
	return nil
}

type GenderController = EntityController[models.Gender, models.CreateGenderRequest, models.UpdateGenderRequest]

func NewGenderController(repo repositories.GenderRepositoryImpl, fb feedback.Feedback, confirm feedback.Confirmer) *GenderController {
	return New(Config[models.Gender, models.CreateGenderRequest, models.UpdateGenderRequest]{
		Label:      "gender",
		List:       repo.List,
		GetByName:  repo.GetByName,
		Create:     repo.Create,
		Update:     repo.Update,
		Delete:     repo.Delete,
		CreateName: func(req models.CreateGenderRequest) string { return req.GenderName },
		UpdateName: func(req models.UpdateGenderRequest) string { return req.GenderName },
	}, fb, confirm)
}

type ProductController = EntityController[models.Product, models.CreateProductRequest, models.UpdateProductRequest]

// NewProductController wires the product screen. Non-empty imagePaths route
// creation through the combined multipart endpoint so gallery files land in
// the same request.
func NewProductController(repo repositories.ProductRepositoryImpl, fb feedback.Feedback, confirm feedback.Confirmer, imagePaths []string) *ProductController {
	create := repo.Create
	if len(imagePaths) > 0 {
		create = func(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
			return repo.CreateWithImages(ctx, req, imagePaths)
		}
	}

	return New(Config[models.Product, models.CreateProductRequest, models.UpdateProductRequest]{
		Label:      "product",
		List:       repo.List,
		GetByName:  repo.GetByName,
		Create:     create,
		Update:     repo.Update,
		Delete:     repo.Delete,
		CreateName: func(req models.CreateProductRequest) string { return req.ProductName },
		UpdateName: func(req models.UpdateProductRequest) string { return req.ProductName },
	}, fb, confirm)
}
