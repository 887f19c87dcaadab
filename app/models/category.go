package models

type Category struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	ImageURL     string `json:"imageUrl,omitempty"`
	Description  string `json:"description,omitempty"`
	ParentID     *int64 `json:"parentId,omitempty"`
	Status       Status `json:"status"`
	ProductCount int    `json:"productCount"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

func (c Category) EntityID() int64      { return c.CategoryID }
func (c Category) EntityName() string   { return c.CategoryName }
func (c Category) EntityStatus() Status { return c.Status }

type CreateCategoryRequest struct {
	CategoryName string `json:"categoryName" validate:"required,min=1,max=100"`
	ParentID     *int64 `json:"parentId,omitempty"`
	Description  string `json:"description,omitempty" validate:"omitempty,max=500"`
	ImageURL     string `json:"imageUrl,omitempty"`
}

type UpdateCategoryRequest struct {
	CategoryName string `json:"categoryName" validate:"required,min=1,max=100"`
	ParentID     *int64 `json:"parentId,omitempty"`
	Description  string `json:"description,omitempty" validate:"omitempty,max=500"`
	ImageURL     string `json:"imageUrl,omitempty"`
	Status       Status `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE DISCONTINUED"`
}

// ParentWouldCycle reports whether assigning parentID as the parent of the
// category with the given id would create a cycle in the category tree.
// The walk uses the client's current snapshot of the tree; an unknown parent
// terminates the walk (the server rejects dangling references on its own).
func ParentWouldCycle(categories []Category, id int64, parentID int64) bool {
	byID := make(map[int64]Category, len(categories))
	for _, c := range categories {
		byID[c.CategoryID] = c
	}

	seen := 0
	for cur := parentID; cur != 0; {
		if cur == id {
			return true
		}
		c, ok := byID[cur]
		if !ok || c.ParentID == nil {
			return false
		}
		cur = *c.ParentID

		// Guard against a cycle already present in the snapshot.
		if seen++; seen > len(categories) {
			return true
		}
	}
	return false
}
