package category

// Category groups products by the free-text name products carry in their
// category field. There is no foreign key back to products, and name
// uniqueness is not enforced at the store level.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	CreatedAt   string `json:"createdAt"`
}

// Draft holds the fields accepted at creation time.
type Draft struct {
	Name        string
	Description string
	Image       string
}

// Patch is a partial update; nil fields keep the stored value.
type Patch struct {
	Name        *string
	Description *string
	Image       *string
}
