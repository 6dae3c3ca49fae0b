package product

// Product is a catalog entry. IDs are opaque strings assigned at creation and
// monetary values are kept as decimal text; no arithmetic is performed on
// them beyond display-level discount percentage.
//
// Invariant: Image is always Images[0] whenever Images is non-empty, and a
// created product always has at least one image.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Price         string   `json:"price"`
	OriginalPrice string   `json:"originalPrice,omitempty"`
	Discount      int      `json:"discount"`
	Stock         int      `json:"stock"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	Color         string   `json:"color,omitempty"`
	Colors        []string `json:"colors"`
	ColorVariants *string  `json:"colorVariants,omitempty"`
	Sizes         []string `json:"sizes"`
	Featured      bool     `json:"featured"`
	IsNew         bool     `json:"isNew"`
	CreatedAt     string   `json:"createdAt"`
}

// ColorVariant maps one color option to its image set. The slice form is what
// clients send; it is stored serialized as a JSON string in
// Product.ColorVariants.
type ColorVariant struct {
	Color  string   `json:"color"`
	Images []string `json:"images"`
}

// Draft holds the fields accepted at creation time, before the service assigns
// an id, normalizes images and stamps createdAt.
type Draft struct {
	Name          string
	Description   string
	Category      string
	Price         string
	OriginalPrice string
	Discount      int
	Stock         int
	Image         string
	Images        []string
	Color         string
	Colors        []string
	ColorVariants *string
	Sizes         []string
	Featured      bool
	IsNew         bool
}

// Patch is a partial update. Nil fields mean "not provided" and leave the
// stored value untouched (merge-on-update). A non-empty Images slice replaces
// the whole array and recomputes the primary image.
type Patch struct {
	Name          *string
	Description   *string
	Category      *string
	Price         *string
	OriginalPrice *string
	Discount      *int
	Stock         *int
	Images        []string
	Color         *string
	Colors        []string
	ColorVariants *string
	Sizes         []string
	Featured      *bool
	IsNew         *bool
}
