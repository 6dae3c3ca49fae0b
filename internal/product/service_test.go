package product

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewFileRepository(filepath.Join(t.TempDir(), "products.json")))
}

func TestCreate_PrimaryImageIsFirstOfImages(t *testing.T) {
	s := newTestService(t)

	created, err := s.Create(Draft{
		Name:   "Pearl Hairband",
		Price:  "450.00",
		Images: []string{"/uploads/a.jpg", "/uploads/b.jpg"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)
	require.Len(t, created.Images, 2)
	assert.Equal(t, created.Images[0], created.Image)
}

func TestCreate_SingleImageBecomesArray(t *testing.T) {
	s := newTestService(t)

	created, err := s.Create(Draft{Name: "Clip Set", Price: "120", Image: "/uploads/clip.jpg"})
	require.NoError(t, err)

	assert.Equal(t, []string{"/uploads/clip.jpg"}, created.Images)
	assert.Equal(t, "/uploads/clip.jpg", created.Image)
}

func TestCreate_PromotesColorVariantImages(t *testing.T) {
	s := newTestService(t)
	variants := `[{"color":"Red","images":["/uploads/red1.jpg","/uploads/red2.jpg"]}]`

	created, err := s.Create(Draft{Name: "Scrunchie", Price: "80", ColorVariants: &variants})
	require.NoError(t, err)

	assert.Equal(t, "/uploads/red1.jpg", created.Image)
	assert.Equal(t, []string{"/uploads/red1.jpg", "/uploads/red2.jpg"}, created.Images)
}

func TestCreate_FailsWithoutAnyImage(t *testing.T) {
	s := newTestService(t)

	_, err := s.Create(Draft{Name: "Imageless", Price: "10"})
	assert.ErrorIs(t, err, ErrNoImage)

	// a variant payload without images does not help
	empty := `[]`
	_, err = s.Create(Draft{Name: "Still imageless", Price: "10", ColorVariants: &empty})
	assert.ErrorIs(t, err, ErrNoImage)
}

func TestUpdate_OmittedImageFieldsArePreserved(t *testing.T) {
	s := newTestService(t)
	variants := `[{"color":"Blue","images":["/uploads/blue.jpg"]}]`
	created, err := s.Create(Draft{
		Name:          "Bow",
		Price:         "200",
		Images:        []string{"/uploads/bow1.jpg", "/uploads/bow2.jpg"},
		Colors:        []string{"Blue"},
		ColorVariants: &variants,
	})
	require.NoError(t, err)

	name := "Velvet Bow"
	updated, err := s.Update(created.ID, Patch{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Velvet Bow", updated.Name)
	assert.Equal(t, created.Images, updated.Images)
	assert.Equal(t, created.Image, updated.Image)
	assert.Equal(t, created.Colors, updated.Colors)
	require.NotNil(t, updated.ColorVariants)
	assert.Equal(t, variants, *updated.ColorVariants)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdate_NewImagesReplaceArrayAndPrimary(t *testing.T) {
	s := newTestService(t)
	created, err := s.Create(Draft{Name: "Bow", Price: "200", Images: []string{"/uploads/old.jpg"}})
	require.NoError(t, err)

	updated, err := s.Update(created.ID, Patch{Images: []string{"/uploads/new1.jpg", "/uploads/new2.jpg"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"/uploads/new1.jpg", "/uploads/new2.jpg"}, updated.Images)
	assert.Equal(t, "/uploads/new1.jpg", updated.Image)
}

func TestUpdate_UnknownID(t *testing.T) {
	s := newTestService(t)
	name := "x"
	_, err := s.Update("missing", Patch{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_UnknownIDLeavesCatalogUntouched(t *testing.T) {
	s := newTestService(t)
	_, err := s.Create(Draft{Name: "Keeper", Price: "10", Image: "/uploads/k.jpg"})
	require.NoError(t, err)

	removed, err := s.Delete("does-not-exist")
	require.NoError(t, err)
	assert.False(t, removed)

	all, err := s.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestListByCategory_CaseInsensitive(t *testing.T) {
	s := newTestService(t)
	_, err := s.Create(Draft{Name: "A", Price: "1", Image: "/a.jpg", Category: "Ladies-Formal"})
	require.NoError(t, err)
	_, err = s.Create(Draft{Name: "B", Price: "1", Image: "/b.jpg", Category: "kids"})
	require.NoError(t, err)

	got, err := s.ListByCategory("ladies-formal")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)
}

func TestStorefrontFilters(t *testing.T) {
	s := newTestService(t)
	_, err := s.Create(Draft{Name: "Featured", Price: "1", Image: "/a.jpg", Featured: true})
	require.NoError(t, err)
	_, err = s.Create(Draft{Name: "Fresh", Price: "1", Image: "/b.jpg", IsNew: true})
	require.NoError(t, err)
	_, err = s.Create(Draft{Name: "Discounted", Price: "1", Image: "/c.jpg", Discount: 25})
	require.NoError(t, err)

	featured, err := s.ListFeatured()
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Featured", featured[0].Name)

	fresh, err := s.ListNewArrivals()
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, "Fresh", fresh[0].Name)

	sale, err := s.ListOnSale()
	require.NoError(t, err)
	require.Len(t, sale, 1)
	assert.Equal(t, "Discounted", sale[0].Name)
}
