package product

import (
	"database/sql"

	"github.com/lib/pq"
)

// PostgresRepository is the durable-store alternative to FileRepository,
// selected when DATABASE_URL is set. Row-level statements replace the
// whole-file rewrite but the observable semantics are the same.
type PostgresRepository struct {
	db *sql.DB
}

const (
	productColumns = `id, name, description, category, price, original_price, discount, stock, image, images, color, colors, color_variants, sizes, featured, is_new, created_at`

	listProductsQuery = `SELECT ` + productColumns + ` FROM products ORDER BY created_at, id`

	getProductQuery = `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	insertProductQuery = `
		INSERT INTO products (id, name, description, category, price, original_price, discount, stock, image, images, color, colors, color_variants, sizes, featured, is_new, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	`

	updateProductQuery = `
		UPDATE products
		SET name = $2,
			description = $3,
			category = $4,
			price = $5,
			original_price = $6,
			discount = $7,
			stock = $8,
			image = $9,
			images = $10,
			color = $11,
			colors = $12,
			color_variants = $13,
			sizes = $14,
			featured = $15,
			is_new = $16
		WHERE id = $1
	`

	deleteProductQuery = `DELETE FROM products WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Product, error) {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id string) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductQuery, id))
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Insert(p Product) error {
	_, err := r.db.Exec(insertProductQuery,
		p.ID, p.Name, p.Description, p.Category, p.Price, nullable(p.OriginalPrice),
		p.Discount, p.Stock, p.Image, pq.Array(p.Images), nullable(p.Color),
		pq.Array(p.Colors), p.ColorVariants, pq.Array(p.Sizes), p.Featured, p.IsNew, p.CreatedAt)
	return err
}

func (r *PostgresRepository) Update(id string, apply func(Product) Product) (Product, error) {
	p, err := r.GetByID(id)
	if err != nil {
		return Product{}, err
	}
	p = apply(p)
	_, err = r.db.Exec(updateProductQuery,
		p.ID, p.Name, p.Description, p.Category, p.Price, nullable(p.OriginalPrice),
		p.Discount, p.Stock, p.Image, pq.Array(p.Images), nullable(p.Color),
		pq.Array(p.Colors), p.ColorVariants, pq.Array(p.Sizes), p.Featured, p.IsNew)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Delete(id string) (bool, error) {
	res, err := r.db.Exec(deleteProductQuery, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p             Product
		originalPrice sql.NullString
		color         sql.NullString
		colorVariants sql.NullString
		images        pq.StringArray
		colors        pq.StringArray
		sizes         pq.StringArray
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &originalPrice,
		&p.Discount, &p.Stock, &p.Image, &images, &color, &colors, &colorVariants,
		&sizes, &p.Featured, &p.IsNew, &p.CreatedAt)
	if err != nil {
		return Product{}, err
	}
	p.OriginalPrice = originalPrice.String
	p.Color = color.String
	if colorVariants.Valid {
		p.ColorVariants = &colorVariants.String
	}
	p.Images = []string(images)
	p.Colors = []string(colors)
	p.Sizes = []string(sizes)
	return p, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
