package category

import "database/sql"

// PostgresRepository is the durable-store alternative to FileRepository,
// selected when DATABASE_URL is set.
type PostgresRepository struct {
	db *sql.DB
}

const (
	listCategoriesQuery = `SELECT id, name, description, image, created_at FROM categories ORDER BY created_at, id`
	getCategoryQuery    = `SELECT id, name, description, image, created_at FROM categories WHERE id = $1`
	insertCategoryQuery = `INSERT INTO categories (id, name, description, image, created_at) VALUES ($1,$2,$3,$4,$5)`
	updateCategoryQuery = `UPDATE categories SET name = $2, description = $3, image = $4 WHERE id = $1`
	deleteCategoryQuery = `DELETE FROM categories WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Category, error) {
	rows, err := r.db.Query(listCategoriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id string) (Category, error) {
	var c Category
	err := r.db.QueryRow(getCategoryQuery, id).Scan(&c.ID, &c.Name, &c.Description, &c.Image, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return Category{}, ErrNotFound
	}
	if err != nil {
		return Category{}, err
	}
	return c, nil
}

func (r *PostgresRepository) Insert(c Category) error {
	_, err := r.db.Exec(insertCategoryQuery, c.ID, c.Name, c.Description, c.Image, c.CreatedAt)
	return err
}

func (r *PostgresRepository) Update(id string, apply func(Category) Category) (Category, error) {
	c, err := r.GetByID(id)
	if err != nil {
		return Category{}, err
	}
	c = apply(c)
	if _, err := r.db.Exec(updateCategoryQuery, c.ID, c.Name, c.Description, c.Image); err != nil {
		return Category{}, err
	}
	return c, nil
}

func (r *PostgresRepository) Delete(id string) (bool, error) {
	res, err := r.db.Exec(deleteCategoryQuery, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
