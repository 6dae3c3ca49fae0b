package product

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "description", "category", "price", "original_price",
		"discount", "stock", "image", "images", "color", "colors",
		"color_variants", "sizes", "featured", "is_new", "created_at",
	})
}

func TestPostgresList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := productRows().
		AddRow("p1", "Bow", "d", "kids", "200", "250", 20, 5, "/uploads/a.jpg",
			`{"/uploads/a.jpg","/uploads/b.jpg"}`, "Red", `{"Red","Blue"}`, nil,
			`{"S","M"}`, true, false, "2026-01-01T00:00:00Z").
		AddRow("p2", "Clip", "d2", "ladies", "120", nil, 0, 9, "/uploads/c.jpg",
			`{"/uploads/c.jpg"}`, nil, `{}`, nil, `{}`, false, true, "2026-01-02T00:00:00Z")
	mock.ExpectQuery("SELECT (.+) FROM products ORDER BY").WillReturnRows(rows)

	products, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Image != products[0].Images[0] {
		t.Fatalf("primary image invariant broken: %+v", products[0])
	}
	if products[1].OriginalPrice != "" {
		t.Fatalf("expected empty originalPrice for NULL, got %q", products[1].OriginalPrice)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM products WHERE id").WithArgs("ghost").WillReturnRows(productRows())

	if _, err := repo.GetByID("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresDelete_ReportsRemoval(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM products").WithArgs("p1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM products").WithArgs("ghost").WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.Delete("p1")
	if err != nil || !removed {
		t.Fatalf("expected removal, got removed=%v err=%v", removed, err)
	}
	removed, err = repo.Delete("ghost")
	if err != nil || removed {
		t.Fatalf("expected no removal, got removed=%v err=%v", removed, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdate_ReadsThenWrites(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := productRows().
		AddRow("p1", "Bow", "d", "kids", "200", nil, 0, 5, "/uploads/a.jpg",
			`{"/uploads/a.jpg"}`, nil, `{}`, nil, `{}`, false, false, "2026-01-01T00:00:00Z")
	mock.ExpectQuery("SELECT (.+) FROM products WHERE id").WithArgs("p1").WillReturnRows(rows)
	mock.ExpectExec("UPDATE products").WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.Update("p1", func(p Product) Product {
		p.Name = "Velvet Bow"
		return p
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Velvet Bow" {
		t.Fatalf("unexpected product %+v", updated)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
