package upload

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Store writes uploaded files into a directory and hands back the stable
// /uploads/... reference path the catalog stores. The stores themselves never
// see file bytes, only these references.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save places the file under a nanosecond-timestamp filename, keeping only
// the original extension.
func (s *Store) Save(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))
	if err := c.SaveFile(file, filepath.Join(s.dir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
