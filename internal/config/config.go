package config

import "os"

// Config carries all runtime settings. Values come from the environment;
// `.env` loading is handled by main via godotenv before Load is called.
type Config struct {
	Addr          string
	DataDir       string
	UploadDir     string
	JWTSecret     string
	DatabaseURL   string
	AdminEmail    string
	AdminPassword string
}

func Load() Config {
	return Config{
		Addr:          getenv("ADDR", ":8080"),
		DataDir:       getenv("DATA_DIR", "./data"),
		UploadDir:     getenv("UPLOAD_DIR", "./uploads"),
		JWTSecret:     getenv("JWT_SECRET", "dev-secret-change-me"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		AdminEmail:    getenv("ADMIN_EMAIL", "admin@littlecharmz.com"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
