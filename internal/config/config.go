package config

import "os"

// Config holds environment-driven configuration.
type Config struct {
	Addr        string
	DatabaseURL string
	MenuPath    string
	BoardDir    string
	JWTSecret   string
}

// Load reads configuration from environment variables.
func Load() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	menuPath := os.Getenv("MENU_PATH")
	if menuPath == "" {
		menuPath = "menu.csv"
	}
	boardDir := os.Getenv("BOARD_DIR")
	if boardDir == "" {
		boardDir = "./boards"
	}

	return Config{
		Addr:        addr,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		MenuPath:    menuPath,
		BoardDir:    boardDir,
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}
}
