package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/avc-dev/shortlink-client/internal/app"
)

func main() {
	// .env удобен для локальной разработки, его отсутствие не ошибка
	_ = godotenv.Load()

	if err := app.Run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
