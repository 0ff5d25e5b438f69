package main

import (
	"github.com/joho/godotenv"

	"github.com/docchat/docchat-be/cmd"
)

func main() {
	// .env is optional; API keys may come from the real environment.
	_ = godotenv.Load()

	cmd.Execute()
}
