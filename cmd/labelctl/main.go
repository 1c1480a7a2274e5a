package main

import (
	"github.com/joho/godotenv"

	"hypehouse-backend/cmd/labelctl/commands"
)

func main() {
	_ = godotenv.Load()
	commands.Execute()
}
