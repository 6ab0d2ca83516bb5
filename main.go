package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/parts-pile/carfinder/cli"
)

func main() {
	cli.Execute()
}
