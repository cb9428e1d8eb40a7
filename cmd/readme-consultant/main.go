package main

import (
	"os"

	"github.com/mujasoft/readme-consultant/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
