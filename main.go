package main

import (
	"os"

	"github.com/codefind/codefind-cli/cmd"
	"github.com/codefind/codefind-cli/internal/logging"
)

func main() {
	err := cmd.Execute()
	logging.Close()
	if err != nil {
		os.Exit(1)
	}
}
