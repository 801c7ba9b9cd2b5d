package main

import (
	"context"
	"os"

	"budget/internal/cli"
	"budget/internal/commands"
)

func main() {
	// Load .env file for local development (ignored when absent)
	cli.LoadEnvFile()

	err := commands.Execute(context.Background(), commands.Options{
		Args:          os.Args[1:],
		In:            os.Stdin,
		Out:           os.Stdout,
		HandleSignals: true,
	})
	if err != nil {
		os.Exit(1)
	}
}
