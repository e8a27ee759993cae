package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/diaglab/insumo/internal/cli"
)

func main() {
	// Optional .env for local defaults (INSUMO_CONFIG, INSUMO_FORMAT).
	_ = godotenv.Load()

	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
