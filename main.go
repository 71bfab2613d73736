package main

import (
	"github.com/dt-pm-tools/dor-analyzer/cmd"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; real config comes from
	// ~/.dor-analyzer.yaml and environment variables.
	_ = godotenv.Load()

	cmd.Execute()
}
