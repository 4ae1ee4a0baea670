package main

import (
	"os"

	"github.com/Harthik777/Agentic-XAI/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
