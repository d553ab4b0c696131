package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/shahzaib/lessonforge/cmd"
)

func main() {
	// Best-effort: a missing .env just means the keys come from the
	// real environment.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
