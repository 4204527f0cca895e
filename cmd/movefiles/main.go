package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

func main() {
	cmd := newRootCommand()
	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(exitCode(err))
	}
}
