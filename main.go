package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"git.asdf.cafe/abs3nt/randomwall/cmd"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := cmd.NewRootCommand(cmd.Options{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	if err := root.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "randomwall: %v\n", err)
		return 1
	}
	return 0
}
