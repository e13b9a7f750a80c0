package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"mahc/internal/batch"
)

func main() {
	cmd := newRootCmd()
	cmd.SetArgs(batch.JoinValues(os.Args[1:]))
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
