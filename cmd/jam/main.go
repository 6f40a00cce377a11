package main

import (
	"context"

	"github.com/faizmokh/jam/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
