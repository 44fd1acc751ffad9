package main

import (
	"context"
	"os"

	"github.com/secmon-lab/techflow/pkg/cli"
	"github.com/secmon-lab/techflow/pkg/utils/apperr"

	_ "time/tzdata"
)

func main() {
	ctx := context.Background()
	if err := cli.Run(ctx, os.Args); err != nil {
		apperr.Handle(ctx, err)
		os.Exit(1)
	}
}
