package main

import (
	"context"

	"github.com/anilwee/epgLK/cmd/epglk/cmds"
	"github.com/spf13/cobra"
)

func main() {
	cobra.CheckErr(cmds.NewRootCLI().ExecuteContext(context.Background()))
}
