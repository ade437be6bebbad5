package main

import (
	"github.com/Cmiroslaf/BEFA-Library/cmd"

	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))
	cmd.Execute()
}
