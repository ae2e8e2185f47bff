package main

import (
	"os"

	rhomailcmd "github.com/runrho/rhomail/pkg/rhomail/cmd"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := rhomailcmd.NewRootCommand(rhomailcmd.DefaultConfig())
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
