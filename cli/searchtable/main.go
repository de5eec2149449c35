package main

import (
	"os"

	"github.com/raphaelvigee/searchtable/cmd"
)

func main() {
	os.Exit(cmd.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
