package main

import (
	"os"

	"github.com/go-trimesh/go-trimesh/lib/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
