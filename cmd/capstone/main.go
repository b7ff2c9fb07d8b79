package main

import (
	"os"

	"github.com/paulamunoz06/gestionproyectos/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
