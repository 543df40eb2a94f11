// cmd/seqcomplex-filter/main.go
package main

import (
	"os"

	"seqcomplex/internal/filterapp"
)

func main() {
	os.Exit(filterapp.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
