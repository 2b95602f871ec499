// Zarrconv inspects and validates Zarr convention metadata.
package main

import "github.com/zarr-experimental/conventions-go/internal/cli"

func main() {
	cli.Execute()
}
