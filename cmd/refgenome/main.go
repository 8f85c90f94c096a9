// cmd/refgenome/main.go
package main

import (
	"os"

	"refgenome/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
