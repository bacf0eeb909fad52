package main

import (
	"os"

	"github.com/viant/burrowkv/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
