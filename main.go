package main

import (
	"github.com/shandley/chromdetect/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
