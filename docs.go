package main

import (
	"fmt"

	"github.com/spf13/cobra/doc"

	"github.com/shandley/chromdetect/cmd"
)

// makeDocs writes Markdown documentation pages for every command to
// ./docs.
func makeDocs() {
	if err := doc.GenMarkdownTree(cmd.RootCmd, "./docs"); err != nil {
		fmt.Println(err.Error())
	}
}
