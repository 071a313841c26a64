package main

import "github.com/goxlr-re/goxlr-dissect/cmd"

func main() {
	cmd.Execute()
}
