package main

import "github.com/gaurav-prasanna/docjoin/cmd"

func main() {
	cmd.Execute()
}
