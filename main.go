package main

import "github.com/gaurav-prasanna/docmd/cmd"

func main() {
	cmd.Execute()
}
