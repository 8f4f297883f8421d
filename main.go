package main

import (
	"github.com/sw33tLie/epicurve/cmd"
)

func main() {
	cmd.Execute()
}
