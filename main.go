package main

import (
	"github.com/dreamerjackson/moonbag/cmd"
)

func main() {
	cmd.Execute()
}
