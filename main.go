package main

import (
	"github.com/quadfem/gomg/cmd"
)

func main() {
	cmd.Execute()
}
