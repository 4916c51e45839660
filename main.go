package main

import (
	"chip8vm/cmd"

	"github.com/faiface/pixel/pixelgl"
)

// pixelgl needs the main OS thread, everything runs inside its loop
func main() {
	pixelgl.Run(runVM)
}

func runVM() {
	cmd.Execute()
}
