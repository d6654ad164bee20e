package main

import "github.com/CristiGvl/picoArch/cmd"

func main() {
	cmd.Execute()
}
