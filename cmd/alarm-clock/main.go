package main

import "github.com/argha-paul/alarm-clock/cmd/alarm-clock/cmd"

func main() {
	cmd.Execute()
}
