package main

import "github.com/LavenderBridge/vocab/cmd"

func main() {
	cmd.Execute()
}
