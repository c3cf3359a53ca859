package main

import "github.com/gosteel/firecalc/cmd"

func main() {
	cmd.Execute()
}
