package main

import "github.com/oleg578/fixedcsv/internal/cmd"

func main() {
	cmd.Execute()
}
