package main

import "github.com/plus3/blockfall/internal/cmd"

func main() {
	cmd.Execute()
}
