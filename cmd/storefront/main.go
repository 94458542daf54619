package main

import "github.com/alamintokder/bazar-sodai/internal/cmd"

func main() {
	cmd.Execute()
}
