package main

import "github.com/SeamusWaldron/cubevision/internal/cli"

func main() {
	cli.Execute()
}
