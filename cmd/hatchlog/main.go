package main

import "github.com/ray-zero3/hatchlog/internal/cli"

func main() {
	cli.Execute()
}
