package main

import "github.com/example/travel-planner/internal/cli"

func main() {
	cli.Execute()
}
