package main

import (
	"ndbc-data/internal/cli"
)

func main() {
	cli.Execute()
}
