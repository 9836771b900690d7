package main

import "github.com/salihsuliman/queue-up/internal/cli"

func main() {
	cli.Execute()
}
