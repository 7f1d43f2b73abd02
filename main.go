package main

import "github.com/vegasq/xlcat/internal/cli"

func main() {
	cli.Execute()
}
