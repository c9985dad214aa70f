package main

import "quickprice/internal/cli"

func main() {
	cli.Execute()
}
