package main

import "github.com/aalvaropc/railinfo/internal/cli"

func main() {
	cli.Execute()
}
