package main

import "github.com/aalvaropc/railinfo/internal/fractioncli"

func main() {
	fractioncli.Execute()
}
