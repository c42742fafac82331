package main

import (
	"github.com/NVIDIA/skugen/pkg/cli"
)

func main() {
	cli.Execute()
}
