package main

import (
	"github.com/pfrederiksen/rank-trends/internal/cli"
)

func main() {
	cli.Execute()
}
