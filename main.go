package main

import (
	"github.com/zoneprof/zoneprof/pkg/cmd"
)

func main() {
	cmd.Execute()
}
