package main

import (
	"github.com/dotcommander/shopen/cmd"
	"github.com/dotcommander/shopen/internal/config"
)

func main() {
	config.SetDefaults()
	cmd.Execute()
}