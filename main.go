// Package main is the entry point for create-layervue.
package main

import (
	"github.com/layervue/create-layervue/cmd"
	"github.com/layervue/create-layervue/config"
	"github.com/layervue/create-layervue/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
