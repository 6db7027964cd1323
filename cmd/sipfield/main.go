package main

import (
	"github.com/spf13/cobra"

	"github.com/ghettovoice/sipfield/cmd/sipfield/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
