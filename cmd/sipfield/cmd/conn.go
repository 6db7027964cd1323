package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ghettovoice/sipfield/sdp"
)

func newConnCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "conn address",
		Short:   "Re-encodes an SDP connection address as the connection data field",
		Example: `  sipfield conn 224.2.1.1/127/3`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := sdp.ParseConnectionAddress(args[0])
			if err != nil {
				return err
			}

			conn := sdp.NewConnection(addr)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, conn)
			fmt.Fprintf(out, "valid: %t\n", conn.IsValid())
			return nil
		},
	}
}
