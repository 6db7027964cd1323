package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ghettovoice/sipfield/header"
)

func newHeaderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "header line",
		Short: "Parses a header line and shows the auth scheme and parameters",
		Example: `  sipfield header 'WWW-Authenticate: Digest realm="atlanta.com", qop="auth"'
  sipfield header 'Authentication-Info: nextnonce="47364c23432d2e131a5fb210812c"'`,
		Args: cobra.ExactArgs(1),
		RunE: runHeader,
	}
}

func runHeader(cmd *cobra.Command, args []string) error {
	hdr, err := header.Parse(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "name: %s\n", hdr.CanonicName())
	fmt.Fprintf(out, "valid: %t\n", hdr.IsValid())

	authHdr, ok := hdr.(header.AuthHeader)
	if !ok {
		fmt.Fprintf(out, "value: %s\n", hdr.RenderValue())
		return nil
	}

	if scheme, ok := authHdr.AuthScheme(); ok {
		fmt.Fprintf(out, "scheme: %s\n", scheme)
	}
	for name, val := range authHdr.Params().All() {
		fmt.Fprintf(out, "param: %s = %q\n", name, val)
	}
	return nil
}
