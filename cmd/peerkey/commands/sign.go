package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign [file]",
		Short: "Sign a file (or stdin) with the identity key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			sig, err := appCtx.Keys.Sign(data)
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(sig))
			return nil
		},
	}
}
