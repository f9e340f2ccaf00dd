package commands

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func verifyCmd() *cobra.Command {
	var peer string

	cmd := &cobra.Command{
		Use:   "verify <signature-hex> [file]",
		Short: "Verify a signature over a file (or stdin)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("decode signature: %w", err)
			}
			data, err := readInput(args[1:])
			if err != nil {
				return err
			}

			var pub []byte
			if peer != "" {
				pub = []byte(peer)
			}
			if !appCtx.Keys.Verify(sig, data, pub) {
				return errors.New("signature invalid")
			}
			fmt.Println("signature valid")
			return nil
		},
	}

	cmd.Flags().StringVar(&peer, "peer", "", "peer key id to verify against (default: own key)")
	return cmd
}
