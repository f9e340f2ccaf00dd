package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"peerkey/internal/crypto"
)

func encryptCmd() *cobra.Command {
	var peer string

	cmd := &cobra.Command{
		Use:   "encrypt [file]",
		Short: "Encrypt a file (or stdin) with ECIES",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}

			var pub []byte
			if peer != "" {
				pub = []byte(peer)
			}
			ct, err := appCtx.Keys.Encrypt(data, pub)
			if err != nil {
				return err
			}
			fmt.Println(crypto.B64(ct))
			return nil
		},
	}

	cmd.Flags().StringVar(&peer, "peer", "", "recipient key id (default: own key)")
	return cmd
}
