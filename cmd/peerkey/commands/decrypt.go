package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"peerkey/internal/crypto"
)

func decryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt [file]",
		Short: "Decrypt an ECIES envelope with the identity key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(args)
			if err != nil {
				return err
			}
			ct, err := crypto.UnB64(strings.TrimSpace(string(in)))
			if err != nil {
				return err
			}
			pt, err := appCtx.Keys.Decrypt(ct)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(pt)
			return err
		},
	}
}
