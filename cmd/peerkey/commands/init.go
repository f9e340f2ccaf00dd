package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"peerkey/internal/crypto"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Load or generate the identity key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			pub := appCtx.Keys.PublicKey()
			fmt.Printf("Key id:      %s\n", appCtx.Keys.KeyID())
			fmt.Printf("Fingerprint: %s\n", crypto.Fingerprint(pub.Slice()))
			fmt.Printf("Key file:    %s\n", appCtx.Keys.PrivateKeyPath())
			return nil
		},
	}
}
