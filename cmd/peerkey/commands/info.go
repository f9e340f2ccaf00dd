package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"peerkey/internal/crypto"
	"peerkey/internal/domain"
)

func infoCmd() *cobra.Command {
	var peer string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show key id, fingerprint and difficulty",
		RunE: func(cmd *cobra.Command, args []string) error {
			if peer != "" {
				est, err := appCtx.Keys.Difficulty(domain.KeyID(peer))
				if err != nil {
					return err
				}
				fmt.Printf("Key id:     %s\n", peer)
				fmt.Printf("Difficulty: %.2f\n", est)
				return nil
			}

			pub := appCtx.Keys.PublicKey()
			est, err := appCtx.Keys.Difficulty(appCtx.Keys.KeyID())
			if err != nil {
				return err
			}
			fmt.Printf("Key id:      %s\n", appCtx.Keys.KeyID())
			fmt.Printf("Fingerprint: %s\n", crypto.Fingerprint(pub.Slice()))
			fmt.Printf("Key file:    %s\n", appCtx.Keys.PrivateKeyPath())
			fmt.Printf("Difficulty:  %.2f\n", est)
			return nil
		},
	}

	cmd.Flags().StringVar(&peer, "peer", "", "inspect a peer key id instead of the own key")
	return cmd
}
