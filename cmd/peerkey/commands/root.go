package commands

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"peerkey/internal/app"
)

var (
	datadir    string
	keyName    string
	difficulty int
	genTimeout time.Duration

	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "peerkey",
		Short: "Peer identity key manager",
		Long: "peerkey loads or generates the peer's secp256k1 identity key pair,\n" +
			"gated by a proof-of-work difficulty on the public key, and signs,\n" +
			"verifies, encrypts and decrypts with it.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if genTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, genTimeout)
				defer cancel()
			}

			wire, err := app.NewWire(ctx, app.Config{
				Datadir:    datadir,
				KeyName:    keyName,
				Difficulty: difficulty,
			})
			if err != nil {
				return err
			}
			appCtx = wire
			return nil
		},
	}

	root.PersistentFlags().StringVar(&datadir, "datadir", "", "data dir (default: platform data home)")
	root.PersistentFlags().StringVar(&keyName, "key-name", "", "private key file name")
	root.PersistentFlags().IntVar(&difficulty, "difficulty", 0, "required key difficulty (leading zero bits, 0-255)")
	root.PersistentFlags().DurationVar(&genTimeout, "gen-timeout", 0, "bound on key generation time (0 = unbounded)")

	root.AddCommand(initCmd(), infoCmd(), signCmd(), verifyCmd(), encryptCmd(), decryptCmd())
	return root.Execute()
}

// readInput returns the contents of the file named by args[0], or stdin
// when no argument (or "-") is given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
