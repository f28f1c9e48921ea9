package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/networkdirection/coresdk/pkg/crypto"
)

// NewCryptoCmd creates the crypto command group.
func NewCryptoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crypto",
		Short: "Encrypt and decrypt values through the crypto service",
	}

	cmd.AddCommand(newCryptoEncryptCmd())
	cmd.AddCommand(newCryptoDecryptCmd())

	return cmd
}

func newCryptoEncryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt [value]",
		Short: "Encrypt a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cryptoClient(cmd)
			if err != nil {
				return err
			}

			res, err := client.Encrypt(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("encryption failed: %w", err)
			}

			fmt.Printf("encrypted: %s\n", res.Value)
			fmt.Printf("salt:      %s\n", res.Salt)
			return nil
		},
	}
}

func newCryptoDecryptCmd() *cobra.Command {
	var salt string

	cmd := &cobra.Command{
		Use:   "decrypt [value]",
		Short: "Decrypt a value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := cryptoClient(cmd)
			if err != nil {
				return err
			}

			res, err := client.Decrypt(cmd.Context(), args[0], salt)
			if err != nil {
				return fmt.Errorf("decryption failed: %w", err)
			}

			fmt.Printf("decrypted: %s\n", res.Value)
			return nil
		},
	}

	cmd.Flags().StringVar(&salt, "salt", "", "Salt the value was encrypted with (required)")
	_ = cmd.MarkFlagRequired("salt")

	return cmd
}

func cryptoClient(cmd *cobra.Command) (*crypto.Client, error) {
	p, err := loadProfile(cmd)
	if err != nil {
		return nil, err
	}

	url, err := requireEndpoint(p.Endpoints.Crypto, "crypto")
	if err != nil {
		return nil, err
	}

	opts := []crypto.Option{}
	if d := p.Timeout(); d > 0 {
		opts = append(opts, crypto.WithTimeout(d))
	}
	return crypto.New(url, opts...), nil
}
