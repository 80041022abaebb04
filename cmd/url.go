package cmd

import (
	"fmt"

	"image-proxy/core/config"
	"image-proxy/core/storage"
	"image-proxy/feature/images"

	"github.com/spf13/cobra"
)

// urlCmd prints the public URL of an object
var urlCmd = &cobra.Command{
	Use:   "url <path>",
	Short: "Print the public URL of an object",
	Long:  `Resolves the path and bucket the same way the image endpoint does and prints the public object URL.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		bucket, _ := cmd.Flags().GetString("bucket")
		target, err := images.ParseTarget(args[0], bucket, cfg.Storage.Bucket())
		if err != nil {
			return err
		}

		publicURL, err := storage.BuildPublicURL(cfg.Storage.URL, target.Bucket, target.Path)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), publicURL)
		return nil
	},
}

func init() {
	urlCmd.Flags().String("bucket", "", "Bucket override")
	RootCmd.AddCommand(urlCmd)
}
