package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"image-proxy/core/config"
	"image-proxy/core/logger"
	"image-proxy/core/storage"
	"image-proxy/feature/images"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// fetchCmd downloads an object with the service credential
var fetchCmd = &cobra.Command{
	Use:   "fetch <path>",
	Short: "Download an object with the service role key",
	Long:  `Downloads an object through the authenticated storage client (the image endpoint's private route) and writes it to stdout or a file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		bucket, _ := cmd.Flags().GetString("bucket")
		output, _ := cmd.Flags().GetString("output")

		target, err := images.ParseTarget(args[0], bucket, cfg.Storage.Bucket())
		if err != nil {
			return err
		}

		svc := images.NewService(cfg.Storage, nil, storage.NewServiceClientFactory(cfg.Storage), nil, logg)
		body, err := svc.FetchPrivate(ctx, target)
		if err != nil {
			return fmt.Errorf("failed to fetch %s/%s: %w", target.Bucket, target.Path, err)
		}

		var w io.Writer = cmd.OutOrStdout()
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			w = f
		}

		if _, err := w.Write(body); err != nil {
			return fmt.Errorf("failed to write object: %w", err)
		}

		logg.Info("Object fetched",
			zap.String("bucket", target.Bucket),
			zap.String("path", target.Path),
			zap.String("mime", target.MIME),
			zap.Int("bytes", len(body)),
			zap.Duration("duration", time.Since(startTime)))
		return nil
	},
}

func init() {
	fetchCmd.Flags().String("bucket", "", "Bucket override")
	fetchCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
	RootCmd.AddCommand(fetchCmd)
}
