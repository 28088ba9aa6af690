package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hyw-webpics/webpics/client"
)

func newImageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "image",
		Short: "Browse and upload images",
	}
	cmd.AddCommand(newImageListCmd())
	cmd.AddCommand(newImageRandomCmd())
	cmd.AddCommand(newImageUploadCmd())
	return cmd
}

func newImageListCmd() *cobra.Command {
	var page, limit int
	var categoryID string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List approved images",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				resp, err := s.client.Images.ListApproved(ctx, page, limit, client.ID(categoryID))
				if err != nil {
					return err
				}
				return printJSON(cmd, resp)
			})
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&limit, "limit", 20, "Page size")
	cmd.Flags().StringVar(&categoryID, "category-id", "", "Only images in this category")
	return cmd
}

func newImageRandomCmd() *cobra.Command {
	var categoryID string
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Show one random approved image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				img, err := s.client.Images.Random(ctx, client.ID(categoryID))
				if err != nil {
					return err
				}
				return printJSON(cmd, img)
			})
		},
	}
	cmd.Flags().StringVar(&categoryID, "category-id", "", "Only images in this category")
	return cmd
}

func newImageUploadCmd() *cobra.Command {
	var categoryID string
	cmd := &cobra.Command{
		Use:   "upload <file>...",
		Short: "Upload images for review",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files := make([]client.File, 0, len(args))
			for _, p := range args {
				f, err := os.Open(p)
				if err != nil {
					return err
				}
				defer f.Close()
				files = append(files, client.File{Name: filepath.Base(p), Reader: f})
			}
			return run(cmd, func(ctx context.Context, s *session) error {
				log.Debug().Int("files", len(files)).Str("category_id", categoryID).Msg("uploading")
				resp, err := s.client.Images.Upload(ctx, files, client.ID(categoryID))
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (id %s)\n", resp.Message, resp.Image.ID)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&categoryID, "category-id", "", "Suggested category")
	return cmd
}
