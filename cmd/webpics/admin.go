package main

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hyw-webpics/webpics/client"
	"github.com/hyw-webpics/webpics/tokenstore"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Moderate uploads",
	}
	cmd.AddCommand(newAdminLoginCmd())
	cmd.AddCommand(newAdminLogoutCmd())
	cmd.AddCommand(newAdminPendingCmd())
	cmd.AddCommand(newAdminImagesCmd())
	cmd.AddCommand(newAdminApproveCmd())
	cmd.AddCommand(newAdminRejectCmd())
	cmd.AddCommand(newAdminDeleteCmd())
	cmd.AddCommand(newAdminBulkApproveCmd())
	cmd.AddCommand(newAdminBulkDeleteCmd())
	cmd.AddCommand(newAdminStatsCmd())
	return cmd
}

func newAdminLoginCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Open an admin session and store its cookie",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				msg, err := s.client.Admin.Login(ctx, password)
				if err != nil {
					return err
				}
				for _, ck := range s.client.Cookies() {
					if ck.Name != adminSessionCookie {
						continue
					}
					if err := s.store.Set(ctx, tokenstore.KeyAdminSession, ck.Value); err != nil {
						return err
					}
					log.Debug().Str("token_file", s.store.Path()).Msg("admin session stored")
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "Admin password (required)")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newAdminLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Close the admin session and forget its cookie",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				var result *multierror.Error
				msg, err := s.client.Admin.Logout(ctx)
				if err != nil {
					result = multierror.Append(result, err)
				}
				if err := s.store.Delete(ctx, tokenstore.KeyAdminSession); err != nil {
					result = multierror.Append(result, err)
				}
				if err := result.ErrorOrNil(); err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
				return err
			})
		},
	}
}

func newAdminPendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List images awaiting review",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				resp, err := s.client.Admin.Pending(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd, resp)
			})
		},
	}
}

func newAdminImagesCmd() *cobra.Command {
	var filter client.ImageFilter
	cmd := &cobra.Command{
		Use:   "images",
		Short: "List images of any status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				resp, err := s.client.Admin.Images(ctx, filter)
				if err != nil {
					return err
				}
				return printJSON(cmd, resp)
			})
		},
	}
	cmd.Flags().IntVar(&filter.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&filter.Limit, "limit", 0, "Page size")
	cmd.Flags().StringVar(&filter.Status, "status", "", "pending or approved")
	return cmd
}

func newAdminApproveCmd() *cobra.Command {
	var categoryID string
	cmd := &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve an image into a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				msg, err := s.client.Admin.Approve(ctx, client.ID(args[0]), client.ID(categoryID))
				if err != nil {
					return err
				}
				return printJSON(cmd, msg)
			})
		},
	}
	cmd.Flags().StringVar(&categoryID, "category-id", "", "Category to publish into (required)")
	_ = cmd.MarkFlagRequired("category-id")
	return cmd
}

func newAdminRejectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject a pending image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				msg, err := s.client.Admin.Reject(ctx, client.ID(args[0]))
				if err != nil {
					return err
				}
				return printJSON(cmd, msg)
			})
		},
	}
}

func newAdminDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				msg, err := s.client.Admin.DeleteImage(ctx, client.ID(args[0]))
				if err != nil {
					return err
				}
				return printJSON(cmd, msg)
			})
		},
	}
}

func newAdminBulkApproveCmd() *cobra.Command {
	var categoryID string
	cmd := &cobra.Command{
		Use:   "bulk-approve <id>...",
		Short: "Approve several images into one category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				msg, err := s.client.Admin.BulkApprove(ctx, client.IDs(args...), client.ID(categoryID))
				if err != nil {
					return err
				}
				return printJSON(cmd, msg)
			})
		},
	}
	cmd.Flags().StringVar(&categoryID, "category-id", "", "Category to publish into (required)")
	_ = cmd.MarkFlagRequired("category-id")
	return cmd
}

func newAdminBulkDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bulk-delete <id>...",
		Short: "Delete several images",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				msg, err := s.client.Admin.BulkDelete(ctx, client.IDs(args...))
				if err != nil {
					return err
				}
				return printJSON(cmd, msg)
			})
		},
	}
}

func newAdminStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show moderation counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				st, err := s.client.Admin.Stats(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd, st)
			})
		},
	}
}
