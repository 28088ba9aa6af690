package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hyw-webpics/webpics/tokenstore"
)

func newRegisterCmd() *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				resp, err := s.client.Auth.Register(ctx, username, password)
				if err != nil {
					return err
				}
				return printJSON(cmd, resp)
			})
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Username (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLoginCmd() *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				resp, err := s.client.Auth.Login(ctx, username, password)
				if err != nil {
					return err
				}
				if err := s.store.Set(ctx, tokenstore.KeyToken, resp.Token); err != nil {
					return err
				}
				log.Debug().Str("user_id", resp.User.ID.String()).Str("token_file", s.store.Path()).Msg("token stored")
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", resp.User.Username)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Username (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				if err := s.store.Delete(ctx, tokenstore.KeyToken); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
				return err
			})
		},
	}
}

func newMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				u, err := s.client.Auth.Me(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd, u)
			})
		},
	}
}
