package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyw-webpics/webpics/client"
)

func newCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "List and manage categories",
	}
	cmd.AddCommand(newCategoryListCmd())
	cmd.AddCommand(newCategoryCreateCmd())
	cmd.AddCommand(newCategoryUpdateCmd())
	cmd.AddCommand(newCategoryDeleteCmd())
	return cmd
}

func newCategoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				cats, err := s.client.Categories.List(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, c := range cats {
					fmt.Fprintf(out, "%s\t%s\t%s\n", c.ID, c.Slug, c.Name)
				}
				fmt.Fprintf(out, "Total: %d\n", len(cats))
				return nil
			})
		},
	}
}

func newCategoryCreateCmd() *cobra.Command {
	var name, slug string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				cat, err := s.client.Categories.Create(ctx, client.CategoryInput{Name: name, Slug: slug})
				if err != nil {
					return err
				}
				return printJSON(cmd, cat)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Category name (required)")
	cmd.Flags().StringVar(&slug, "slug", "", "URL slug (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("slug")
	return cmd
}

func newCategoryUpdateCmd() *cobra.Command {
	var name, slug string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename a category (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				msg, err := s.client.Categories.Update(ctx, client.ID(args[0]), client.CategoryInput{Name: name, Slug: slug})
				if err != nil {
					return err
				}
				return printJSON(cmd, msg)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Category name (required)")
	cmd.Flags().StringVar(&slug, "slug", "", "URL slug (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("slug")
	return cmd
}

func newCategoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, s *session) error {
				msg, err := s.client.Categories.Delete(ctx, client.ID(args[0]))
				if err != nil {
					return err
				}
				return printJSON(cmd, msg)
			})
		},
	}
}
