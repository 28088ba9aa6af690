package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hyw-webpics/webpics/client"
	"github.com/hyw-webpics/webpics/devmode"
	"github.com/hyw-webpics/webpics/internal/logger"
	"github.com/hyw-webpics/webpics/tokenstore"
)

var baseURL string
var tokenFile string
var debug bool
var jsonLogs bool

const requestTimeout = 30 * time.Second

const adminSessionCookie = "admin_session"

func main() {
	_ = godotenv.Load()
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Stack().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "webpics",
		Short:         "webpics is a command line client for the webpics image board",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			if jsonLogs {
				log.Logger = logger.New("webpics", cmd.ErrOrStderr())
			} else {
				log.Logger = logger.Console("webpics", cmd.ErrOrStderr(), debug)
			}
			if debug {
				log.Debug().Msg("debug logging enabled")
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API root (default $WEBPICS_BASE_URL or "+devmode.BaseURL+")")
	rootCmd.PersistentFlags().StringVar(&tokenFile, "token-file", "", "Credentials file (default $WEBPICS_TOKEN_FILE or ~/.webpics/credentials.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Dump HTTP traffic to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Write logs to stderr as JSON")

	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newMeCmd())
	rootCmd.AddCommand(newCategoryCmd())
	rootCmd.AddCommand(newImageCmd())
	rootCmd.AddCommand(newAdminCmd())

	return rootCmd
}

// session is what every command needs: a client wired to the credentials file.
type session struct {
	client *client.Client
	store  *tokenstore.File
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := client.LoadConfig()
	if err != nil {
		return nil, err
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if tokenFile != "" {
		cfg.TokenFile = tokenFile
	}
	cfg.Debug = cfg.Debug || debug

	path := cfg.TokenFile
	if path == "" {
		if path, err = tokenstore.DefaultPath(); err != nil {
			return nil, err
		}
	}
	store := tokenstore.NewFile(nil, path)

	c, err := client.NewFromConfig(cfg,
		client.WithTokenProvider(store),
		client.WithLogger(log.Logger),
	)
	if err != nil {
		return nil, err
	}

	adminSession, found, err := store.Get(ctx, tokenstore.KeyAdminSession)
	if err != nil {
		return nil, err
	}
	if found {
		if err := c.SetCookies([]*http.Cookie{{Name: adminSessionCookie, Value: adminSession, Path: "/"}}); err != nil {
			return nil, err
		}
	}
	log.Debug().Str("base_url", c.BaseURL()).Str("token_file", store.Path()).Msg("session opened")
	return &session{client: c, store: store}, nil
}

// run opens a session and calls f with a bounded context.
func run(cmd *cobra.Command, f func(ctx context.Context, s *session) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	start := time.Now()
	err = f(ctx, s)
	log.Debug().Str("command", cmd.CommandPath()).Dur("elapsed", time.Since(start)).Err(err).Msg("command finished")
	return err
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}
