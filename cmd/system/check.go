package system

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/Alijeyrad/portfolio_backend/config"
	"github.com/Alijeyrad/portfolio_backend/pkg/email"
	redispkg "github.com/Alijeyrad/portfolio_backend/pkg/redis"
)

func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check configuration and connectivity of every dependency",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			if failed := runChecks(ctx, cmd.OutOrStdout(), cfg); failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}

	return cmd
}

type check struct {
	name string
	run  func(ctx context.Context, cfg *config.Config) (string, error)
}

var checks = []check{
	{"email", checkEmail},
	{"redis", checkRedis},
	{"nats", checkNats},
}

// runChecks prints one line per check and returns the number that failed.
func runChecks(ctx context.Context, w io.Writer, cfg *config.Config) int {
	failed := 0
	for _, c := range checks {
		detail, err := c.run(ctx, cfg)
		if err != nil {
			failed++
			fmt.Fprintf(w, "FAIL  %-6s %v\n", c.name, err)
			continue
		}
		fmt.Fprintf(w, "ok    %-6s %s\n", c.name, detail)
	}
	return failed
}

func checkEmail(_ context.Context, cfg *config.Config) (string, error) {
	ec := email.FromCentralConfig(cfg.Email)
	sender, err := email.New(ec, nil)
	if err != nil {
		return "", err
	}

	switch sender.Provider() {
	case email.ProviderSendGrid:
		if ec.SendGridAPIKey == "" {
			return "", email.ErrNotConfigured{Provider: email.ProviderSendGrid, Reason: "api key is empty"}
		}
	case email.ProviderSMTP:
		if ec.SMTPHost == "" {
			return "", email.ErrNotConfigured{Provider: email.ProviderSMTP, Reason: "host is empty"}
		}
	}
	return fmt.Sprintf("provider=%s from=%s", sender.Provider(), ec.Sender()), nil
}

func checkRedis(ctx context.Context, cfg *config.Config) (string, error) {
	if cfg.Redis.Addr == "" {
		return "not configured, in-memory fallback", nil
	}
	rdb, err := redispkg.NewRedis(ctx, redispkg.FromCentralConfig(cfg.Redis))
	if err != nil {
		return "", err
	}
	defer rdb.Close()
	return "reachable at " + cfg.Redis.Addr, nil
}

func checkNats(_ context.Context, cfg *config.Config) (string, error) {
	if cfg.Nats.URL == "" {
		return "not configured, events disabled", nil
	}
	nc, err := nats.Connect(cfg.Nats.URL, nats.Timeout(5*time.Second))
	if err != nil {
		return "", err
	}
	defer nc.Close()
	return "connected to " + nc.ConnectedUrlRedacted(), nil
}
