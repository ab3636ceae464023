package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/open-pam/console/internal/api"
	"github.com/open-pam/console/internal/auth"
	"github.com/open-pam/console/internal/config"
)

// newSession wires the standard command dependencies: config, the
// rehydrated auth store, and a backend client reading the token per
// request.
func newSession() (config.Config, *auth.Store, *api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	store := auth.NewStore(cfg.TokenFile)
	if err := store.LoadFromStorage(); err != nil {
		return config.Config{}, nil, nil, err
	}
	client := api.NewClient(cfg.APIBaseURL, store.Source(), cfg.APITimeout)
	return cfg, store, client, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func parseID(kind, arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id: %q", kind, arg)
	}
	return id, nil
}

func printTable(cmd *cobra.Command, headers []string, rows [][]string) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func orDash(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "-"
	}
	return v
}
