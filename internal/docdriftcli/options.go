package docdriftcli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"docdrift/internal/config"
	"docdrift/internal/core/githist"
)

type Options struct {
	MaxCount       int
	GitBinary      string
	TimeoutSeconds int
	Jsonl          bool
	ConfigPath     string
}

// Prepare merges config-file values under flags the user did not set, then
// validates.
func (o *Options) Prepare(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}

	fl := cmd.Root().PersistentFlags()
	if !fl.Changed("max-count") {
		o.MaxCount = cfg.MaxCount
	}
	if !fl.Changed("git") {
		o.GitBinary = cfg.GitBinary
	}
	if !fl.Changed("timeout") {
		o.TimeoutSeconds = cfg.TimeoutSeconds
	}

	if o.MaxCount <= 0 {
		return fmt.Errorf("max-count must be > 0")
	}
	if strings.TrimSpace(o.GitBinary) == "" {
		return fmt.Errorf("git binary is required")
	}
	if o.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout must be > 0 seconds")
	}
	return nil
}

func (o *Options) historyClient() *githist.Client {
	return githist.NewClient(githist.Options{
		GitBinary: o.GitBinary,
		Timeout:   time.Duration(o.TimeoutSeconds) * time.Second,
	})
}

type optionsKey struct{}

func optionsFrom(cmd *cobra.Command) *Options {
	if cmd == nil {
		return nil
	}
	root := cmd.Root()
	if root == nil {
		root = cmd
	}
	v := root.Context().Value(optionsKey{})
	opts, _ := v.(*Options)
	return opts
}

func bindFlags(cmd *cobra.Command, opts *Options) {
	cmd.PersistentFlags().IntVarP(&opts.MaxCount, "max-count", "n", opts.MaxCount, "revisions to inspect per line range")
	cmd.PersistentFlags().StringVar(&opts.GitBinary, "git", opts.GitBinary, "git executable to invoke")
	cmd.PersistentFlags().IntVar(&opts.TimeoutSeconds, "timeout", opts.TimeoutSeconds, "per-invocation git timeout in seconds")
	cmd.PersistentFlags().BoolVar(&opts.Jsonl, "jsonl", opts.Jsonl, "output as JSONL")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "config file (default .docdrift.yml when present)")
}

func ExecuteForTest(cmd *cobra.Command) (string, Options, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()

	opts := optionsFrom(cmd)
	if opts == nil {
		return out.String(), Options{}, err
	}
	return out.String(), *opts, err
}

func newDefaultOptions() *Options {
	cfg := config.Default()
	return &Options{
		MaxCount:       cfg.MaxCount,
		GitBinary:      cfg.GitBinary,
		TimeoutSeconds: cfg.TimeoutSeconds,
	}
}

func withOptionsContext(cmd *cobra.Command, opts *Options) {
	cmd.SetContext(context.WithValue(context.Background(), optionsKey{}, opts))
}
