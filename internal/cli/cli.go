// Package cli implements the emailsyntax command.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/optimode/emailsyntax"
	"github.com/optimode/emailsyntax/internal/config"
	"github.com/optimode/emailsyntax/internal/logging"
)

// Exit codes.
const (
	ExitValid   = 0
	ExitInvalid = 1
	ExitUsage   = 2
)

// Run is the command entrypoint.
//
// binName is the name shown in usage text; args exclude the binary name
// (i.e. os.Args[1:]). Addresses come from args, or from stdin one per line.
//
// It returns a process exit code; callers should os.Exit(Run(...)).
func Run(ctx context.Context, binName string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(binName, args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return ExitValid
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", binName, err)
		return ExitUsage
	}

	logger := logging.New(cfg.LogLevel, cfg.Env, stderr)
	defer func() { _ = logger.Sync() }()

	addresses := cfg.Addresses
	if len(addresses) == 0 {
		addresses, err = readAddresses(stdin)
		if err != nil {
			logger.Error("read addresses", zap.Error(err))
			return ExitUsage
		}
	}
	logger.Debug("validating addresses",
		zap.Int("count", len(addresses)),
		zap.Int("workers", cfg.Workers),
		zap.Bool("suggest", cfg.Suggest),
		zap.Bool("all", cfg.All),
	)

	v := emailsyntax.New().WithLogger(logger)
	if cfg.Suggest {
		v = v.WithDomain()
	}

	results, err := v.ValidateMany(ctx, addresses, emailsyntax.ConcurrencyOptions{
		Workers: cfg.Workers,
		All:     cfg.All,
	})
	if err != nil {
		logger.Error("validation aborted", zap.Error(err))
		return ExitUsage
	}

	if err := render(stdout, cfg.Format, results); err != nil {
		logger.Error("write results", zap.String("format", cfg.Format), zap.Error(err))
		return ExitUsage
	}

	invalid := 0
	for _, r := range results {
		if !r.Valid {
			invalid++
		}
	}
	logger.Info("validation finished", zap.Int("total", len(results)), zap.Int("invalid", invalid))

	if invalid > 0 {
		return ExitInvalid
	}
	return ExitValid
}

// readAddresses reads one address per line, skipping blank lines.
// Lines are not trimmed beyond their line ending.
func readAddresses(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}
	return out, nil
}

func render(w io.Writer, format string, results []emailsyntax.Result) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		return renderText(w, results)
	}
}

func renderText(w io.Writer, results []emailsyntax.Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		status := "VALID  "
		if !r.Valid {
			status = "INVALID"
		}
		line := fmt.Sprintf("%s %s", status, r.Email)
		if failed := r.FailedChecks(); len(failed) > 0 {
			details := make([]string, 0, len(failed))
			for _, c := range failed {
				details = append(details, fmt.Sprintf("[%s] %s", c.Level, c.Details))
			}
			line += " -- " + strings.Join(details, "; ")
		}
		if s := r.Suggestion(); s != "" {
			line += fmt.Sprintf(" (did you mean %s?)", suggestedAddress(r.Email, s))
		}
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// suggestedAddress swaps the domain of email for domain.
func suggestedAddress(email, domain string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return domain
	}
	return email[:at+1] + domain
}
