package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/consulthub/internal/app/bootstrap"
	"github.com/dalemusser/consulthub/internal/app/store/catalog"
	"github.com/dalemusser/consulthub/internal/app/system/audit"
	"github.com/gorilla/securecookie"
	"github.com/spf13/cobra"
)

// errAuditFailed makes the command exit non-zero after the report prints.
var errAuditFailed = errors.New("audit reported failures")

func newAuditCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Check routes, mappings, data integrity, filtering and the form",
		Long: `audit builds the web router over the catalog and runs every
consistency check against it. It exits non-zero when any check fails.
Warnings do not fail the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			reader, closeFn, err := c.openCatalog(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			rep, err := runAudit(ctx, c, reader, time.Now())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if done, err := writeData(out, c.format, rep); done {
				if err != nil {
					return err
				}
			} else if err := writeReport(cmd, c, rep); err != nil {
				return err
			}
			if !rep.AllPassed() {
				return errAuditFailed
			}
			return nil
		},
	}
}

// runAudit builds the same router the server uses, with throwaway keys.
func runAudit(ctx context.Context, c *cli, reader catalog.Reader, now time.Time) (audit.Report, error) {
	cfg := bootstrap.AppConfig{
		StoreBackend:   catalog.BackendMemory,
		SessionKey:     hex.EncodeToString(securecookie.GenerateRandomKey(32)),
		SessionName:    "consulthub-session",
		CSRFKey:        hex.EncodeToString(securecookie.GenerateRandomKey(32)),
		UploadMaxMB:    10,
		EndingSoonDays: 2,
	}
	deps := bootstrap.DBDeps{Backend: catalog.BackendMemory, Catalog: reader}
	router, err := bootstrap.Router(cfg, deps, false, c.logger)
	if err != nil {
		return audit.Report{}, fmt.Errorf("build router: %w", err)
	}
	return audit.Run(ctx, reader, router, now)
}

func writeReport(cmd *cobra.Command, c *cli, rep audit.Report) error {
	out := cmd.OutOrStdout()
	s := newStyles(out, c.color)
	for _, cat := range rep.Categories {
		fmt.Fprintf(out, "%s  %s\n", s.title(cat.Name),
			s.muted(fmt.Sprintf("%d pass, %d fail, %d warning", cat.Pass, cat.Fail, cat.Warning)))
		for _, res := range cat.Results {
			line := fmt.Sprintf("  %-7s %s", s.status(string(res.Status)), res.Description)
			if res.Details != "" {
				line += "  " + s.muted(res.Details)
			}
			fmt.Fprintln(out, line)
		}
		fmt.Fprintln(out)
	}
	_, err := fmt.Fprintf(out, "%d checks: %d passed, %d failed, %d warnings (%d%% success)\n",
		rep.Total, rep.Pass, rep.Fail, rep.Warning, rep.SuccessRate)
	return err
}
