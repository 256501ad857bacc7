package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/ui/output"
	"go.trai.ch/ship/internal/ui/style"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the build targets of the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := c.app.Targets(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(profiles))
			for _, p := range profiles {
				bundle := p.Bundle
				if p.Packaging == domain.PackageNone {
					bundle = "-"
				}
				rows = append(rows, []string{p.Target.String(), p.OutputPath, bundle, p.Packaging.String()})
			}

			w := cmd.OutOrStdout()
			_, err = fmt.Fprintln(w, renderTable(w, []string{"TARGET", "OUTPUT", "BUNDLE", "PACKAGING"}, rows))
			return err
		},
	}
}

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active target and the last build of every target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := c.app.Status(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			r := newRenderer(w)

			active := r.NewStyle().Foreground(style.Slate).Render("none")
			if status.Active != "" {
				active = r.NewStyle().Bold(true).Foreground(style.Iris).Render(status.Active.String())
			}
			_, _ = fmt.Fprintf(w, "%s active target: %s\n", style.Dot, active)

			if len(status.Records) == 0 {
				_, err = fmt.Fprintf(w, "no builds recorded in %s\n", status.OutputRoot)
				return err
			}

			rows := make([][]string, 0, len(status.Records))
			for _, rec := range status.Records {
				bundle, size := "-", "-"
				if rec.ArchivePath != "" {
					bundle = rec.Bundle
					size = humanize.Bytes(uint64(rec.ArchiveSize)) //nolint:gosec // sizes are non-negative
				}
				rows = append(rows, []string{
					rec.Target.String(),
					rec.BuildName,
					bundle,
					size,
					humanize.Time(rec.Timestamp),
				})
			}

			_, err = fmt.Fprintln(w, renderTable(w, []string{"TARGET", "BUILD", "BUNDLE", "SIZE", "BUILT"}, rows))
			return err
		},
	}
}

func renderTable(w io.Writer, headers []string, rows [][]string) string {
	r := newRenderer(w)
	header := r.NewStyle().Bold(true).Foreground(style.Iris).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(style.Slate)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Headers(headers...).
		Rows(rows...).
		Render()
}

func newRenderer(w io.Writer) *lipgloss.Renderer {
	return lipgloss.NewRenderer(w, termenv.WithProfile(output.Profile(w)))
}
