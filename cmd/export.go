package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/woodmark/curatectl/curated"
)

var exportOutput string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full subscriber and unsubscriber lists as JSON",
	Long: `Walk every page of the subscriber and unsubscriber listings and write the
combined result as a single JSON document. The two listings are fetched
concurrently; each listing is still paged sequentially.`,
	RunE: runExport,
}

// subscriberExport is the document written by the export command.
type subscriberExport struct {
	Publication   string          `json:"publication"`
	ExportedAt    time.Time       `json:"exported_at"`
	Subscribers   []curated.Email `json:"subscribers"`
	Unsubscribers []curated.Email `json:"unsubscribers"`
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	p, err := scoped()
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(context.Background())

	var subscribers, unsubscribers []curated.Email
	g.Go(func() error {
		var err error
		subscribers, err = p.AllSubscribers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		unsubscribers, err = p.AllUnsubscribers(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	logger.Info().
		Int("subscribers", len(subscribers)).
		Int("unsubscribers", len(unsubscribers)).
		Msg("Export complete")

	export := subscriberExport{
		Publication:   p.ID(),
		ExportedAt:    time.Now().UTC(),
		Subscribers:   subscribers,
		Unsubscribers: unsubscribers,
	}

	out := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(export)
}
