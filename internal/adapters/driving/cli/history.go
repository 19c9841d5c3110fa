package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved revisions of the stored table",
	Long: `List saved revisions of the stored table value, newest first.

Revision history is only recorded by the sqlite backend.`,
	RunE: runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [revision-id]",
	Short: "Print the stored value at a specific revision",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "maximum number of revisions (0 = all)")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if revisionStore == nil {
		return errors.New("revision history requires the sqlite backend")
	}

	revisions, err := revisionStore.ListRevisions(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing revisions: %w", err)
	}

	if len(revisions) == 0 {
		cmd.Println("No revisions recorded.")
		return nil
	}

	if historyLimit > 0 && len(revisions) > historyLimit {
		revisions = revisions[:historyLimit]
	}

	for i := range revisions {
		cmd.Printf("%s  %s\n", revisions[i].SavedAt.Format(time.RFC3339), revisions[i].ID)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if revisionStore == nil {
		return errors.New("revision history requires the sqlite backend")
	}

	revision, err := revisionStore.GetRevision(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("getting revision: %w", err)
	}

	cmd.Println(revision.Text)
	return nil
}
