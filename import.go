package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/envelope-zero/tracker/pkg/importer"
	"github.com/envelope-zero/tracker/pkg/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import expenses from a CSV file",
		Long: `Import expenses from a CSV file.

The file needs a header row with the columns Description, Amount, Category,
Date and optionally Image. Rows are validated and the owner's match rules fill
in missing categories. All valid rows are stored, invalid rows are reported.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().String("owner", "", "ID of the owner of the expenses")
	cmd.Flags().Bool("dry-run", false, "show what would be imported without saving")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	owner, _ := cmd.Flags().GetString("owner")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	ownerID, err := uuid.Parse(owner)
	if err != nil {
		return fmt.Errorf("the owner must be a valid UUID: %w", err)
	}

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := importer.ParseCSV(f)
	if err != nil {
		return err
	}

	err = connectDatabase()
	if err != nil {
		return err
	}

	rules, err := models.MatchRulesFor(models.DB, ownerID)
	if err != nil {
		return err
	}

	reconciliation := importer.Reconcile(importer.ApplyRules(rows, rules))
	printReconciliation(cmd.OutOrStdout(), reconciliation)

	if dryRun || len(reconciliation.Accepted) == 0 {
		return nil
	}

	fileName := filepath.Base(path)
	expenses, err := importer.Submit(models.DB, ownerID, fileName, reconciliation.Accepted)
	if err != nil {
		return err
	}

	log.Info().Str("owner", ownerID.String()).Str("file", fileName).Int("expenses", len(expenses)).Msg("import submitted")
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d expenses\n", len(expenses))
	return nil
}

func printReconciliation(w io.Writer, r importer.Reconciliation) {
	counts := r.Counts()
	fmt.Fprintf(w, "Accepted: %d\nRejected: %d\n", counts.Accepted, counts.Rejected)

	for i, issues := range r.Rejected {
		for _, issue := range issues {
			fmt.Fprintf(w, "  rejected row %d: %s\n", i+1, issue.Message)
		}
	}
}
