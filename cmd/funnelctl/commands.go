package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"search-funnel/domain/dto"
	"search-funnel/domain/repositories"
	"search-funnel/domain/services"
	"search-funnel/infrastructure/postgres"
)

const commandTimeout = 10 * time.Minute

var defaultCategories = []dto.CategoryRequest{
	{Name: "Finance", CodeRange: "100-199"},
	{Name: "Insurance", CodeRange: "200-299"},
	{Name: "Health", CodeRange: "300-399"},
	{Name: "Technology", CodeRange: "400-499"},
	{Name: "Travel", CodeRange: "500-599"},
	{Name: "Education", CodeRange: "600-699"},
	{Name: "Home & Garden", CodeRange: "700-799"},
	{Name: "Automotive", CodeRange: "800-899"},
}

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), commandTimeout)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openContainer()
			if err != nil {
				return err
			}
			defer c.Cleanup()

			if err := postgres.Migrate(c.DB); err != nil {
				return err
			}
			Success("Schema is up to date")
			return nil
		},
	}
}

func seedCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-categories",
		Short: "Insert the default categories, skipping ones that exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openContainer()
			if err != nil {
				return err
			}
			defer c.Cleanup()

			ctx, cancel := commandContext()
			defer cancel()

			Info("Seeding %d categories", len(defaultCategories))
			for i := range defaultCategories {
				req := defaultCategories[i]
				category, err := c.CategoryService.Create(ctx, &req)
				switch {
				case errors.Is(err, services.ErrSlugTaken):
					Muted("  %s already exists", req.Name)
				case err != nil:
					return fmt.Errorf("failed to create %s: %w", req.Name, err)
				default:
					Success("%s (%s) id=%d", category.Name, category.Slug, category.ID)
				}
			}
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <entity>",
		Short: "Write an entity as CSV",
		Long: "Write an entity as CSV to stdout or --output.\n\nEntities: " +
			joinEntities(services.ExportEntities),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openContainer()
			if err != nil {
				return err
			}
			defer c.Cleanup()

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			ctx, cancel := commandContext()
			defer cancel()

			rows, err := c.ExportService.Export(ctx, services.ExportEntity(args[0]), w)
			if err != nil {
				return err
			}
			if output != "" {
				Success("Wrote %d rows to %s", rows, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func joinEntities(entities []services.ExportEntity) string {
	names := make([]string, len(entities))
	for i, e := range entities {
		names[i] = string(e)
	}
	return strings.Join(names, ", ")
}

func printCascadeReport(report *repositories.CascadeReport) {
	Section("Deleted rows")
	Field("blogs", report.Blogs)
	Field("related searches", report.RelatedSearches)
	Field("web results", report.WebResults)
	Field("pre-landing configs", report.PreLandings)
	Field("analytics events", report.AnalyticsEvents)
	Field("email submissions", report.EmailSubmissions)
}

func deleteBlogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-blog <id>",
		Short: "Delete a blog and everything under it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid blog id: %w", err)
			}

			c, err := openContainer()
			if err != nil {
				return err
			}
			defer c.Cleanup()

			ctx, cancel := commandContext()
			defer cancel()

			report, err := c.BlogService.Delete(ctx, id)
			if err != nil {
				return err
			}
			printCascadeReport(report)
			return nil
		},
	}
}

func deleteSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-search <id>",
		Short: "Delete a related search with its results, pre-landing and events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid related search id: %w", err)
			}

			c, err := openContainer()
			if err != nil {
				return err
			}
			defer c.Cleanup()

			ctx, cancel := commandContext()
			defer cancel()

			report, err := c.RelatedSearchService.Delete(ctx, id)
			if err != nil {
				return err
			}
			printCascadeReport(report)
			return nil
		},
	}
}

func auditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Report content units without four distinct WR slots and orphaned rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openContainer()
			if err != nil {
				return err
			}
			defer c.Cleanup()

			ctx, cancel := commandContext()
			defer cancel()

			report, err := c.AuditService.Run(ctx)
			if err != nil {
				return err
			}

			Section("Content units")
			if len(report.Incomplete) == 0 {
				Success("Every blog has four related searches with WR 1-4")
			}
			for _, issue := range report.Incomplete {
				Warning("%s  %q searches=%d distinct_wr=%d invalid_wr=%d",
					issue.BlogID, issue.Title, issue.SearchCount, issue.DistinctWR, issue.OutOfRange)
			}

			Section("Orphaned rows")
			Field("related searches", report.Orphans.RelatedSearches)
			Field("web results", report.Orphans.WebResults)
			Field("pre-landing configs", report.Orphans.PreLandings)
			if report.Orphans.Total() == 0 {
				Success("No orphans")
			}
			return nil
		},
	}
}

func purgeEventsCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "purge-events",
		Short: "Delete analytics events older than --days",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 {
				return errors.New("--days must be at least 1")
			}

			c, err := openContainer()
			if err != nil {
				return err
			}
			defer c.Cleanup()

			ctx, cancel := commandContext()
			defer cancel()

			deleted, err := c.AnalyticsService.Cleanup(ctx, days)
			if err != nil {
				return err
			}
			Success("Deleted %d events older than %d days", deleted, days)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "age in days (required)")
	_ = cmd.MarkFlagRequired("days")
	return cmd
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Long:  "Print a bcrypt hash for ADMIN_PASSWORD_HASH. Without an argument the password is read from stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return err
				}
				password = strings.TrimRight(line, "\r\n")
			}
			if password == "" {
				return errors.New("password is empty")
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(hash))
			return nil
		},
	}
}
