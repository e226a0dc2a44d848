package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"list-authors/authorlist"
	"list-authors/config"
	"list-authors/feeder"
	"list-authors/internal/logger"
	"list-authors/models"
	"list-authors/renderer"
	"list-authors/repositories"
	"list-authors/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app is what every subcommand works against once storage is open.
type app struct {
	cfg   config.AppConfig
	store *repositories.Store
}

// withApp loads config, opens storage and closes it after run.
func withApp(run func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(config.GetBasePath())
		if err != nil {
			return err
		}
		if dsn, _ := cmd.Flags().GetString("dsn"); dsn != "" {
			cfg.Storage.DSN = dsn
		}
		if driver, _ := cmd.Flags().GetString("driver"); driver != "" {
			cfg.Storage.Driver = driver
		}
		logger.InitFromEnv("LOG_LEVEL", cfg.Logging.Level)

		store, err := repositories.Open(cmd.Context(), cfg.Storage)
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = store.Close(ctx)
		}()
		return run(cmd, &app{cfg: cfg, store: store}, args)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "list-authors",
		Short:        "Author list renderer and its storage tooling",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("driver", "", "storage driver (sqlite, postgres, mongo); overrides config.yaml")
	root.PersistentFlags().String("dsn", "", "SQL data source name; overrides config.yaml")

	root.AddCommand(
		migrateCmd(),
		seedCmd(),
		importFeedCmd(),
		renderCmd(),
		countsCmd(),
	)
	return root
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply schema migrations (SQL) or ensure indexes (mongo)",
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			// repositories.Open 이 이미 마이그레이션/인덱스 생성을 수행한다
			logger.InfoWithFields("storage ready", logger.Fields{"driver": a.cfg.Storage.Driver})
			fmt.Fprintf(cmd.OutOrStdout(), "%s storage is up to date\n", a.cfg.Storage.Driver)
			return nil
		}),
	}
}

func seedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert authors and posts from a YAML fixtures file",
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			fixtures, err := services.LoadFixtures(f)
			if err != nil {
				return err
			}
			res, err := services.Seed(cmd.Context(), a.store, fixtures)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d authors, %d posts\n", res.Authors, res.Posts)
			return nil
		}),
	}
	cmd.Flags().StringVar(&file, "file", "fixtures/authors.yaml", "fixtures file")
	return cmd
}

func importFeedCmd() *cobra.Command {
	var in services.ImportFeedInput
	cmd := &cobra.Command{
		Use:   "import-feed",
		Short: "Import an RSS/Atom feed as published posts of an author",
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			importer := services.NewImportService(a.store, feeder.NewFetcher(nil))
			n, err := importer.ImportFeed(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d posts for %s\n", n, in.AuthorSlug)
			return nil
		}),
	}
	cmd.Flags().StringVar(&in.AuthorSlug, "author", "", "author slug")
	cmd.Flags().StringVar(&in.FeedURL, "url", "", "feed URL")
	cmd.Flags().IntVar(&in.Limit, "limit", 10, "maximum number of items (0 = all)")
	_ = cmd.MarkFlagRequired("author")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}

type renderFlags struct {
	number        int
	order         string
	orderBy       string
	hideEmpty     bool
	showFeed      bool
	showPostCount bool
	viewerID      int64
	readPrivate   bool
	className     string
	anchor        string
	align         string
}

func (f renderFlags) attributes(cmd *cobra.Command) authorlist.Attributes {
	var attrs authorlist.Attributes
	flags := cmd.Flags()
	if flags.Changed("number") {
		attrs.Number = &f.number
	}
	if flags.Changed("order") {
		attrs.Order = &f.order
	}
	if flags.Changed("orderby") {
		attrs.OrderBy = &f.orderBy
	}
	if flags.Changed("hide-empty") {
		attrs.HideEmpty = &f.hideEmpty
	}
	if flags.Changed("show-feed") {
		attrs.ShowFeed = &f.showFeed
	}
	if flags.Changed("show-post-count") {
		attrs.ShowPostCount = &f.showPostCount
	}
	return attrs
}

func renderCmd() *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the author list HTML to stdout",
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			svc := services.NewAuthorListService(a.store, a.cfg.Site, nil)
			out, err := svc.Render(cmd.Context(), services.RenderInput{
				Attributes: f.attributes(cmd),
				Block:      renderer.BlockContext{ClassName: f.className, Anchor: f.anchor, Align: f.align},
				Viewer:     models.Viewer{ID: f.viewerID, CanReadPrivate: f.readPrivate},
			})
			if err != nil {
				return err
			}
			if out != "" {
				_, err = io.WriteString(cmd.OutOrStdout(), out+"\n")
			}
			return err
		}),
	}
	d := authorlist.DefaultConfiguration()
	flags := cmd.Flags()
	flags.IntVar(&f.number, "number", d.Count, "number of authors (1-100)")
	flags.StringVar(&f.order, "order", d.SortDirection, "asc or desc")
	flags.StringVar(&f.orderBy, "orderby", d.SortField, "name, slug, email, id or registered_date")
	flags.BoolVar(&f.hideEmpty, "hide-empty", d.HideAuthorsWithoutPosts, "hide authors without posts")
	flags.BoolVar(&f.showFeed, "show-feed", d.ShowFeedLink, "show feed links")
	flags.BoolVar(&f.showPostCount, "show-post-count", d.ShowPostCount, "show post counts")
	flags.Int64Var(&f.viewerID, "viewer-id", 0, "render as this user id")
	flags.BoolVar(&f.readPrivate, "read-private", false, "viewer can read private posts")
	flags.StringVar(&f.className, "class", "", "extra wrapper classes")
	flags.StringVar(&f.anchor, "anchor", "", "wrapper id")
	flags.StringVar(&f.align, "align", "", "block alignment (wide, full, ...)")
	return cmd
}

func countsCmd() *cobra.Command {
	var viewerID int64
	var readPrivate bool
	cmd := &cobra.Command{
		Use:   "counts",
		Short: "Print visible post counts per author",
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			svc := services.NewAuthorListService(a.store, a.cfg.Site, nil)
			counts, err := svc.Counts(cmd.Context(), models.Viewer{ID: viewerID, CanReadPrivate: readPrivate})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatCounts(counts))
			return nil
		}),
	}
	cmd.Flags().Int64Var(&viewerID, "viewer-id", 0, "count as this user id")
	cmd.Flags().BoolVar(&readPrivate, "read-private", false, "viewer can read private posts")
	return cmd
}

func formatCounts(counts authorlist.AuthorCountMap) string {
	var b strings.Builder
	for _, id := range counts.IDs() {
		b.WriteString(strconv.FormatInt(id, 10))
		b.WriteByte('\t')
		b.WriteString(strconv.Itoa(counts.Get(id)))
		b.WriteByte('\n')
	}
	return b.String()
}
