package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dalemusser/consulthub/internal/app/store/catalog"
	"github.com/dalemusser/consulthub/internal/app/system/timeouts"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// cli carries the flags shared by every subcommand.
type cli struct {
	format   string
	mongoURI string
	mongoDB  string
	verbose  bool
	color    bool

	logger *zap.Logger

	// openCatalog is replaced in tests.
	openCatalog func(ctx context.Context) (catalog.Reader, func(), error)
}

func newRootCmd(stdout, stderr io.Writer, opts ...func(*cli)) *cobra.Command {
	c := &cli{logger: zap.NewNop()}
	c.openCatalog = c.defaultCatalog
	for _, opt := range opts {
		opt(c)
	}

	root := &cobra.Command{
		Use:           "consultctl",
		Short:         "Inspect consultations, feedback and groups",
		Long:          `consultctl reads the consultation catalog and prints the same filtered lists the web dashboard shows.`,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch c.format {
			case formatText, formatJSON, formatYAML:
			default:
				return fmt.Errorf("unknown --format %q (want text, json or yaml)", c.format)
			}
			if c.verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				c.logger = l
			}
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&c.format, "format", "o", formatText, "output format: text, json or yaml")
	pf.StringVar(&c.mongoURI, "mongo-uri", "", "read from MongoDB instead of the built-in seed catalog")
	pf.StringVar(&c.mongoDB, "mongo-db", "consult_hub", "MongoDB database name")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "log to stderr")
	pf.BoolVar(&c.color, "color", true, "colour badges when the terminal supports it")

	root.AddCommand(
		newConsultationsCmd(c),
		newFeedbackCmd(c),
		newGroupsCmd(c),
		newShowCmd(c),
		newAuditCmd(c),
	)
	return root
}

// defaultCatalog opens the seed catalog, or MongoDB when --mongo-uri is set.
func (c *cli) defaultCatalog(ctx context.Context) (catalog.Reader, func(), error) {
	if c.mongoURI == "" {
		m, err := catalog.NewSeeded()
		if err != nil {
			return nil, nil, err
		}
		c.logger.Debug("using seed catalog")
		return m, func() {}, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(c.mongoURI))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	pingCtx, pingCancel := context.WithTimeout(ctx, timeouts.Ping())
	defer pingCancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}
	c.logger.Debug("using mongo catalog", zap.String("database", c.mongoDB))

	closeFn := func() {
		dctx, dcancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer dcancel()
		if err := client.Disconnect(dctx); err != nil {
			c.logger.Warn("mongo disconnect failed", zap.Error(err))
		}
	}
	return catalog.NewMongo(client.Database(c.mongoDB)), closeFn, nil
}
