package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MasoudKargar/HAG/pkg/graph"
	"github.com/MasoudKargar/HAG/pkg/store"
)

// defaultMongoURI is used when neither --uri nor HAG_MONGO_URI is set.
const defaultMongoURI = "mongodb://localhost:27017"

// storeCommand creates the store command group for graph persistence.
func (c *CLI) storeCommand() *cobra.Command {
	var uri string

	cmd := &cobra.Command{
		Use:   "store",
		Short: "Persist graphs to a shared store",
		Long: `Persist graphs to a shared MongoDB store.

The connection string comes from --uri, the HAG_MONGO_URI environment
variable, or defaults to ` + defaultMongoURI + `.`,
	}

	cmd.PersistentFlags().StringVar(&uri, "uri", "", "MongoDB connection string")

	cmd.AddCommand(c.storeSaveCommand(&uri))
	cmd.AddCommand(c.storeLoadCommand(&uri))
	cmd.AddCommand(c.storeListCommand(&uri))
	cmd.AddCommand(c.storeRmCommand(&uri))

	return cmd
}

// openStore connects to the configured MongoDB store.
func openStore(ctx context.Context, uri string) (store.Store, error) {
	if uri == "" {
		uri = os.Getenv("HAG_MONGO_URI")
	}
	if uri == "" {
		uri = defaultMongoURI
	}
	return store.NewMongoStore(ctx, store.MongoConfig{URI: uri})
}

// storeSaveCommand creates the "store save" subcommand.
func (c *CLI) storeSaveCommand(uri *string) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "save [file]",
		Short: "Save a graph under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			g, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}

			st, err := openStore(ctx, *uri)
			if err != nil {
				return fmt.Errorf("connect store: %w", err)
			}
			defer st.Close(ctx)

			prog := newProgress(c.Logger)
			if err := st.Save(ctx, name, graph.FromHAG(g)); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Saved %q (%d vertices, %d edges)", name, g.VertexCount(), g.EdgeCount()))
			printSuccess("Saved %s", name)
			printNextStep("Load it back", fmt.Sprintf("hag store load %s -o graph.json", name))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "name to store under (default: input filename)")

	return cmd
}

// storeLoadCommand creates the "store load" subcommand.
func (c *CLI) storeLoadCommand(uri *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "load [name]",
		Short: "Load a stored graph as a JSON snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx, *uri)
			if err != nil {
				return fmt.Errorf("connect store: %w", err)
			}
			defer st.Close(ctx)

			doc, err := st.Load(ctx, args[0])
			if err != nil {
				return err
			}
			return writeGraph(graph.ToHAG(doc), output, c.Logger)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// storeListCommand creates the "store list" subcommand.
func (c *CLI) storeListCommand(uri *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx, *uri)
			if err != nil {
				return fmt.Errorf("connect store: %w", err)
			}
			defer st.Close(ctx)

			infos, err := st.List(ctx)
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				printInfo("Store is empty")
				return nil
			}
			for _, info := range infos {
				printKeyValue(info.Name, info.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

// storeRmCommand creates the "store rm" subcommand.
func (c *CLI) storeRmCommand(uri *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm [name]",
		Short: "Delete a stored graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := openStore(ctx, *uri)
			if err != nil {
				return fmt.Errorf("connect store: %w", err)
			}
			defer st.Close(ctx)

			if err := st.Delete(ctx, args[0]); err != nil {
				return err
			}
			printSuccess("Deleted %s", args[0])
			return nil
		},
	}
}
