package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordchain/pkg/errors"
	wcio "github.com/matzehuels/wordchain/pkg/io"
	"github.com/matzehuels/wordchain/pkg/pipeline"
)

// graphOpts holds options for the graph command.
type graphOpts struct {
	format   string
	output   string
	mode     string
	degrees  bool
	annotate bool
	noCache  bool
}

// graphCommand creates the command that draws the letter graph of a word file.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{}

	cmd := &cobra.Command{
		Use:   "graph <file>",
		Short: "Draw the letter graph of a word file",
		Long: `Draw the letter graph of a word file.

Every letter becomes a node and every word an edge from its first to its last
letter. Letters that can only start or end an open chain are drawn with a
double outline. With --annotate edges are numbered by their position in the
chain for --mode when one exists.`,
		Example: `  wordchain graph words.txt
  wordchain graph words.txt -f dot -o - --degrees
  wordchain graph words.txt --annotate --mode path`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", pipeline.FormatSVG, "output format: svg or dot")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (- for stdout)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "mode used by --annotate (default from config)")
	cmd.Flags().BoolVar(&opts.degrees, "degrees", false, "show in/out degrees on nodes")
	cmd.Flags().BoolVar(&opts.annotate, "annotate", false, "number edges by chain position")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, input string, opts graphOpts) error {
	ctx := cmd.Context()

	if err := pipeline.ValidateFormat(opts.format); err != nil {
		return err
	}
	if opts.mode == "" {
		opts.mode = c.defaultMode()
	}

	words, err := wcio.ImportWords(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Rendering graph...")
	spinner.Start()
	res, err := runner.Graph(ctx, pipeline.Options{
		Words:    words,
		Mode:     opts.mode,
		Format:   opts.format,
		Degrees:  opts.degrees,
		Annotate: opts.annotate,
		TTL:      c.cacheTTL(),
	})
	spinner.Stop()
	if err != nil {
		return err
	}

	dest := opts.output
	if dest == "" {
		dest = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if dest == "-" {
		_, err := c.out.Write(res.Data)
		return err
	}
	if err := writeFile(dest, res.Data); err != nil {
		return err
	}

	printSuccess("Rendered %s graph", strings.ToUpper(res.Format))
	printStats(res.Stats.WordCount, res.Stats.Duration, res.Cached)
	printFile(dest)
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
