package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordchain/pkg/chain"
	"github.com/matzehuels/wordchain/pkg/errors"
	wcio "github.com/matzehuels/wordchain/pkg/io"
	"github.com/matzehuels/wordchain/pkg/pipeline"
)

// Output formats for the chain command.
const (
	outputText = "text"
	outputJSON = "json"
)

// chainOpts holds options for the chain command.
type chainOpts struct {
	mode    string
	output  string
	format  string
	noCache bool
	refresh bool
	pick    bool
}

// chainCommand creates the chain command.
func (c *CLI) chainCommand() *cobra.Command {
	opts := chainOpts{}

	cmd := &cobra.Command{
		Use:   "chain <file>",
		Short: "Arrange the words of a file into a chain",
		Long: `Arrange the words of a file into a chain.

Words are separated by any whitespace. The chain is written one word per line
to <dir>/<name>-<mode><ext> next to the input unless -o is given; use -o - for
stdout. When the words cannot be chained an empty output is written and the
command still succeeds.`,
		Example: `  wordchain chain words.txt
  wordchain chain words.txt --mode path -o -
  wordchain chain words.txt --format json -o result.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runChain(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "chaining mode: circuit or path (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (- for stdout)")
	cmd.Flags().StringVar(&opts.format, "format", outputText, "output format: text or json")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even if cached")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "choose the mode interactively")

	return cmd
}

func (c *CLI) runChain(cmd *cobra.Command, input string, opts chainOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if opts.format != outputText && opts.format != outputJSON {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format %q: must be %s or %s", opts.format, outputText, outputJSON)
	}

	modeName := opts.mode
	if opts.pick {
		picked, err := pickMode(ctx)
		if err != nil {
			return err
		}
		if picked == "" {
			printInfo("No mode selected")
			return nil
		}
		modeName = string(picked)
	}
	if modeName == "" {
		modeName = c.defaultMode()
	}
	mode, err := chain.ParseMode(modeName)
	if err != nil {
		return err
	}

	words, err := wcio.ImportWords(input)
	if err != nil {
		return err
	}
	logger.Debug("read words", "file", input, "count", len(words))

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	res, err := runner.Execute(ctx, pipeline.Options{
		Words:   words,
		Mode:    string(mode),
		Refresh: opts.refresh,
		TTL:     c.cacheTTL(),
	})
	if err != nil && !errors.IsUnchainable(err) {
		return err
	}

	var out []string
	if res != nil {
		out = res.Chain
		prog.done(fmt.Sprintf("Chained %d words", len(out)))
	}

	dest := opts.output
	if dest == "" {
		dest = defaultOutput(input, string(mode), opts.format)
	}
	if werr := c.writeChain(dest, opts.format, string(mode), out, err); werr != nil {
		return werr
	}

	if err != nil {
		printWarning("%s", errors.UserMessage(err))
		printDetail("No chain exists; wrote an empty result")
	} else {
		printSuccess("Chained %d words (%s)", len(out), mode)
		printStats(res.Stats.WordCount, res.Stats.Duration, res.Cached)
	}
	if dest != "-" {
		printFile(dest)
		if err == nil {
			printNextStep("Check it", "wordchain verify "+dest+circularFlag(mode))
		}
	}
	return nil
}

// writeChain writes the chain (or an empty result when chainErr is set) to
// dest, or to the command's output for "-".
func (c *CLI) writeChain(dest, format, mode string, words []string, chainErr error) error {
	write := func(w io.Writer) error {
		if format == outputJSON {
			return wcio.WriteResult(wcio.NewResult(mode, words, chainErr), w)
		}
		return wcio.WriteWords(words, w)
	}

	switch {
	case dest == "-":
		return write(c.out)
	case format == outputText:
		if err := wcio.ExportWords(words, dest); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", dest)
		}
		return nil
	}

	f, err := os.Create(dest)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dest)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// defaultOutput names the file a chain of input is written to. JSON results
// swap the input's extension for ".json".
func defaultOutput(input, mode, format string) string {
	if format == outputJSON {
		input = strings.TrimSuffix(input, filepath.Ext(input)) + ".json"
	}
	return wcio.OutputPath(input, mode)
}

func circularFlag(m chain.Mode) string {
	if m == chain.ModeCircuit {
		return " --circular"
	}
	return ""
}
