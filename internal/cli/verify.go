package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordchain/pkg/chain"
	"github.com/matzehuels/wordchain/pkg/errors"
	wcio "github.com/matzehuels/wordchain/pkg/io"
)

// verifyCommand creates the command that checks a chain file.
func (c *CLI) verifyCommand() *cobra.Command {
	var circular bool

	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Check that a chain file links every word to the next",
		Long: `Check that a chain file links every word to the next.

Text files hold one chain, words separated by whitespace. JSON files written by
"wordchain chain --format json" are also accepted; their mode decides whether
the chain must close unless --circular is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, resultCircular, err := readChain(args[0])
			if err != nil {
				return err
			}
			circular = circular || resultCircular

			if err := chain.Validate(words, circular); err != nil {
				return err
			}
			kind := "chain"
			if circular {
				kind = "circuit"
			}
			printSuccess("Valid %s of %d words", kind, len(words))
			return nil
		},
	}

	cmd.Flags().BoolVar(&circular, "circular", false, "also require the chain to close")
	return cmd
}

// readChain loads a chain from a text or JSON result file. The boolean
// reports whether a JSON result was produced in circuit mode.
func readChain(path string) ([]string, bool, error) {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		words, err := wcio.ImportWords(path)
		if errors.Is(err, errors.ErrCodeNoWords) {
			return []string{}, false, nil
		}
		return words, false, err
	}

	res, err := wcio.ImportResult(path)
	if err != nil {
		return nil, false, err
	}
	return res.Chain, res.Mode == string(chain.ModeCircuit), nil
}
