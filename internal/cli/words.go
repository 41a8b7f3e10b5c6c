package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wordlattice/wordlattice/pkg/errors"
	"github.com/wordlattice/wordlattice/pkg/graph"
	"github.com/wordlattice/wordlattice/pkg/traverse"
)

// wordsCommand creates the words query command.
func (c *CLI) wordsCommand() *cobra.Command {
	var (
		nodeID       int
		prefixesOnly bool
		suffixesOnly bool
		maxResults   int
	)

	cmd := &cobra.Command{
		Use:   "words <lattice.json>",
		Short: "Reconstruct words through a node of a snapshot",
		Long: `Reconstruct words through a node of a snapshot.

Given a node id, the command enumerates every root-to-node prefix, every
node-to-END suffix, and their cross-product: all dictionary words whose
path passes through the node. With no --node, it enumerates the whole
dictionary from the root.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := graph.ReadGraphFile(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("node") {
				nodeID = snapshot.Root()
			}

			t := traverse.New(snapshot, traverse.Options{MaxResults: c.maxResults(maxResults)})

			node, ok := snapshot.NodeByID(nodeID)
			if !ok {
				return errors.New(errors.ErrCodeUnknownNode, "node %d is not in %s", nodeID, args[0])
			}
			printInfo("node %d %q (level %d)", node.ID, node.Label, node.Level)

			if prefixesOnly {
				return printStrings(t.Prefixes(nodeID))
			}
			if suffixesOnly {
				return printStrings(t.Suffixes(nodeID))
			}
			return printStrings(t.WordsThrough(nodeID))
		},
	}

	cmd.Flags().IntVarP(&nodeID, "node", "n", 0, "pivot node id (default: the root)")
	cmd.Flags().BoolVar(&prefixesOnly, "prefixes", false, "print root-to-node prefixes only")
	cmd.Flags().BoolVar(&suffixesOnly, "suffixes", false, "print node-to-END suffixes only")
	cmd.Flags().IntVar(&maxResults, "max-results", 0, "cap enumerated results (0: configured default)")

	return cmd
}

// maxResults resolves the result cap: flag, then config, then library default.
func (c *CLI) maxResults(flag int) int {
	if flag != 0 {
		return flag
	}
	return c.Config.MaxResults
}

func printStrings(items []string, err error) error {
	if err != nil {
		return err
	}
	for _, s := range items {
		fmt.Println(s)
	}
	printDetail("%d results", len(items))
	return nil
}
