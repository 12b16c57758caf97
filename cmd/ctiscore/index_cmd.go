package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rtiscareno/ctiscore"
)

var porterStem bool

var indexCmd = &cobra.Command{
	Use:   "index <source.gz> <dest_dir>",
	Short: "Build a lexicon, inverted index, and document store from a gzip-compressed SGML corpus",
	Args:  cobra.ExactArgs(2),
	RunE:  runIndex,
}

func init() {
	indexCmd.Flags().BoolVar(&porterStem, "stem", false, "apply Porter stemming during tokenization")
}

func runIndex(cmd *cobra.Command, args []string) error {
	source, dest := args[0], args[1]

	in, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ctiscore.ErrMissingInput, source, err)
	}
	defer in.Close()

	ix, err := ctiscore.NewIndexer(dest, porterStem, log.Logger)
	if err != nil {
		return err
	}

	if err := ix.IndexStream(in); err != nil {
		return err
	}
	if err := ix.Flush(); err != nil {
		return err
	}

	log.Info().Int("documents", ix.DocumentCount()).Msg("index built")
	return nil
}
