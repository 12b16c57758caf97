package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rtiscareno/ctiscore"
)

var booleanCmd = &cobra.Command{
	Use:   "boolean <index_dir> <topics.json> <output.txt>",
	Short: "Run boolean-AND retrieval over a topic set and write a TREC run file",
	Args:  cobra.ExactArgs(3),
	RunE:  runBoolean,
}

func runBoolean(cmd *cobra.Command, args []string) error {
	indexDir, topicsPath, outputPath := args[0], args[1], args[2]

	artifacts, err := ctiscore.LoadIndexArtifacts(indexDir)
	if err != nil {
		return err
	}
	cfg, err := ctiscore.LoadConfig(configPath)
	if err != nil {
		return err
	}

	topicsFile, err := os.Open(topicsPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ctiscore.ErrMissingInput, topicsPath, err)
	}
	defer topicsFile.Close()

	var topics map[string]string
	if err := json.NewDecoder(topicsFile).Decode(&topics); err != nil {
		return fmt.Errorf("%w: %s: %v", ctiscore.ErrInvalidArguments, topicsPath, err)
	}

	if _, err := os.Stat(outputPath); err == nil {
		return fmt.Errorf("%w: %s", ctiscore.ErrOutputConflict, outputPath)
	}

	topicOrder := ctiscore.SortedTopicIDs(topics)
	results := ctiscore.RunBooleanAND(topicOrder, topics, artifacts.Lexicon, artifacts.Index, artifacts.Registry, cfg.BooleanSkipTopics)

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("ctiscore: create %s: %w", outputPath, err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	for _, r := range results {
		fmt.Fprintf(w, "%s QO %s %d %d %s\n", r.TopicID, r.Docno, r.Rank, r.Score, ctiscore.BooleanRunTag)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	log.Info().Int("results", len(results)).Str("output", outputPath).Msg("boolean-AND run written")
	return nil
}
