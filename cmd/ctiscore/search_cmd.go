package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rtiscareno/ctiscore"
)

var searchCmd = &cobra.Command{
	Use:   "search <index_dir>",
	Short: "Interactively rank documents against a query with BM25",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	indexDir := args[0]
	artifacts, err := ctiscore.LoadIndexArtifacts(indexDir)
	if err != nil {
		return err
	}
	cfg, err := ctiscore.LoadConfig(configPath)
	if err != nil {
		return err
	}

	highlight := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Println("Enter a query, or an empty line to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			break
		}

		matches := ctiscore.RankBM25(query, artifacts.Lexicon, artifacts.Index, artifacts.Lengths, cfg)
		if len(matches) == 0 {
			fmt.Println("no results")
			continue
		}

		queryTokens := ctiscore.Tokenize(query, false)
		for i, m := range matches {
			docno, _ := artifacts.Registry.DocnoFor(m.DocID)
			stored, ok := artifacts.Store.Get(docno)
			if !ok {
				continue
			}
			fmt.Printf("%2d. %s  score=%.4f\n", i+1, highlight(docno), m.Score)
			for _, sentence := range ctiscore.Snippet(stored.RawDocument, queryTokens) {
				fmt.Printf("    %s\n", highlightTokens(sentence, queryTokens, highlight))
			}
		}
	}
	return scanner.Err()
}

func highlightTokens(sentence string, tokens []string, highlight func(a ...interface{}) string) string {
	for _, tok := range tokens {
		sentence = strings.ReplaceAll(sentence, tok, highlight(tok))
	}
	return sentence
}
