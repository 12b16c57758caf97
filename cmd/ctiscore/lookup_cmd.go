// lookupCmd supplements the spec's four entry points with a direct
// document lookup, grounded on the original implementation's
// utils/get_doc.py: fetch one stored document by either its DocId or its
// docno.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rtiscareno/ctiscore"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <index_dir> <id|docno> <value>",
	Short: "Fetch one stored document by DocId or docno",
	Args:  cobra.ExactArgs(3),
	RunE:  runLookup,
}

func runLookup(cmd *cobra.Command, args []string) error {
	indexDir, kind, value := args[0], args[1], args[2]

	artifacts, err := ctiscore.LoadIndexArtifacts(indexDir)
	if err != nil {
		return err
	}

	var docno string
	switch kind {
	case "id":
		docID, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: id must be an integer, got %q", ctiscore.ErrInvalidArguments, value)
		}
		resolved, ok := artifacts.Registry.DocnoFor(docID)
		if !ok {
			fmt.Println("Document not found")
			return nil
		}
		docno = resolved
	case "docno":
		docno = value
	default:
		return fmt.Errorf("%w: kind must be \"id\" or \"docno\", got %q", ctiscore.ErrInvalidArguments, kind)
	}

	doc, ok := artifacts.Store.Get(docno)
	if !ok {
		fmt.Println("Document not found")
		return nil
	}

	fmt.Printf("docno: %s\n", doc.Docno)
	fmt.Printf("internal id: %d\n", doc.InternalID)
	fmt.Printf("date: %s\n", doc.HumanDate)
	fmt.Printf("headline: %s\n", doc.Headline)
	fmt.Println("raw document:")
	fmt.Println(doc.RawDocument)
	return nil
}
