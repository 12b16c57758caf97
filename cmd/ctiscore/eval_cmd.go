package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/rtiscareno/ctiscore"
)

var evalCmd = &cobra.Command{
	Use:   "eval <qrels> <run>",
	Short: "Score a TREC run file against qrels and report AP/P@10/NDCG@10/NDCG@1000",
	Args:  cobra.ExactArgs(2),
	RunE:  runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	qrelsPath, runPath := args[0], args[1]

	qrelsFile, err := os.Open(qrelsPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ctiscore.ErrMissingInput, qrelsPath, err)
	}
	defer qrelsFile.Close()
	qrels, err := ctiscore.ParseQrels(qrelsFile)
	if err != nil {
		return err
	}

	runFile, err := os.Open(runPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ctiscore.ErrMissingInput, runPath, err)
	}
	defer runFile.Close()
	results, err := ctiscore.ParseRunFile(runFile)
	if err != nil {
		return err
	}

	cfg, err := ctiscore.LoadConfig(configPath)
	if err != nil {
		return err
	}

	perTopic, mean := ctiscore.EvaluateRun(results, qrels, cfg.ExpectedTopics)

	resultsPath := strings.TrimSuffix(filepath.Base(runPath), filepath.Ext(runPath)) + "_results.txt"
	if err := writeTopicResults(resultsPath, perTopic); err != nil {
		return err
	}

	headerFmt := color.New(color.FgGreen, color.Bold).SprintfFunc()
	tbl := table.New("Metric", "Value").WithHeaderFormatter(headerFmt)
	tbl.AddRow("MAP", fmt.Sprintf("%.3f", mean.MAP))
	tbl.AddRow("Mean P@10", fmt.Sprintf("%.3f", mean.MeanP10))
	tbl.AddRow("Mean NDCG@10", fmt.Sprintf("%.3f", mean.MeanNDCG10))
	tbl.AddRow("Mean NDCG@1000", fmt.Sprintf("%.3f", mean.MeanNDCG1000))
	tbl.Print()

	return nil
}

func writeTopicResults(path string, perTopic map[string]ctiscore.TopicMetrics) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ctiscore: create %s: %w", path, err)
	}
	defer f.Close()

	topics := make([]string, 0, len(perTopic))
	for topic := range perTopic {
		topics = append(topics, topic)
	}
	sort.Strings(topics)

	w := bufio.NewWriter(f)
	for _, topic := range topics {
		m := perTopic[topic]
		fmt.Fprintf(w, "%s AP=%.3f P10=%.3f NDCG10=%.3f NDCG1000=%.3f\n", topic, m.AP, m.P10, m.NDCG10, m.NDCG1000)
	}
	return w.Flush()
}
