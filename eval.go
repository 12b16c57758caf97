// TREC run-file parsing and IR metric computation (spec §4.J). No direct
// teacher equivalent exists (Zeeeepa-blaze has no evaluation component);
// this follows the original implementation's eval.py metric definitions,
// expressed with this repo's sentinel-error and plain-struct conventions.
package ctiscore

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ExpectedTopics is the fixed 45-topic evaluation set: 401-450 minus the
// boolean-AND skip-set (spec §4.J, §9).
var ExpectedTopics = func() []string {
	var topics []string
	for n := 401; n <= 450; n++ {
		id := strconv.Itoa(n)
		if BooleanSkipTopics[id] {
			continue
		}
		topics = append(topics, id)
	}
	return topics
}()

// RunResult is one parsed line of a TREC run file.
type RunResult struct {
	TopicID string
	Docno   string
	Rank    int
	Score   float64
	RunTag  string
}

// ParseRunFile parses a TREC run file: 6 space-separated columns per line,
// `topic Q0 docno rank score runtag`. Columns 4 and 5 (rank, score) must
// parse as numbers; ErrRunParse wraps the offending line otherwise.
func ParseRunFile(r io.Reader) ([]RunResult, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var results []RunResult
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		cols := strings.Fields(line)
		if len(cols) != 6 {
			return nil, fmt.Errorf("%w: line %d: expected 6 columns, got %d", ErrRunParse, lineNo, len(cols))
		}
		rankVal, err := strconv.ParseFloat(cols[3], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: rank %q: %v", ErrRunParse, lineNo, cols[3], err)
		}
		rank := int(rankVal)
		score, err := strconv.ParseFloat(cols[4], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: score %q: %v", ErrRunParse, lineNo, cols[4], err)
		}
		results = append(results, RunResult{
			TopicID: cols[0],
			Docno:   cols[2],
			Rank:    rank,
			Score:   score,
			RunTag:  cols[5],
		})
	}
	return results, sc.Err()
}

// Qrels is the relevance-judgment table: topic -> docno -> relevance
// (spec §3, §6). Relevance values may exceed 1.
type Qrels map[string]map[string]int

// ParseQrels parses a whitespace-separated qrels file: `topic iteration
// docno relevance` (only columns 0, 2, 3 are used, spec §6).
func ParseQrels(r io.Reader) (Qrels, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	q := make(Qrels)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		cols := strings.Fields(line)
		if len(cols) < 4 {
			continue
		}
		rel, err := strconv.Atoi(cols[3])
		if err != nil {
			continue
		}
		if q[cols[0]] == nil {
			q[cols[0]] = make(map[string]int)
		}
		q[cols[0]][cols[2]] = rel
	}
	return q, sc.Err()
}

// TopicMetrics holds one topic's AP, P@10, NDCG@10, and NDCG@1000.
type TopicMetrics struct {
	AP       float64
	P10      float64
	NDCG10   float64
	NDCG1000 float64
}

// relevantCount sums the relevance field across a topic's qrels, per spec
// §4.J's "values > 1 count as their magnitude".
func relevantCount(judgments map[string]int) int {
	r := 0
	for _, rel := range judgments {
		r += rel
	}
	return r
}

// EvaluateTopic computes AP/P@10/NDCG@10/NDCG@1000 for one topic's results
// against its qrels (spec §4.J). results need not already be sorted.
func EvaluateTopic(results []RunResult, judgments map[string]int) TopicMetrics {
	sorted := make([]RunResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].Docno > sorted[j].Docno
	})

	r := relevantCount(judgments)

	relAt := func(i int) int {
		if i < 0 || i >= len(sorted) {
			return 0
		}
		return judgments[sorted[i].Docno]
	}

	ap := 0.0
	relevantSoFar := 0
	for i := range sorted {
		if relAt(i) > 0 {
			relevantSoFar++
			ap += float64(relevantSoFar) / float64(i+1)
		}
	}
	if r > 0 {
		ap /= float64(r)
	} else {
		ap = 0
	}

	p10 := 0.0
	for i := 0; i < 10; i++ {
		if relAt(i) > 0 {
			p10++
		}
	}
	p10 /= 10

	ndcg10 := ndcgAt(sorted, judgments, r, 10)
	ndcg1000 := ndcgAt(sorted, judgments, r, 1000)

	return TopicMetrics{AP: ap, P10: p10, NDCG10: ndcg10, NDCG1000: ndcg1000}
}

// ndcgAt computes NDCG@k (spec §4.J): DCG over the result list capped at
// min(k, len(sorted)), normalized by IDCG over the ideal ranking capped at
// min(k, r).
func ndcgAt(sorted []RunResult, judgments map[string]int, r, k int) float64 {
	dcgLimit := k
	if len(sorted) < dcgLimit {
		dcgLimit = len(sorted)
	}
	dcg := 0.0
	for i := 1; i <= dcgLimit; i++ {
		rel := float64(judgments[sorted[i-1].Docno])
		dcg += rel / math.Log2(float64(i+1))
	}

	idcgLimit := k
	if r < idcgLimit {
		idcgLimit = r
	}
	idcg := 0.0
	for i := 1; i <= idcgLimit; i++ {
		idcg += 1 / math.Log2(float64(i+1))
	}

	if idcg == 0 {
		return 0
	}
	return dcg / idcg
}

// MeanMetrics is the corpus-wide average over every topic in
// ExpectedTopics, rounded to 3 decimal places half-away-from-zero (spec
// §4.J).
type MeanMetrics struct {
	MAP          float64
	MeanP10      float64
	MeanNDCG10   float64
	MeanNDCG1000 float64
}

// EvaluateRun groups results by topic, computes metrics for every topic in
// expectedTopics (cfg.ExpectedTopics), zero-filling those absent from the
// run, and returns both the per-topic and mean metrics. Run topics outside
// expectedTopics are not evaluated.
func EvaluateRun(results []RunResult, qrels Qrels, expectedTopics []string) (map[string]TopicMetrics, MeanMetrics) {
	byTopic := make(map[string][]RunResult)
	for _, res := range results {
		byTopic[res.TopicID] = append(byTopic[res.TopicID], res)
	}

	perTopic := make(map[string]TopicMetrics, len(expectedTopics))
	for _, topic := range expectedTopics {
		group, ok := byTopic[topic]
		if !ok {
			perTopic[topic] = TopicMetrics{}
			continue
		}
		perTopic[topic] = EvaluateTopic(group, qrels[topic])
	}

	var sumAP, sumP10, sumNDCG10, sumNDCG1000 float64
	for _, topic := range expectedTopics {
		m := perTopic[topic]
		sumAP += m.AP
		sumP10 += m.P10
		sumNDCG10 += m.NDCG10
		sumNDCG1000 += m.NDCG1000
	}
	n := float64(len(expectedTopics))

	mean := MeanMetrics{
		MAP:          roundTo3(sumAP / n),
		MeanP10:      roundTo3(sumP10 / n),
		MeanNDCG10:   roundTo3(sumNDCG10 / n),
		MeanNDCG1000: roundTo3(sumNDCG1000 / n),
	}
	return perTopic, mean
}

// roundTo3 rounds to 3 decimal places, half away from zero (not banker's
// rounding): 0.8335 becomes 0.834 and -0.8335 becomes -0.834.
func roundTo3(v float64) float64 {
	scaled := v * 1000
	if scaled >= 0 {
		return math.Floor(scaled+0.5) / 1000
	}
	return math.Ceil(scaled-0.5) / 1000
}
