// Optional TOML configuration overrides for the BM25 parameters, the
// retrieval limit, the boolean-AND skip-set, and the evaluator's expected
// topic set (spec §4.G, §4.H, §4.J, §9 "encode as a configuration
// constant, do not bury in code"). No pack example wires go-toml into
// source (only its manifest appears, in Ayanrocks-mneme/go.mod); this
// follows the library's documented Unmarshal entry point directly.
package ctiscore

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config overrides the built-in constants. Zero-value fields mean "use
// the default"; LoadConfig fills in defaults for anything the file omits.
type Config struct {
	BM25 struct {
		K1 float64 `toml:"k1"`
		B  float64 `toml:"b"`
	} `toml:"bm25"`
	RetrievedResultsLimit int      `toml:"retrieved_results_limit"`
	BooleanSkipTopics     []string `toml:"boolean_skip_topics"`
	ExpectedTopics        []string `toml:"expected_topics"`
}

// DefaultConfig returns the built-in spec defaults (spec §4.G, §4.H,
// §4.J).
func DefaultConfig() Config {
	cfg := Config{RetrievedResultsLimit: RetrievedResultsLimit}
	cfg.BM25.K1 = bm25K1
	cfg.BM25.B = bm25B
	for topic := range BooleanSkipTopics {
		cfg.BooleanSkipTopics = append(cfg.BooleanSkipTopics, topic)
	}
	cfg.ExpectedTopics = append(cfg.ExpectedTopics, ExpectedTopics...)
	return cfg
}

// LoadConfig reads an optional TOML override file at path. A missing file
// is not an error: LoadConfig returns DefaultConfig() unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, err
	}

	overrides := Config{}
	if err := toml.Unmarshal(data, &overrides); err != nil {
		return Config{}, err
	}

	if overrides.BM25.K1 != 0 {
		cfg.BM25.K1 = overrides.BM25.K1
	}
	if overrides.BM25.B != 0 {
		cfg.BM25.B = overrides.BM25.B
	}
	if overrides.RetrievedResultsLimit != 0 {
		cfg.RetrievedResultsLimit = overrides.RetrievedResultsLimit
	}
	if len(overrides.BooleanSkipTopics) > 0 {
		cfg.BooleanSkipTopics = overrides.BooleanSkipTopics
	}
	if len(overrides.ExpectedTopics) > 0 {
		cfg.ExpectedTopics = overrides.ExpectedTopics
	}
	return cfg, nil
}
