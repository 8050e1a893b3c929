package filter

import (
	"strings"

	"github.com/kbukum/logkit/core"
	"github.com/kbukum/logkit/errors"
)

// KeywordFilter admits records whose message contains any of its
// keywords. Matching is case-sensitive. With no keywords the filter
// admits nothing.
type KeywordFilter struct {
	keywords []string
}

// NewKeywordFilter creates a KeywordFilter from a list of keywords.
func NewKeywordFilter(keywords ...string) *KeywordFilter {
	return &KeywordFilter{keywords: append([]string(nil), keywords...)}
}

// ShouldLog reports whether the record's message contains any keyword.
func (f *KeywordFilter) ShouldLog(record *core.LogRecord) bool {
	for _, keyword := range f.keywords {
		if strings.Contains(record.Message, keyword) {
			return true
		}
	}
	return false
}

// Keywords returns a copy of the configured keywords.
func (f *KeywordFilter) Keywords() []string {
	return append([]string(nil), f.keywords...)
}

// Config returns the filter's configuration map.
func (f *KeywordFilter) Config() map[string]any {
	return map[string]any{
		"type":     TypeKeyword,
		"keywords": f.Keywords(),
	}
}

// keywordConfig is the decoded shape of a KeywordFilter config map.
// A single string is also accepted and normalized to a singleton list.
type keywordConfig struct {
	Keywords []string `mapstructure:"keywords"`
}

func keywordFromConfig(data map[string]any) (*KeywordFilter, error) {
	if raw, ok := data["keywords"].(string); ok {
		data = map[string]any{"type": TypeKeyword, "keywords": []string{raw}}
	}
	if raw, ok := data["keywords"].([]any); ok {
		for _, item := range raw {
			if _, ok := item.(string); !ok {
				return nil, errors.InvalidInput("all keywords must be strings")
			}
		}
	}
	var cfg keywordConfig
	if err := decode(data, &cfg); err != nil {
		return nil, err
	}
	return NewKeywordFilter(cfg.Keywords...), nil
}
