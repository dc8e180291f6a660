package pipeline

import (
	"io"

	"github.com/matzehuels/tagcloud/pkg/tags"
)

// ParseTags reads words from r. Weighted input is a "word weight" list;
// otherwise r is free text and words are counted. Limit applies to both.
func ParseTags(r io.Reader, opts Options) ([]tags.Tag, error) {
	if opts.Weighted {
		ts, err := tags.ParseWeighted(r)
		if err != nil {
			return nil, err
		}
		if opts.Limit > 0 && len(ts) > opts.Limit {
			ts = ts[:opts.Limit]
		}
		return ts, nil
	}
	return tags.Count(r,
		tags.WithMinLength(opts.MinWordLength),
		tags.WithStopWords(opts.StopWords...),
		tags.WithLimit(opts.Limit),
	)
}
