package cli

import (
	"net/url"

	"techiecaro/visedit/storage"

	"github.com/alecthomas/kong"
	"github.com/posener/complete"
	"github.com/willabides/kongplete"
)

// PathPredictor completes blob URLs. It always offers the scheme
// prompts of the registered storage backends, and once the user has
// typed something it asks the matching backend to list candidates.
type PathPredictor struct {
	prompts []string
}

// NewPathPredictor builds a predictor over every registered backend.
func NewPathPredictor() PathPredictor {
	return PathPredictor{prompts: storage.GetFileListerPrefixes()}
}

func (p PathPredictor) Predict(args complete.Args) []string {
	predictions := append([]string{}, p.prompts...)
	return append(predictions, p.listMatches(args.Last)...)
}

// listMatches asks the backend owning the typed prefix for candidate
// URLs. Completion runs inside the shell's prompt, so failures degrade
// to no suggestions rather than an error.
func (p PathPredictor) listMatches(pattern string) []string {
	if pattern == "" {
		return nil
	}

	prefixURL, err := url.Parse(pattern)
	if err != nil {
		return nil
	}

	lister := storage.GetFileLister(*prefixURL)

	var matches []string
	for _, match := range lister(*prefixURL) {
		matches = append(matches, match.String())
	}
	return matches
}

// AddCompletion adds shell completion to an existing Kong parser.
func AddCompletion(parser *kong.Kong) {
	kongplete.Complete(
		parser,
		kongplete.WithPredictor("path", NewPathPredictor()),
	)
}
