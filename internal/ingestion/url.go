package ingestion

import (
	"context"
	"time"

	"github.com/mikael/cv-tailor/internal/fetch"
)

// browserTimeout bounds the headless-browser fallback for SPA job boards.
const browserTimeout = 45 * time.Second

// URLOptions configures posting retrieval from the web.
type URLOptions struct {
	// AllowBrowser enables the headless-browser fallback when the plain
	// HTTP fetch yields too little text.
	AllowBrowser bool
	Fetch        *fetch.Options
}

// FromURL fetches a job posting page, extracts the description text, and
// cleans it for requirement extraction. When the plain fetch returns a
// near-empty page and opts.AllowBrowser is set, the page is re-rendered in
// a headless browser.
func FromURL(ctx context.Context, url string, opts *URLOptions) (string, error) {
	if opts == nil {
		opts = &URLOptions{}
	}

	result, err := fetch.Posting(ctx, url, opts.Fetch)
	if err != nil {
		return "", err
	}

	text, err := fetch.ExtractPostingText(result.HTML)
	if err != nil {
		return "", &fetch.Error{URL: url, Message: "failed to extract posting text", Cause: err}
	}

	if fetch.ShouldUseBrowser(text) && opts.AllowBrowser {
		html, browserErr := fetch.RenderWithBrowser(ctx, url, browserTimeout)
		if browserErr == nil {
			if rendered, extractErr := fetch.ExtractPostingText(html); extractErr == nil && len(rendered) > len(text) {
				text = rendered
			}
		}
	}

	return CleanText(StripBoardNoise(text)), nil
}
