package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostingFetchesHTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>posting</body></html>"))
	}))
	defer server.Close()

	result, err := Posting(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "posting")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestPostingCustomHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "custom-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "en", r.Header.Get("Accept-Language"))
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.UserAgent = "custom-agent"
	opts.Headers = map[string]string{"Accept-Language": "en"}

	_, err := Posting(context.Background(), server.URL, opts)
	require.NoError(t, err)
}

func TestPostingInvalidURL(t *testing.T) {
	_, err := Posting(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.True(t, errors.As(err, &fetchErr))
}

func TestPostingNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := Posting(context.Background(), server.URL, nil)
	require.Error(t, err)
	// The body still comes back for diagnostics.
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestExtractPostingTextUsesJobSelectors(t *testing.T) {
	html := `<html><body>
	  <nav>Home | Jobs | About</nav>
	  <div class="job-description"><p>Senior Go Engineer</p><p>Build services</p></div>
	  <footer>Copyright</footer>
	</body></html>`

	text, err := ExtractPostingText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "Build services")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractPostingTextFallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting text</p><script>ignore()</script></body></html>`

	text, err := ExtractPostingText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Plain posting text")
	assert.NotContains(t, text, "ignore()")
}

func TestExtractPostingTextStripsNoiseClasses(t *testing.T) {
	html := `<html><body>
	  <div class="cookie-banner">Accept cookies</div>
	  <main>The actual posting</main>
	</body></html>`

	text, err := ExtractPostingText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "The actual posting")
	assert.NotContains(t, text, "Accept cookies")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("short snippet"))
	assert.False(t, ShouldUseBrowser(strings.Repeat("long posting text ", 50)))
}
