package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMainText_PrefersMainElement(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs | About</nav>
		<main><p>Requirements: python, docker</p></main>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractMainText(html)

	require.NoError(t, err)
	assert.Contains(t, text, "Requirements: python, docker")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "Home | Jobs")
}

func TestExtractMainText_JobDescriptionClass(t *testing.T) {
	html := `<html><body>
		<div class="sidebar">Related postings</div>
		<div class="job-description">We need kubernetes experience.</div>
	</body></html>`

	text, err := ExtractMainText(html)

	require.NoError(t, err)
	assert.Equal(t, "We need kubernetes experience.", text)
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Just a plain page.</p></body></html>`

	text, err := ExtractMainText(html)

	require.NoError(t, err)
	assert.Equal(t, "Just a plain page.", text)
}

func TestExtractMainText_RemovesScripts(t *testing.T) {
	html := `<html><body><script>alert("x")</script><p>Visible text</p></body></html>`

	text, err := ExtractMainText(html)

	require.NoError(t, err)
	assert.Equal(t, "Visible text", text)
}

func TestCleanWhitespace_CapsBlankRuns(t *testing.T) {
	cleaned := cleanWhitespace("Requirements:\n  python  \n\n\n\nAbout   us")

	assert.Equal(t, "Requirements:\npython\n\nAbout us", cleaned)
}

func TestJobDescription_FetchesAndExtracts(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><main>Requirements: python</main></body></html>`))
	}))
	defer ts.Close()

	text, err := JobDescription(context.Background(), ts.URL)

	require.NoError(t, err)
	assert.Equal(t, "Requirements: python", text)
}

func TestJobDescription_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := JobDescription(context.Background(), ts.URL)

	require.Error(t, err)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "unexpected status 404")
}

func TestJobDescription_InvalidURL(t *testing.T) {
	_, err := JobDescription(context.Background(), "not-a-url")

	require.Error(t, err)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "invalid URL", fetchErr.Message)
}
