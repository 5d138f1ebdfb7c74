package checker_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jonesrussell/north-cloud/htmlcheck/internal/checker"
	"github.com/jonesrussell/north-cloud/htmlcheck/internal/checks"
	loggermocks "github.com/jonesrussell/north-cloud/htmlcheck/testutils/mocks/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// landingPageHTML carries the elements referenced by the checks used below.
const landingPageHTML = `<!DOCTYPE html>
<html>
<head><title>Landing</title></head>
<body>
  <div id="header"><a href="/">Home</a></div>
  <h1 class="headline">Welcome</h1>
  <form>
    <input type="text" name="firstname">
  </form>
  <ul class="nav"><li>One</li></ul>
</body>
</html>`

func TestCheck_SingleSelectorPresent(t *testing.T) {
	t.Parallel()

	result, err := checker.New().Check([]byte("<h1>hi</h1>"), checks.List{"h1"})
	require.NoError(t, err)

	present, ok := result.Get("h1")
	require.True(t, ok)
	assert.True(t, present)
	assert.Equal(t, 1, result.Len())
}

func TestCheck_MissingSelector(t *testing.T) {
	t.Parallel()

	result, err := checker.New().Check([]byte("<h1>hi</h1>"), checks.List{"h1", "h2"})
	require.NoError(t, err)

	assert.Equal(t, []checker.Entry{
		{Selector: "h1", Present: true},
		{Selector: "h2", Present: false},
	}, result.Entries())
}

func TestCheck_SelectorKinds(t *testing.T) {
	t.Parallel()

	list := checks.List{
		"#footer",
		"#header a",
		".headline",
		".sidebar",
		"form > input",
		"input[name=firstname]",
		"input[name=lastname]",
		"ul.nav li",
	}

	result, err := checker.New().Check([]byte(landingPageHTML), list)
	require.NoError(t, err)

	want := map[string]bool{
		"#footer":               false,
		"#header a":             true,
		".headline":             true,
		".sidebar":              false,
		"form > input":          true,
		"input[name=firstname]": true,
		"input[name=lastname]":  false,
		"ul.nav li":             true,
	}

	require.Equal(t, len(list), result.Len())
	for selector, expected := range want {
		present, ok := result.Get(selector)
		require.True(t, ok, "missing entry for %q", selector)
		assert.Equal(t, expected, present, "selector %q", selector)
	}
}

func TestCheck_PreservesListOrder(t *testing.T) {
	t.Parallel()

	list := checks.List{"#header a", ".nav", "h1", "title"}

	result, err := checker.New().Check([]byte(landingPageHTML), list)
	require.NoError(t, err)

	selectors := make([]string, 0, result.Len())
	for _, e := range result.Entries() {
		selectors = append(selectors, e.Selector)
	}
	assert.Equal(t, []string(list), selectors)
}

func TestCheck_DuplicateSelectorsCollapse(t *testing.T) {
	t.Parallel()

	result, err := checker.New().Check([]byte(landingPageHTML), checks.List{"h1", "h1", "h2"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Len())
}

func TestCheck_EmptyList(t *testing.T) {
	t.Parallel()

	result, err := checker.New().Check([]byte(landingPageHTML), checks.List{})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Len())

	out, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(out))
}

func TestCheck_BlankSelectorMatchesNothing(t *testing.T) {
	t.Parallel()

	result, err := checker.New().Check([]byte(landingPageHTML), checks.List{"", "  "})
	require.NoError(t, err)

	for _, e := range result.Entries() {
		assert.False(t, e.Present)
	}
}

func TestCheck_InvalidSelectorIsFatalByDefault(t *testing.T) {
	t.Parallel()

	_, err := checker.New().Check([]byte(landingPageHTML), checks.List{"h1", "h1["})
	require.Error(t, err)
	require.ErrorIs(t, err, checker.ErrInvalidSelector)

	var selErr *checker.InvalidSelectorError
	require.True(t, errors.As(err, &selErr))
	assert.Equal(t, "h1[", selErr.Selector)
	assert.Contains(t, err.Error(), `"h1["`)
}

func TestCheck_InvalidSelectorSkipped(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockLogger := loggermocks.NewMockInterface(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().
		Warn("Skipping invalid selector", "selector", "h1[", "error", gomock.Any()).
		Times(1)

	c := checker.New(checker.WithSkipInvalid(true), checker.WithLogger(mockLogger))

	result, err := c.Check([]byte(landingPageHTML), checks.List{"h1", "h1["})
	require.NoError(t, err)

	assert.Equal(t, []checker.Entry{
		{Selector: "h1", Present: true},
		{Selector: "h1[", Present: false},
	}, result.Entries())
}

func TestCheck_Idempotent(t *testing.T) {
	t.Parallel()

	list := checks.List{"#header a", "h1", "h2", "input[name=firstname]"}
	c := checker.New()

	first, err := c.Check([]byte(landingPageHTML), list)
	require.NoError(t, err)
	second, err := c.Check([]byte(landingPageHTML), list)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
