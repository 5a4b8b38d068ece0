package rhttp_test

import (
	"testing"

	"github.com/mvdk/rhttp"
	"github.com/stretchr/testify/require"
)

func TestReverserBuildsURLs(t *testing.T) {
	rev := rhttp.NewReverser()
	require.NoError(t, rev.Name("item", `/items/([0-9]+)`))
	require.NoError(t, rev.Name("static", `/about`))
	require.NoError(t, rev.Name("escaped", `/files/v1\.2/([a-z]+)`))

	loc, err := rev.Reverse("item", "42")
	require.NoError(t, err)
	require.Equal(t, "/items/42", loc)

	loc, err = rev.Reverse("static")
	require.NoError(t, err)
	require.Equal(t, "/about", loc)

	loc, err = rev.Reverse("escaped", "readme")
	require.NoError(t, err)
	require.Equal(t, "/files/v1.2/readme", loc)
}

func TestReverserValueCountMismatch(t *testing.T) {
	rev := rhttp.NewReverser()
	require.NoError(t, rev.Name("item", `/items/([0-9]+)`))

	_, err := rev.Reverse("item")
	require.ErrorContains(t, err, "more capture groups than values")

	_, err = rev.Reverse("item", "1", "2")
	require.ErrorContains(t, err, "1 capture group(s) but 2 value(s)")
}

func TestReverserRejectsUnreversiblePatterns(t *testing.T) {
	rev := rhttp.NewReverser()
	require.NoError(t, rev.Name("glob", `/files/.*`))

	_, err := rev.Reverse("glob")
	require.ErrorContains(t, err, "cannot reverse pattern")
}

func TestReverserDuplicateName(t *testing.T) {
	rev := rhttp.NewReverser()
	require.NoError(t, rev.Name("a", `/a`))
	require.ErrorContains(t, rev.Name("a", `/b`), "already exists")
}
