package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Top 10 Localities in Pune", "top-10-localities-in-pune"},
		{"  Why RERA matters!  ", "why-rera-matters"},
		{"Buy vs. Rent — 2025 Edition", "buy-vs-rent-2025-edition"},
		{"already-a-slug", "already-a-slug"},
		{"!!!", ""},
		{"", ""},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Slugify(c.in), "input %q", c.in)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	require.True(t, CheckPasswordHash("s3cret-pass", hash))
	require.False(t, CheckPasswordHash("wrong", hash))
}
