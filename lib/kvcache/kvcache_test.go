package kvcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKeyDerivation(t *testing.T) {
	a := Key("search_player", "ichiro")
	b := Key("search_player", "ichiro")
	c := Key("search_player", "matsui")
	d := Key("player_stats", "ichiro")

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.NotEqual(t, a, d)
	// args must be position sensitive
	require.NotEqual(t, Key("op", "a", "b"), Key("op", "b", "a"))
}

func TestSetGetRoundTrip(t *testing.T) {
	cache, err := OpenInMemory(time.Minute)
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	key := Key("teams", "2024")

	var missed []string
	require.ErrorIs(t, cache.Get(ctx, key, &missed), ErrMiss)

	require.NoError(t, cache.Set(ctx, key, []string{"giants", "tigers"}))

	var got []string
	require.NoError(t, cache.Get(ctx, key, &got))
	require.Equal(t, []string{"giants", "tigers"}, got)
}

func TestExpiredEntryIsAMiss(t *testing.T) {
	cache, err := OpenInMemory(-time.Second)
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	key := Key("standings", "central", "2024")
	require.NoError(t, cache.Set(ctx, key, "row"))

	var got string
	require.ErrorIs(t, cache.Get(ctx, key, &got), ErrMiss)
	// and it stays gone after the lazy eviction
	require.ErrorIs(t, cache.Get(ctx, key, &got), ErrMiss)
}
