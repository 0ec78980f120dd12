package npb

import "context"

// Provider is the uniform access surface over one data source. Every method
// returns canonical types only; a nil season means "current" for live sources
// and "all" where the operation is a listing.
//
// Contract:
//   - A source that answered but has no matching record returns ErrNotFound
//     (or an empty slice for listing operations), never a transport error.
//   - Failures to reach or read the source are *TransportError.
//   - Operations the source cannot structurally serve return ErrUnsupported.
type Provider interface {
	// Name identifies the source; it tags every record the provider emits.
	Name() string

	// SearchPlayer finds players whose name matches the query. An empty
	// result is (nil, nil), not an error.
	SearchPlayer(ctx context.Context, name string) ([]Player, error)

	// PlayerStats returns the stat set for a player id native to this
	// provider. season == nil requests all seasons plus a career aggregate.
	PlayerStats(ctx context.Context, playerID string, season *int, statsType StatsType) (*PlayerStats, error)

	// Teams lists the league's teams for the given season (nil = current).
	Teams(ctx context.Context, season *int) ([]Team, error)

	// TeamRoster lists the players on a team for the given season.
	TeamRoster(ctx context.Context, teamID string, season *int) ([]Player, error)

	// Standings returns the standings table, optionally restricted to one
	// league, for the given season.
	Standings(ctx context.Context, league *League, season *int) ([]Standing, error)

	// HealthCheck reports whether the backing source is reachable; nil
	// means healthy.
	HealthCheck(ctx context.Context) error
}
