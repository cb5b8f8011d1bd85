package wows

import (
	"context"
	"net/http"
)

// Client is a blocking World of Warships API client. Each call sends one GET
// request and waits for the response. A Client is safe for concurrent use as
// long as its transport is.
type Client struct {
	r *requester
}

// New creates a blocking client authenticated with applicationID. Unless
// WithHTTPClient is given, it uses its own *http.Client with DefaultTimeout.
func New(applicationID string, opts ...Option) *Client {
	return &Client{
		r: newRequester(applicationID, &http.Client{Timeout: DefaultTimeout}, opts),
	}
}

// Do sends req and returns the decoded response body.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	return c.r.do(ctx, req)
}

// SearchPlayers calls account/list. See the SearchPlayers request builder.
func (c *Client) SearchPlayers(ctx context.Context, region Region, search string, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, SearchPlayers(region, search, opts...))
}

// PlayerPersonalData calls account/info.
func (c *Client) PlayerPersonalData(ctx context.Context, region Region, accountIDs []int64, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, PlayerPersonalData(region, accountIDs, opts...))
}

// PlayerAchievements calls account/achievements.
func (c *Client) PlayerAchievements(ctx context.Context, region Region, accountIDs []int64, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, PlayerAchievements(region, accountIDs, opts...))
}

// PlayerStatisticsByDate calls account/statsbydate.
func (c *Client) PlayerStatisticsByDate(ctx context.Context, region Region, accountIDs []int64, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, PlayerStatisticsByDate(region, accountIDs, opts...))
}

// EncyclopediaInfo calls encyclopedia/info.
func (c *Client) EncyclopediaInfo(ctx context.Context, region Region, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, EncyclopediaInfo(region, opts...))
}

// Warships calls encyclopedia/ships.
func (c *Client) Warships(ctx context.Context, region Region, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, Warships(region, opts...))
}

// Achievements calls encyclopedia/achievements.
func (c *Client) Achievements(ctx context.Context, region Region, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, Achievements(region, opts...))
}

// ShipParameters calls encyclopedia/shipprofile.
func (c *Client) ShipParameters(ctx context.Context, region Region, shipID int64, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, ShipParameters(region, shipID, opts...))
}

// Modules calls encyclopedia/modules.
func (c *Client) Modules(ctx context.Context, region Region, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, Modules(region, opts...))
}

// ExteriorItems calls encyclopedia/exterior.
func (c *Client) ExteriorItems(ctx context.Context, region Region, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, ExteriorItems(region, opts...))
}

// Upgrades calls encyclopedia/upgrades.
func (c *Client) Upgrades(ctx context.Context, region Region, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, Upgrades(region, opts...))
}

// ServiceRecordLevels calls encyclopedia/accountlevels.
func (c *Client) ServiceRecordLevels(ctx context.Context, region Region, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, ServiceRecordLevels(region, opts...))
}

// Commanders calls encyclopedia/crews.
func (c *Client) Commanders(ctx context.Context, region Region, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, Commanders(region, opts...))
}

// CommanderSkills calls encyclopedia/crewskills.
func (c *Client) CommanderSkills(ctx context.Context, region Region, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, CommanderSkills(region, opts...))
}

// CommanderRanks calls encyclopedia/crewranks.
func (c *Client) CommanderRanks(ctx context.Context, region Region, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, CommanderRanks(region, opts...))
}

// BattleTypes calls encyclopedia/battletypes.
func (c *Client) BattleTypes(ctx context.Context, region Region, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, BattleTypes(region, opts...))
}

// PlayerShipStatistics calls ships/stats.
func (c *Client) PlayerShipStatistics(ctx context.Context, region Region, accountID int64, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, PlayerShipStatistics(region, accountID, opts...))
}

// RankedSeasons calls seasons/info.
func (c *Client) RankedSeasons(ctx context.Context, region Region, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, RankedSeasons(region, opts...))
}

// RankedShipStatistics calls seasons/shipstats.
func (c *Client) RankedShipStatistics(ctx context.Context, region Region, accountID int64, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, RankedShipStatistics(region, accountID, opts...))
}

// RankedPlayerStatistics calls seasons/accountinfo.
func (c *Client) RankedPlayerStatistics(ctx context.Context, region Region, accountIDs []int64, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, RankedPlayerStatistics(region, accountIDs, opts...))
}

// SearchClans calls clans/list.
func (c *Client) SearchClans(ctx context.Context, region Region, search string, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, SearchClans(region, search, opts...))
}

// ClanDetails calls clans/info.
func (c *Client) ClanDetails(ctx context.Context, region Region, clanIDs []int64, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, ClanDetails(region, clanIDs, opts...))
}

// PlayerClanData calls clans/accountinfo.
func (c *Client) PlayerClanData(ctx context.Context, region Region, accountIDs []int64, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, PlayerClanData(region, accountIDs, opts...))
}

// ClanGlossary calls clans/glossary.
func (c *Client) ClanGlossary(ctx context.Context, region Region, opts ...QueryOption) (*Response, error) {
	return c.Do(ctx, ClanGlossary(region, opts...))
}
