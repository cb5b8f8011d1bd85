// Package wows is a thin client for the World of Warships public API.
//
// Every call becomes one HTTPS GET to a fixed endpoint path on the host of
// the chosen Region, with the application key and the caller's parameters in
// the query string. The JSON body comes back as received, wrapped in a
// Response; upstream error envelopes and non-2xx statuses are passed through
// rather than turned into errors.
//
// Requests are plain values built by functions such as SearchPlayers and
// PlayerPersonalData. A blocking Client sends them with Do (or the matching
// convenience methods); an AsyncClient sends them in the background with Go
// over a transport the caller owns and shares.
//
//	c := wows.New(appID)
//	resp, err := c.SearchPlayers(ctx, wows.NA, "PotatoSquad",
//		wows.Fields("account_id"), wows.Limit(1))
package wows
