package wows

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestNewClientDefaults(t *testing.T) {
	client := New("test_key")

	hc, ok := client.r.doer.(*http.Client)
	if !ok {
		t.Fatalf("Expected default transport to be *http.Client, got %T", client.r.doer)
	}
	if hc.Timeout != 30*time.Second {
		t.Errorf("Expected timeout 30s, got %v", hc.Timeout)
	}
	if client.r.applicationID != "test_key" {
		t.Errorf("Expected application ID 'test_key', got '%s'", client.r.applicationID)
	}
}

func TestSearchPlayers(t *testing.T) {
	doer := &fakeDoer{Body: `{"data":[{"account_id":123}]}`}
	client := New("K", WithHTTPClient(doer))

	resp, err := client.SearchPlayers(context.Background(), NA, "PotatoSquad", Fields("account_id"), Limit(1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	req := doer.LastRequest()
	if req.Method != http.MethodGet {
		t.Errorf("Expected GET, got %s", req.Method)
	}
	if req.URL.Scheme != "https" || req.URL.Host != "api.worldofwarships.com" {
		t.Errorf("Expected https://api.worldofwarships.com, got %s://%s", req.URL.Scheme, req.URL.Host)
	}
	if req.URL.Path != "/wows/account/list/" {
		t.Errorf("Expected path /wows/account/list/, got %s", req.URL.Path)
	}

	expected := map[string]string{
		"application_id": "K",
		"search":         "PotatoSquad",
		"fields":         "account_id",
		"limit":          "1",
	}
	if got := queryMap(req); !equalMaps(got, expected) {
		t.Errorf("Expected query %v, got %v", expected, got)
	}

	if string(resp.Body) != `{"data":[{"account_id":123}]}` {
		t.Errorf("Expected body to be passed through, got %s", resp.Body)
	}
}

func TestPlayerPersonalData(t *testing.T) {
	body := `{"status":"ok","data":{"123":{"statistics":{"pvp":{"battles":10}}}}}`
	doer := &fakeDoer{Body: body}
	client := New("K", WithHTTPClient(doer))

	resp, err := client.PlayerPersonalData(context.Background(), NA, []int64{123}, Fields("statistics.pvp"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	req := doer.LastRequest()
	if req.URL.Path != "/wows/account/info/" {
		t.Errorf("Expected path /wows/account/info/, got %s", req.URL.Path)
	}
	expected := map[string]string{
		"application_id": "K",
		"account_id":     "123",
		"fields":         "statistics.pvp",
	}
	if got := queryMap(req); !equalMaps(got, expected) {
		t.Errorf("Expected query %v, got %v", expected, got)
	}
	if string(resp.Body) != body {
		t.Errorf("Expected body %s, got %s", body, resp.Body)
	}
}

func TestResponsePassThrough(t *testing.T) {
	// Key order and number formatting must survive untouched.
	body := `{"status":"ok","meta":{"count":1},"data":{"z":1.50,"a":[1,2]}}`
	doer := &fakeDoer{Body: body}
	client := New("K", WithHTTPClient(doer))

	resp, err := client.EncyclopediaInfo(context.Background(), EU)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(resp.Body) != body {
		t.Errorf("Expected body %s, got %s", body, resp.Body)
	}

	data, ok := resp.Map()["data"].(map[string]any)
	if !ok {
		t.Fatalf("Expected data object, got %T", resp.Map()["data"])
	}
	if data["z"] != json.Number("1.50") {
		t.Errorf("Expected json.Number 1.50, got %v", data["z"])
	}
}

func TestTransportFailureIsNotRetried(t *testing.T) {
	connErr := errors.New("dial tcp: connection refused")
	doer := &fakeDoer{Err: connErr}
	client := New("secret-key", WithHTTPClient(doer))

	_, err := client.SearchPlayers(context.Background(), NA, "PotatoSquad")
	if err == nil {
		t.Fatal("Expected an error")
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("Expected *TransportError, got %T", err)
	}
	if !errors.Is(err, connErr) {
		t.Error("Expected the transport error to wrap the connection error")
	}
	if doer.Calls() != 1 {
		t.Errorf("Expected exactly 1 call, got %d", doer.Calls())
	}
	if strings.Contains(err.Error(), "secret-key") {
		t.Errorf("Expected application key to be redacted, got %q", err.Error())
	}
}

func TestDecodeFailure(t *testing.T) {
	doer := &fakeDoer{Status: http.StatusBadGateway, Body: "<html>Bad Gateway</html>"}
	client := New("K", WithHTTPClient(doer))

	_, err := client.SearchPlayers(context.Background(), NA, "PotatoSquad")

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("Expected *DecodeError, got %T (%v)", err, err)
	}
	if decodeErr.StatusCode != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", decodeErr.StatusCode)
	}
	if string(decodeErr.Body) != "<html>Bad Gateway</html>" {
		t.Errorf("Expected raw body to be kept, got %s", decodeErr.Body)
	}
	if doer.Calls() != 1 {
		t.Errorf("Expected exactly 1 call, got %d", doer.Calls())
	}
}

func TestDecodeFailureOnTrailingData(t *testing.T) {
	doer := &fakeDoer{Body: `{"status":"ok"} trailing`}
	client := New("K", WithHTTPClient(doer))

	_, err := client.ClanGlossary(context.Background(), NA)

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("Expected *DecodeError, got %T (%v)", err, err)
	}
}

func TestDecodeBody(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"Object", `{"status":"ok","data":{"1":7}}`, false},
		{"TrailingWhitespace", "{\"status\":\"ok\",\"data\":{\"1\":7}}\n\t ", false},
		{"TrailingGarbage", `{"status":"ok"} trailing`, true},
		{"SecondValue", `{"status":"ok"}{"status":"ok"}`, true},
		{"StrayBrace", `{"status":"ok"}}`, true},
		{"Empty", ``, true},
		{"HTML", `<html>Bad Gateway</html>`, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := decodeBody([]byte(tc.body))
			if tc.wantErr {
				if err == nil {
					t.Errorf("Expected an error, got %v", v)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			data, _ := v.(map[string]any)["data"].(map[string]any)
			if _, ok := data["1"].(json.Number); !ok {
				t.Errorf("Expected json.Number, got %T", data["1"])
			}
		})
	}
}

func TestErrorStatusIsPassedThrough(t *testing.T) {
	body := `{"status":"error","error":{"field":"search","message":"NOT_ENOUGH_SEARCH_LENGTH","code":407,"value":"ab"}}`
	doer := &fakeDoer{Status: http.StatusNotFound, Body: body}
	client := New("K", WithHTTPClient(doer))

	resp, err := client.SearchPlayers(context.Background(), RU, "ab")
	if err != nil {
		t.Fatalf("Expected no error for upstream error envelope, got %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}

	env, err := resp.Envelope()
	if err != nil {
		t.Fatalf("Unexpected envelope error: %v", err)
	}
	if env.Status != "error" || env.Error == nil {
		t.Fatalf("Expected error envelope, got %+v", env)
	}
	if env.Error.Message != "NOT_ENOUGH_SEARCH_LENGTH" || env.Error.Code != 407 {
		t.Errorf("Unexpected envelope error %+v", env.Error)
	}
}

func TestInvalidRegionSendsNothing(t *testing.T) {
	doer := &fakeDoer{Body: `{}`}
	client := New("K", WithHTTPClient(doer))

	_, err := client.SearchPlayers(context.Background(), Region(42), "PotatoSquad")
	if !errors.Is(err, ErrInvalidRegion) {
		t.Fatalf("Expected ErrInvalidRegion, got %v", err)
	}
	if doer.Calls() != 0 {
		t.Errorf("Expected no transport calls, got %d", doer.Calls())
	}
}

func TestRepeatedCallsAreIdentical(t *testing.T) {
	doer := &fakeDoer{Body: `{"status":"ok","data":[{"nickname":"PotatoSquad","account_id":123}]}`}
	client := New("K", WithHTTPClient(doer))
	ctx := context.Background()

	first, err := client.SearchPlayers(ctx, ASIA, "Potato", Limit(5))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	firstURL := doer.LastRequest().URL.String()

	second, err := client.SearchPlayers(ctx, ASIA, "Potato", Limit(5))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	secondURL := doer.LastRequest().URL.String()

	if string(first.Body) != string(second.Body) || first.StatusCode != second.StatusCode {
		t.Error("Expected identical responses for identical calls")
	}
	if firstURL != secondURL {
		t.Errorf("Expected identical URLs, got %s and %s", firstURL, secondURL)
	}
	if doer.Calls() != 2 {
		t.Errorf("Expected 2 calls (no caching), got %d", doer.Calls())
	}
}

func TestApplicationIDCannotBeOverridden(t *testing.T) {
	doer := &fakeDoer{Body: `{}`}
	client := New("K", WithHTTPClient(doer))

	_, err := client.Do(context.Background(), NewRequest(NA, EndpointEncyclopediaInfo, Param("application_id", "other")))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := doer.LastRequest().URL.Query()["application_id"]; len(got) != 1 || got[0] != "K" {
		t.Errorf("Expected application_id [K], got %v", got)
	}
}

func TestRequestHeaders(t *testing.T) {
	doer := &fakeDoer{Body: `{}`}
	client := New("K", WithHTTPClient(doer), WithUserAgent("wows-test/1.0"))

	if _, err := client.BattleTypes(context.Background(), EU); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	req := doer.LastRequest()
	if ua := req.Header.Get("User-Agent"); ua != "wows-test/1.0" {
		t.Errorf("Expected User-Agent wows-test/1.0, got %q", ua)
	}
	if accept := req.Header.Get("Accept"); accept != "application/json" {
		t.Errorf("Expected Accept application/json, got %q", accept)
	}
}

func TestCanceledContext(t *testing.T) {
	doer := &fakeDoer{Body: `{}`}
	client := New("K", WithHTTPClient(doer))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Warships(ctx, NA)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestClientEndpoints(t *testing.T) {
	ctx := context.Background()
	ids := []int64{1, 2}

	testCases := []struct {
		name string
		call func(c *Client) (*Response, error)
		path string
	}{
		{"PlayerAchievements", func(c *Client) (*Response, error) { return c.PlayerAchievements(ctx, NA, ids) }, "/wows/account/achievements/"},
		{"PlayerStatisticsByDate", func(c *Client) (*Response, error) { return c.PlayerStatisticsByDate(ctx, NA, ids) }, "/wows/account/statsbydate/"},
		{"EncyclopediaInfo", func(c *Client) (*Response, error) { return c.EncyclopediaInfo(ctx, NA) }, "/wows/encyclopedia/info/"},
		{"Warships", func(c *Client) (*Response, error) { return c.Warships(ctx, NA) }, "/wows/encyclopedia/ships/"},
		{"Achievements", func(c *Client) (*Response, error) { return c.Achievements(ctx, NA) }, "/wows/encyclopedia/achievements/"},
		{"ShipParameters", func(c *Client) (*Response, error) { return c.ShipParameters(ctx, NA, 1) }, "/wows/encyclopedia/shipprofile/"},
		{"Modules", func(c *Client) (*Response, error) { return c.Modules(ctx, NA) }, "/wows/encyclopedia/modules/"},
		{"ExteriorItems", func(c *Client) (*Response, error) { return c.ExteriorItems(ctx, NA) }, "/wows/encyclopedia/exterior/"},
		{"Upgrades", func(c *Client) (*Response, error) { return c.Upgrades(ctx, NA) }, "/wows/encyclopedia/upgrades/"},
		{"ServiceRecordLevels", func(c *Client) (*Response, error) { return c.ServiceRecordLevels(ctx, NA) }, "/wows/encyclopedia/accountlevels/"},
		{"Commanders", func(c *Client) (*Response, error) { return c.Commanders(ctx, NA) }, "/wows/encyclopedia/crews/"},
		{"CommanderSkills", func(c *Client) (*Response, error) { return c.CommanderSkills(ctx, NA) }, "/wows/encyclopedia/crewskills/"},
		{"CommanderRanks", func(c *Client) (*Response, error) { return c.CommanderRanks(ctx, NA) }, "/wows/encyclopedia/crewranks/"},
		{"BattleTypes", func(c *Client) (*Response, error) { return c.BattleTypes(ctx, NA) }, "/wows/encyclopedia/battletypes/"},
		{"PlayerShipStatistics", func(c *Client) (*Response, error) { return c.PlayerShipStatistics(ctx, NA, 1) }, "/wows/ships/stats/"},
		{"RankedSeasons", func(c *Client) (*Response, error) { return c.RankedSeasons(ctx, NA) }, "/wows/seasons/info/"},
		{"RankedShipStatistics", func(c *Client) (*Response, error) { return c.RankedShipStatistics(ctx, NA, 1) }, "/wows/seasons/shipstats/"},
		{"RankedPlayerStatistics", func(c *Client) (*Response, error) { return c.RankedPlayerStatistics(ctx, NA, ids) }, "/wows/seasons/accountinfo/"},
		{"SearchClans", func(c *Client) (*Response, error) { return c.SearchClans(ctx, NA, "SEA") }, "/wows/clans/list/"},
		{"ClanDetails", func(c *Client) (*Response, error) { return c.ClanDetails(ctx, NA, ids) }, "/wows/clans/info/"},
		{"PlayerClanData", func(c *Client) (*Response, error) { return c.PlayerClanData(ctx, NA, ids) }, "/wows/clans/accountinfo/"},
		{"ClanGlossary", func(c *Client) (*Response, error) { return c.ClanGlossary(ctx, NA) }, "/wows/clans/glossary/"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doer := &fakeDoer{Body: `{"status":"ok"}`}
			client := New("K", WithHTTPClient(doer))

			if _, err := tc.call(client); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if doer.Calls() != 1 {
				t.Errorf("Expected 1 call, got %d", doer.Calls())
			}
			if got := doer.LastRequest().URL.Path; got != tc.path {
				t.Errorf("Expected path %s, got %s", tc.path, got)
			}
		})
	}
}
