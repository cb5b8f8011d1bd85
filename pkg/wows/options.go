package wows

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryOption sets an optional query parameter on a Request. Options given a
// zero value (empty string, zero number, empty list) leave the query untouched.
type QueryOption func(url.Values)

// Param sets an arbitrary query parameter. The application key cannot be set
// this way; it is always taken from the client.
func Param(key, value string) QueryOption {
	return func(q url.Values) {
		if key == "" || key == applicationIDParam {
			return
		}
		setString(q, key, value)
	}
}

// Fields selects the response fields. The values are joined with commas and
// sent as given; embedded fields are separated with dots and a leading "-"
// excludes a field.
func Fields(fields ...string) QueryOption {
	return stringParam("fields", strings.Join(fields, ","))
}

// Language sets the localization language (en, ru, de, ja, ...).
func Language(lang string) QueryOption {
	return stringParam("language", lang)
}

// Limit caps the number of returned entries.
func Limit(n int) QueryOption {
	return intParam("limit", n)
}

// PageNo selects a result page, starting at 1.
func PageNo(n int) QueryOption {
	return intParam("page_no", n)
}

// Type sets the endpoint specific "type" filter: the search type for player
// search (startswith, exact), the ship type for warships, the module type for
// modules, and so on.
func Type(types ...string) QueryOption {
	return listParam("type", types)
}

// Nation filters by one or more nations.
func Nation(nations ...string) QueryOption {
	return listParam("nation", nations)
}

// Extra requests extra response sections such as "pve" or "statistics.club".
func Extra(extra ...string) QueryOption {
	return listParam("extra", extra)
}

// AccessToken passes a player's access token for private data.
func AccessToken(token string) QueryOption {
	return stringParam("access_token", token)
}

// Dates selects statistics slices by date, formatted YYYYMMDD.
func Dates(dates ...string) QueryOption {
	return listParam("dates", dates)
}

// InGarage filters player ships by Port availability. It is sent as 1 or 0.
func InGarage(inGarage bool) QueryOption {
	return func(q url.Values) {
		if inGarage {
			q.Set("in_garage", "1")
		} else {
			q.Set("in_garage", "0")
		}
	}
}

// ShipIDs filters by ship ID.
func ShipIDs(ids ...int64) QueryOption { return idsParam("ship_id", ids) }

// SeasonIDs filters by ranked season ID.
func SeasonIDs(ids ...int64) QueryOption { return idsParam("season_id", ids) }

// ModuleIDs filters by module ID.
func ModuleIDs(ids ...int64) QueryOption { return idsParam("module_id", ids) }

// ExteriorIDs filters by exterior item ID.
func ExteriorIDs(ids ...int64) QueryOption { return idsParam("exterior_id", ids) }

// UpgradeIDs filters by upgrade ID.
func UpgradeIDs(ids ...int64) QueryOption { return idsParam("upgrade_id", ids) }

// CommanderIDs filters by commander ID.
func CommanderIDs(ids ...int64) QueryOption { return idsParam("commander_id", ids) }

// SkillIDs filters by commander skill ID.
func SkillIDs(ids ...int64) QueryOption { return idsParam("skill_id", ids) }

// Ship module selection for ShipParameters. When a module is not given the
// stock configuration is used.
func ArtilleryID(id int64) QueryOption     { return idsParam("artillery_id", []int64{id}) }
func DiveBomberID(id int64) QueryOption    { return idsParam("dive_bomber_id", []int64{id}) }
func EngineID(id int64) QueryOption        { return idsParam("engine_id", []int64{id}) }
func FighterID(id int64) QueryOption       { return idsParam("fighter_id", []int64{id}) }
func FireControlID(id int64) QueryOption   { return idsParam("fire_control_id", []int64{id}) }
func FlightControlID(id int64) QueryOption { return idsParam("flight_control_id", []int64{id}) }
func HullID(id int64) QueryOption          { return idsParam("hull_id", []int64{id}) }
func TorpedoBomberID(id int64) QueryOption { return idsParam("torpedo_bomber_id", []int64{id}) }
func TorpedoesID(id int64) QueryOption     { return idsParam("torpedoes_id", []int64{id}) }

func stringParam(key, value string) QueryOption {
	return func(q url.Values) { setString(q, key, value) }
}

func intParam(key string, n int) QueryOption {
	return func(q url.Values) {
		if n != 0 {
			q.Set(key, strconv.Itoa(n))
		}
	}
}

func listParam(key string, values []string) QueryOption {
	return func(q url.Values) {
		parts := make([]string, 0, len(values))
		for _, v := range values {
			if v = strings.TrimSpace(v); v != "" {
				parts = append(parts, v)
			}
		}
		setString(q, key, strings.Join(parts, ","))
	}
}

func idsParam(key string, ids []int64) QueryOption {
	return func(q url.Values) { setString(q, key, joinIDs(ids)) }
}

func setString(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

// joinIDs renders ids as a comma separated list. Zero IDs are skipped.
func joinIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != 0 {
			parts = append(parts, strconv.FormatInt(id, 10))
		}
	}
	return strings.Join(parts, ",")
}
