package wows

// Supported endpoints.
var (
	EndpointAccountList         = Endpoint{"account", "list"}
	EndpointAccountInfo         = Endpoint{"account", "info"}
	EndpointAccountAchievements = Endpoint{"account", "achievements"}
	EndpointAccountStatsByDate  = Endpoint{"account", "statsbydate"}

	EndpointEncyclopediaInfo          = Endpoint{"encyclopedia", "info"}
	EndpointEncyclopediaShips         = Endpoint{"encyclopedia", "ships"}
	EndpointEncyclopediaAchievements  = Endpoint{"encyclopedia", "achievements"}
	EndpointEncyclopediaShipProfile   = Endpoint{"encyclopedia", "shipprofile"}
	EndpointEncyclopediaModules       = Endpoint{"encyclopedia", "modules"}
	EndpointEncyclopediaExterior      = Endpoint{"encyclopedia", "exterior"}
	EndpointEncyclopediaUpgrades      = Endpoint{"encyclopedia", "upgrades"}
	EndpointEncyclopediaAccountLevels = Endpoint{"encyclopedia", "accountlevels"}
	EndpointEncyclopediaCrews         = Endpoint{"encyclopedia", "crews"}
	EndpointEncyclopediaCrewSkills    = Endpoint{"encyclopedia", "crewskills"}
	EndpointEncyclopediaCrewRanks     = Endpoint{"encyclopedia", "crewranks"}
	EndpointEncyclopediaBattleTypes   = Endpoint{"encyclopedia", "battletypes"}

	EndpointShipsStats = Endpoint{"ships", "stats"}

	EndpointSeasonsInfo        = Endpoint{"seasons", "info"}
	EndpointSeasonsShipStats   = Endpoint{"seasons", "shipstats"}
	EndpointSeasonsAccountInfo = Endpoint{"seasons", "accountinfo"}

	EndpointClansList        = Endpoint{"clans", "list"}
	EndpointClansInfo        = Endpoint{"clans", "info"}
	EndpointClansAccountInfo = Endpoint{"clans", "accountinfo"}
	EndpointClansGlossary    = Endpoint{"clans", "glossary"}
)

// build applies the caller's options first so that required parameters
// always win over a conflicting Param.
func build(region Region, endpoint Endpoint, opts []QueryOption, required ...QueryOption) Request {
	all := make([]QueryOption, 0, len(opts)+len(required))
	all = append(all, opts...)
	all = append(all, required...)
	return NewRequest(region, endpoint, all...)
}

// --- account ---

// SearchPlayers returns a partial list of players filtered by the initial
// characters of their name, sorted alphabetically. Use Type("exact") to match
// whole names; several names may then be given separated with commas.
func SearchPlayers(region Region, search string, opts ...QueryOption) Request {
	return build(region, EndpointAccountList, opts, stringParam("search", search))
}

// PlayerPersonalData returns player details for one or more accounts.
func PlayerPersonalData(region Region, accountIDs []int64, opts ...QueryOption) Request {
	return build(region, EndpointAccountInfo, opts, idsParam("account_id", accountIDs))
}

// PlayerAchievements returns the achievements earned by one or more accounts.
func PlayerAchievements(region Region, accountIDs []int64, opts ...QueryOption) Request {
	return build(region, EndpointAccountAchievements, opts, idsParam("account_id", accountIDs))
}

// PlayerStatisticsByDate returns statistics slices by date. Use Dates to pick
// the slices; yesterday is returned by default.
func PlayerStatisticsByDate(region Region, accountIDs []int64, opts ...QueryOption) Request {
	return build(region, EndpointAccountStatsByDate, opts, idsParam("account_id", accountIDs))
}

// --- encyclopedia ---

// EncyclopediaInfo returns general encyclopedia information.
func EncyclopediaInfo(region Region, opts ...QueryOption) Request {
	return build(region, EndpointEncyclopediaInfo, opts)
}

// Warships returns the list of ships, filtered with ShipIDs, Nation and Type.
func Warships(region Region, opts ...QueryOption) Request {
	return build(region, EndpointEncyclopediaShips, opts)
}

// Achievements returns the achievement catalogue.
func Achievements(region Region, opts ...QueryOption) Request {
	return build(region, EndpointEncyclopediaAchievements, opts)
}

// ShipParameters returns the parameters of a ship in a given configuration.
// Modules not selected with the module ID options default to stock.
func ShipParameters(region Region, shipID int64, opts ...QueryOption) Request {
	return build(region, EndpointEncyclopediaShipProfile, opts, idsParam("ship_id", []int64{shipID}))
}

// Modules returns ship modules. The upstream requires ModuleIDs or Type.
func Modules(region Region, opts ...QueryOption) Request {
	return build(region, EndpointEncyclopediaModules, opts)
}

// ExteriorItems returns camouflages, flags and signals.
func ExteriorItems(region Region, opts ...QueryOption) Request {
	return build(region, EndpointEncyclopediaExterior, opts)
}

// Upgrades returns ship upgrades.
func Upgrades(region Region, opts ...QueryOption) Request {
	return build(region, EndpointEncyclopediaUpgrades, opts)
}

// ServiceRecordLevels returns service record level information.
func ServiceRecordLevels(region Region, opts ...QueryOption) Request {
	return build(region, EndpointEncyclopediaAccountLevels, opts)
}

// Commanders returns commander information.
func Commanders(region Region, opts ...QueryOption) Request {
	return build(region, EndpointEncyclopediaCrews, opts)
}

// CommanderSkills returns commander skills.
func CommanderSkills(region Region, opts ...QueryOption) Request {
	return build(region, EndpointEncyclopediaCrewSkills, opts)
}

// CommanderRanks returns commander ranks, optionally filtered by Nation.
func CommanderRanks(region Region, opts ...QueryOption) Request {
	return build(region, EndpointEncyclopediaCrewRanks, opts)
}

// BattleTypes returns the battle types.
func BattleTypes(region Region, opts ...QueryOption) Request {
	return build(region, EndpointEncyclopediaBattleTypes, opts)
}

// --- ships ---

// PlayerShipStatistics returns per-ship statistics for a player.
func PlayerShipStatistics(region Region, accountID int64, opts ...QueryOption) Request {
	return build(region, EndpointShipsStats, opts, idsParam("account_id", []int64{accountID}))
}

// --- seasons ---

// RankedSeasons returns ranked battle seasons.
func RankedSeasons(region Region, opts ...QueryOption) Request {
	return build(region, EndpointSeasonsInfo, opts)
}

// RankedShipStatistics returns a player's ship statistics in ranked battles.
func RankedShipStatistics(region Region, accountID int64, opts ...QueryOption) Request {
	return build(region, EndpointSeasonsShipStats, opts, idsParam("account_id", []int64{accountID}))
}

// RankedPlayerStatistics returns players' ranked battle statistics.
func RankedPlayerStatistics(region Region, accountIDs []int64, opts ...QueryOption) Request {
	return build(region, EndpointSeasonsAccountInfo, opts, idsParam("account_id", accountIDs))
}

// --- clans ---

// SearchClans searches clans by part of their name or tag. An empty search
// lists clans; page through them with Limit and PageNo.
func SearchClans(region Region, search string, opts ...QueryOption) Request {
	return build(region, EndpointClansList, opts, stringParam("search", search))
}

// ClanDetails returns details for one or more clans.
func ClanDetails(region Region, clanIDs []int64, opts ...QueryOption) Request {
	return build(region, EndpointClansInfo, opts, idsParam("clan_id", clanIDs))
}

// PlayerClanData returns clan membership data for one or more players.
func PlayerClanData(region Region, accountIDs []int64, opts ...QueryOption) Request {
	return build(region, EndpointClansAccountInfo, opts, idsParam("account_id", accountIDs))
}

// ClanGlossary returns the clan glossary.
func ClanGlossary(region Region, opts ...QueryOption) Request {
	return build(region, EndpointClansGlossary, opts)
}
