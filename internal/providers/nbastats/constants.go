package nbastats

import "time"

const (
	providerName = "nbastats"

	defaultBaseURL         = "https://stats.nba.com/stats"
	defaultHeadshotBaseURL = "https://cdn.nba.com/headshots/nba/latest/1040x760"
	defaultLeagueID        = "00"
	defaultSeasonType      = "Regular Season"
	defaultHTTPTimeout     = 10 * time.Second

	endpointRoster  = "commonteamroster"
	endpointProfile = "playerprofilev2"
	endpointGameLog = "playergamelog"

	// Upstream error bodies are HTML pages; only the head is worth logging.
	maxErrorBodyBytes = 512
	maxBodyBytes      = 8 << 20
)

// Result set names as published by stats.nba.com.
const (
	resultSetRoster        = "CommonTeamRoster"
	resultSetSeasonTotals  = "SeasonTotalsRegularSeason"
	resultSetPlayerGameLog = "PlayerGameLog"
)

// Roster columns. Offsets are the observed positional contract used only when
// the payload carries no headers.
var (
	colPlayerName = column{name: "PLAYER", offset: 3}
	colJersey     = column{name: "NUM", offset: 4}
	colPosition   = column{name: "POSITION", offset: 5}
	colHeight     = column{name: "HEIGHT", offset: 6}
	colWeight     = column{name: "WEIGHT", offset: 7}
	colPlayerID   = column{name: "PLAYER_ID", offset: 14}

	rosterColumns = []column{colPlayerName, colJersey, colPosition, colHeight, colWeight, colPlayerID}
)

// playerprofilev2 SeasonTotalsRegularSeason columns.
var (
	colProfilePoints   = column{name: "PTS", offset: 3}
	colProfileAssists  = column{name: "AST", offset: 4}
	colProfileRebounds = column{name: "REB", offset: 5}
	colProfileSteals   = column{name: "STL", offset: 6}
	colProfileBlocks   = column{name: "BLK", offset: 7}
	colProfileFGPct    = column{name: "FG_PCT", offset: 11}
	colProfileGames    = column{name: "GP", offset: noOffset}

	profileColumns = []column{colProfilePoints, colProfileAssists, colProfileRebounds, colProfileSteals, colProfileBlocks, colProfileFGPct}
)

// playergamelog PlayerGameLog columns.
var (
	colLogFGM      = column{name: "FGM", offset: 7}
	colLogFGA      = column{name: "FGA", offset: 8}
	colLogRebounds = column{name: "REB", offset: 18}
	colLogAssists  = column{name: "AST", offset: 19}
	colLogSteals   = column{name: "STL", offset: 20}
	colLogBlocks   = column{name: "BLK", offset: 21}
	colLogPoints   = column{name: "PTS", offset: 24}

	gameLogColumns = []column{colLogFGM, colLogFGA, colLogRebounds, colLogAssists, colLogSteals, colLogBlocks, colLogPoints}
)
