package store

// migration pairs a version tag with the DDL it applies. The unique
// constraints back the natural-key upserts in the repositories: scrapes
// resolve teams/players by name and games by
// (season, round_number, home_team_id, away_team_id).
type migration struct {
	version   string
	statement string
}

var migrations = []migration{
	{
		version: "001_create_teams",
		statement: `
			CREATE TABLE IF NOT EXISTS teams (
				team_id      SERIAL PRIMARY KEY,
				name         VARCHAR(100) NOT NULL UNIQUE,
				abbreviation VARCHAR(10),
				city         VARCHAR(100),
				state        VARCHAR(10),
				created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`,
	},
	{
		version: "002_create_players",
		statement: `
			CREATE TABLE IF NOT EXISTS players (
				player_id       SERIAL PRIMARY KEY,
				name            VARCHAR(150) NOT NULL UNIQUE,
				current_team_id INTEGER REFERENCES teams(team_id),
				created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`,
	},
	{
		version: "003_create_games",
		statement: `
			CREATE TABLE IF NOT EXISTS games (
				game_id      SERIAL PRIMARY KEY,
				season       INTEGER NOT NULL,
				round_number INTEGER NOT NULL,
				home_team_id INTEGER NOT NULL REFERENCES teams(team_id),
				away_team_id INTEGER NOT NULL REFERENCES teams(team_id),
				venue        VARCHAR(100),
				game_date    TIMESTAMPTZ,
				attendance   INTEGER,
				home_score   INTEGER,
				away_score   INTEGER,
				home_goals   INTEGER,
				home_behinds INTEGER,
				away_goals   INTEGER,
				away_behinds INTEGER,
				winner       VARCHAR(10),
				is_finished  BOOLEAN NOT NULL DEFAULT FALSE,
				created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (season, round_number, home_team_id, away_team_id)
			)
		`,
	},
	{
		version: "004_create_games_indexes",
		statement: `
			CREATE INDEX IF NOT EXISTS idx_games_season ON games(season);
			CREATE INDEX IF NOT EXISTS idx_games_game_date ON games(game_date)
		`,
	},
	{
		version: "005_create_player_game_stats",
		statement: `
			CREATE TABLE IF NOT EXISTS player_game_stats (
				id                      SERIAL PRIMARY KEY,
				game_id                 INTEGER NOT NULL REFERENCES games(game_id),
				player_id               INTEGER NOT NULL REFERENCES players(player_id),
				team_id                 INTEGER NOT NULL REFERENCES teams(team_id),
				kicks                   INTEGER NOT NULL DEFAULT 0,
				marks                   INTEGER NOT NULL DEFAULT 0,
				handballs               INTEGER NOT NULL DEFAULT 0,
				disposals               INTEGER NOT NULL DEFAULT 0,
				goals                   INTEGER NOT NULL DEFAULT 0,
				behinds                 INTEGER NOT NULL DEFAULT 0,
				hitouts                 INTEGER NOT NULL DEFAULT 0,
				tackles                 INTEGER NOT NULL DEFAULT 0,
				rebound_50s             INTEGER NOT NULL DEFAULT 0,
				inside_50s              INTEGER NOT NULL DEFAULT 0,
				clearances              INTEGER NOT NULL DEFAULT 0,
				clangers                INTEGER NOT NULL DEFAULT 0,
				frees_for               INTEGER NOT NULL DEFAULT 0,
				frees_against           INTEGER NOT NULL DEFAULT 0,
				brownlow_votes          INTEGER NOT NULL DEFAULT 0,
				contested_possessions   INTEGER NOT NULL DEFAULT 0,
				uncontested_possessions INTEGER NOT NULL DEFAULT 0,
				contested_marks         INTEGER NOT NULL DEFAULT 0,
				marks_inside_50         INTEGER NOT NULL DEFAULT 0,
				one_percenters          INTEGER NOT NULL DEFAULT 0,
				bounces                 INTEGER NOT NULL DEFAULT 0,
				goal_assists            INTEGER NOT NULL DEFAULT 0,
				created_at              TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at              TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (game_id, player_id)
			)
		`,
	},
	{
		version: "006_create_player_game_stats_indexes",
		statement: `
			CREATE INDEX IF NOT EXISTS idx_pgs_game ON player_game_stats(game_id);
			CREATE INDEX IF NOT EXISTS idx_pgs_player ON player_game_stats(player_id)
		`,
	},
}
