package store

const schema = `
CREATE TABLE IF NOT EXISTS teams (
	name TEXT PRIMARY KEY COLLATE NOCASE,
	league TEXT NOT NULL,
	strengths TEXT NOT NULL DEFAULT '[]',  -- JSON array of strings
	weaknesses TEXT NOT NULL DEFAULT '[]', -- JSON array of strings
	goals_scored INTEGER NOT NULL DEFAULT 0,
	goals_conceded INTEGER NOT NULL DEFAULT 0,
	wins INTEGER NOT NULL DEFAULT 0,
	draws INTEGER NOT NULL DEFAULT 0,
	losses INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS standings (
	league TEXT NOT NULL COLLATE NOCASE,
	position INTEGER NOT NULL,
	team TEXT NOT NULL,
	played INTEGER NOT NULL DEFAULT 0,
	won INTEGER NOT NULL DEFAULT 0,
	drawn INTEGER NOT NULL DEFAULT 0,
	lost INTEGER NOT NULL DEFAULT 0,
	goals_for INTEGER NOT NULL DEFAULT 0,
	goals_against INTEGER NOT NULL DEFAULT 0,
	points INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (league, position)
);

CREATE TABLE IF NOT EXISTS matches (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	home_team TEXT NOT NULL COLLATE NOCASE,
	away_team TEXT NOT NULL COLLATE NOCASE,
	home_score INTEGER NOT NULL,
	away_score INTEGER NOT NULL,
	played_on TEXT NOT NULL, -- YYYY-MM-DD
	competition TEXT
);

CREATE INDEX IF NOT EXISTS idx_matches_played_on ON matches(played_on);

CREATE TABLE IF NOT EXISTS swot (
	team TEXT PRIMARY KEY COLLATE NOCASE,
	strengths TEXT NOT NULL DEFAULT '[]',
	weaknesses TEXT NOT NULL DEFAULT '[]',
	opportunities TEXT NOT NULL DEFAULT '[]',
	threats TEXT NOT NULL DEFAULT '[]'
);
`
