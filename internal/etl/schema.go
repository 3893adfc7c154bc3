package etl

// schemaDDL bootstraps the catalog schema. Idempotent on purpose: the seed
// job may be re-run against a populated database.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS episode (
	id SERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	season_number INT NOT NULL,
	episode_number INT NOT NULL,
	air_date DATE,
	youtube_url TEXT,
	image_url TEXT,
	UNIQUE (season_number, episode_number)
);

CREATE TABLE IF NOT EXISTS color (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	hex_code TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS subject_matter (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS tool (
	id VARCHAR(16) PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	category TEXT NOT NULL DEFAULT '',
	primary_uses TEXT NOT NULL DEFAULT '',
	compatible_colors TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS technique (
	id VARCHAR(16) PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	primary_colors_used TEXT NOT NULL DEFAULT '',
	common_subjects TEXT NOT NULL DEFAULT '',
	difficulty_level TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS episode_color (
	episode_id INT NOT NULL REFERENCES episode (id) ON DELETE CASCADE,
	color_id INT NOT NULL REFERENCES color (id) ON DELETE CASCADE,
	UNIQUE (episode_id, color_id)
);

CREATE TABLE IF NOT EXISTS episode_subject (
	episode_id INT NOT NULL REFERENCES episode (id) ON DELETE CASCADE,
	subject_id INT NOT NULL REFERENCES subject_matter (id) ON DELETE CASCADE,
	UNIQUE (episode_id, subject_id)
);

CREATE TABLE IF NOT EXISTS episode_tool (
	episode_id INT NOT NULL REFERENCES episode (id) ON DELETE CASCADE,
	tool_id VARCHAR(16) NOT NULL REFERENCES tool (id) ON DELETE CASCADE,
	UNIQUE (episode_id, tool_id)
);

CREATE TABLE IF NOT EXISTS episode_technique (
	episode_id INT NOT NULL REFERENCES episode (id) ON DELETE CASCADE,
	technique_id VARCHAR(16) NOT NULL REFERENCES technique (id) ON DELETE CASCADE,
	UNIQUE (episode_id, technique_id)
);

CREATE TABLE IF NOT EXISTS tool_technique (
	tool_id VARCHAR(16) NOT NULL REFERENCES tool (id) ON DELETE CASCADE,
	technique_id VARCHAR(16) NOT NULL REFERENCES technique (id) ON DELETE CASCADE,
	UNIQUE (tool_id, technique_id)
);
`
