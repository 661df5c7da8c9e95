package store

const schema = `
CREATE TABLE IF NOT EXISTS readings (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    board       TEXT NOT NULL,
    source      TEXT NOT NULL,
    model       TEXT NOT NULL,
    company     TEXT NOT NULL DEFAULT '',
    day         TEXT NOT NULL,
    value       REAL,
    provisional BOOLEAN NOT NULL DEFAULT 0,
    recorded_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_readings_board_day ON readings(board, day);
CREATE INDEX IF NOT EXISTS idx_readings_key ON readings(board, source, model, day);

CREATE TABLE IF NOT EXISTS timeline_events (
    id      INTEGER PRIMARY KEY AUTOINCREMENT,
    board   TEXT NOT NULL,
    day     TEXT NOT NULL,
    label   TEXT NOT NULL,
    company TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_timeline_board ON timeline_events(board, day);
`
