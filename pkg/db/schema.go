package db

const schema = `
-- Corpora: one row per mined input file
CREATE TABLE IF NOT EXISTS corpora (
    corpus_id INTEGER PRIMARY KEY AUTOINCREMENT,
    author TEXT NOT NULL,
    source TEXT NOT NULL,
    line_count INTEGER NOT NULL DEFAULT 0,
    token_count INTEGER NOT NULL DEFAULT 0,
    mined_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Lines: post-normalization line records; raw is kept for the substring scan
CREATE TABLE IF NOT EXISTS lines (
    line_id INTEGER PRIMARY KEY AUTOINCREMENT,
    author TEXT NOT NULL,
    raw TEXT NOT NULL,
    norm TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_lines_author ON lines(author);

-- Tokens: the materialized fan-out, one row per surviving token
CREATE TABLE IF NOT EXISTS tokens (
    token_id INTEGER PRIMARY KEY AUTOINCREMENT,
    author TEXT NOT NULL,
    word TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tokens_author_word ON tokens(author, word);

-- Word counts: the aggregate; (author, word) is unique by construction
CREATE TABLE IF NOT EXISTS word_counts (
    author TEXT NOT NULL,
    word TEXT NOT NULL,
    n INTEGER NOT NULL,
    PRIMARY KEY (author, word)
) WITHOUT ROWID;

CREATE INDEX IF NOT EXISTS idx_word_counts_author_n ON word_counts(author, n DESC);
`
