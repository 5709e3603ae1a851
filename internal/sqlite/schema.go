package sqlite

// Schema DDL for the items table. The position column records insertion
// order so that load returns items in the order they were first added.
const createItems = `CREATE TABLE IF NOT EXISTS items (
    position INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    qty INTEGER NOT NULL CHECK (qty > 0)
);`
