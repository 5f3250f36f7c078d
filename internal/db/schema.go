package db

// SchemaSQL is the authoritative schema for the registration store.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS chords (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	frets TEXT NOT NULL,
	barres TEXT NOT NULL DEFAULT '[]',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the schema for use in tests and at open.
func GetSchemaSQL() string {
	return SchemaSQL
}
