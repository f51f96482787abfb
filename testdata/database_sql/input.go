package testdata

import (
	dbsql "database/sql"
)

// DatabaseConfig tests aliased imports
//
//fields: name = "DatabaseOption"
type DatabaseConfig struct {
	ConnectionString dbsql.NullString
	MaxConnections   dbsql.NullInt64
	Enabled          bool
}
