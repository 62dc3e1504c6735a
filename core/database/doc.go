// Package database handles database connections and schema verification.
//
// It provides a wrapper around GORM to configure MySQL connections for the
// hosted catalog database, plus an in-memory SQLite mode used by the test
// suite (Driver: "sqlite", Name: ":memory:").
//
// # Connect
//
// The Connect function establishes a connection based on the configured
// driver and verifies it with a ping bounded by the configured timeout.
//
// # Schema Verification
//
// VerifyTables checks that the cross-catalog mapping tables exist, so the
// server can warn on startup when pointed at an unmigrated database.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Fatal("Failed to connect to mapping database", zap.Error(err))
//	}
package database
