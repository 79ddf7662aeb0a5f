package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"riegos/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// Run the legacy-column migration BEFORE AutoMigrate so GORM sees the
	// final column set and doesn't add a duplicate `modulo` column.
	if err := migrateRiegosRenameBloque(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(&entities.Riego{}); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migrateRiegosRenameBloque rebuilds riegos if it still uses the desktop
// app's `bloque` column instead of `modulo`. Old local databases created by
// the Tk form have schema riegos(id, fecha, bloque, tipo_riego, timestamp).
func migrateRiegosRenameBloque(db *gorm.DB) error {
	// does table exist?
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='riegos'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	// inspect columns
	type colInfo struct {
		Cid       int
		Name      string
		Type      string
		NotNull   int
		DfltValue sql.NullString
		Pk        int
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(riegos)`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}

	hasBloque := false
	hasModulo := false
	for _, c := range cols {
		switch strings.ToLower(c.Name) {
		case "bloque":
			hasBloque = true
		case "modulo":
			hasModulo = true
		}
	}
	if !hasBloque || hasModulo {
		// already on the current schema (or never had the desktop one)
		return nil
	}

	createSQL := `
CREATE TABLE riegos_new (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    fecha TEXT,
    modulo TEXT,
    tipo_riego TEXT,
    timestamp TEXT
);
`
	copySQL := `
INSERT INTO riegos_new (id, fecha, modulo, tipo_riego, timestamp)
SELECT id, fecha, bloque, tipo_riego, timestamp FROM riegos;
`

	// do it in a transaction
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`PRAGMA foreign_keys=OFF`).Error; err != nil {
			return err
		}
		if err := tx.Exec(createSQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(copySQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DROP TABLE riegos`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`ALTER TABLE riegos_new RENAME TO riegos`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`PRAGMA foreign_keys=ON`).Error; err != nil {
			return err
		}
		return nil
	})
}
