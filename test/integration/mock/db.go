// Package mock provides shared test doubles for the integration suite.
package mock

import (
	"database/sql"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory sqlite database used by the feature suite.
// A single connection keeps every scenario on the same schema.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb returns the process-wide test database, creating and migrating it
// on first use. The models map is keyed by table name so db assertion
// steps can resolve tables back to their gorm models.
func NewDb(models map[string]any) *Db {
	dbOnce.Do(func() {
		db = open(models)
	})
	return db
}

func open(models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// The shared in-memory database disappears when its last connection
	// closes. One connection keeps it alive for the whole suite.
	dbSQL.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}

	d := &Db{DbConn: conn, models: models}

	modelList := make([]any, 0, len(models))
	for _, m := range models {
		modelList = append(modelList, m)
	}
	if err := conn.AutoMigrate(modelList...); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return d
}

// ClearDB empties every table between scenarios.
func (d *Db) ClearDB() error {
	for table := range d.models {
		if err := d.DbConn.Exec("DELETE FROM " + table).Error; err != nil {
			if strings.Contains(err.Error(), "no such table") {
				continue
			}
			return err
		}
	}
	return nil
}

// GetModel resolves a table name to its gorm model.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
