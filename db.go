package bakery

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/clayne/binary-bakery/payload"
)

// AssetDB is a catalog of packed assets keyed by content hash, used to
// skip re-packing bytes that were already emitted.
type AssetDB struct {
	db *sql.DB
}

func NewAssetDB(file string) (*AssetDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS asset (id INTEGER PRIMARY KEY NOT NULL, hash TEXT NOT NULL UNIQUE, name STRING NOT NULL, kind INTEGER NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, raw_size INTEGER NOT NULL, packed_size INTEGER NOT NULL)"); err != nil {
		return nil, err
	}

	return &AssetDB{
		db: db,
	}, nil
}

func (db *AssetDB) Close() error {
	return db.db.Close()
}

func hashKey(hash uint64) string {
	return fmt.Sprintf("%016X", hash)
}

// Record stores the asset in the catalog. It returns false when an asset
// with the same content hash is already recorded, in which case nothing is
// written.
func (db *AssetDB) Record(a *Asset) (bool, error) {
	switch err := db.db.QueryRow("SELECT id FROM asset WHERE hash = ?", hashKey(a.Hash)).Scan(new(int64)); err {
	case sql.ErrNoRows:
		h := a.Header
		rawSize := int(h.BitCount) / 8
		if h.Kind == payload.KindDualColorImage {
			rawSize = int(h.Width) * int(h.Height) * int(h.BPP)
		}
		if _, err := db.db.Exec("INSERT INTO asset (hash, name, kind, width, height, raw_size, packed_size) VALUES (?, ?, ?, ?, ?, ?, ?)",
			hashKey(a.Hash), a.Name, int(h.Kind), int(h.Width), int(h.Height), rawSize, len(a.Data)); err != nil {
			return false, err
		}
		return true, nil
	case nil:
		return false, nil
	default:
		return false, err
	}
}

// FindByHash returns the name under which the given content hash was first
// recorded, if any.
func (db *AssetDB) FindByHash(hash uint64) (string, bool, error) {
	var name string
	switch err := db.db.QueryRow("SELECT name FROM asset WHERE hash = ?", hashKey(hash)).Scan(&name); err {
	case sql.ErrNoRows:
		return "", false, nil
	case nil:
		return name, true, nil
	default:
		return "", false, err
	}
}
