package heredity

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/carbocation/pfx"
)

// PedigreeDB reads a population stored in a SQLite database: a "people"
// table with one row per person and, in files written by newer tooling, an
// optional "metadata" table describing the source the database was built
// from.
type PedigreeDB struct {
	DB       *sqlx.DB
	Metadata *PedigreeMetadata
}

// OpenPedigreeDB opens the SQLite database at path. The driver is selected
// at build time: the cgo sqlite3 driver when available, the pure-Go modernc
// driver otherwise (see WhichSQLiteDriver).
func OpenPedigreeDB(path string) (*PedigreeDB, error) {
	db, err := openSQLite(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	pdb := &PedigreeDB{
		DB:       db,
		Metadata: &PedigreeMetadata{},
	}

	// Not all pedigree databases carry metadata; ignore any error
	_ = pdb.DB.Get(pdb.Metadata, "SELECT * FROM metadata LIMIT 1")

	return pdb, nil
}

func (d *PedigreeDB) Close() error {
	return d.DB.Close()
}

// ReadPedigree loads and validates every person in the "people" table. NULL
// parent fields mark a founder, and the trait column follows the same
// three-value encoding as the CSV contract.
func (d *PedigreeDB) ReadPedigree() (*Pedigree, error) {
	rows, err := d.DB.Queryx("SELECT name, mother, father, trait FROM people ORDER BY rowid ASC")
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rows.Close()

	var people []Person
	var row personRow
	for rows.Next() {
		if err := rows.StructScan(&row); err != nil {
			return nil, pfx.Err(err)
		}

		person := Person{
			Name:   row.Name,
			Mother: row.Mother.String,
			Father: row.Father.String,
		}

		person.Trait, err = ParseTrait(row.Trait.String)
		if err != nil {
			return nil, &DataFormatError{Record: person.Name, Reason: err.Error()}
		}

		people = append(people, person)
	}
	if err := rows.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return NewPedigree(people)
}

// personRow conforms to the rows of the "people" table and can be parsed
// directly with sqlx.
type personRow struct {
	Name   string         `db:"name"`
	Mother sql.NullString `db:"mother"`
	Father sql.NullString `db:"father"`
	Trait  sql.NullString `db:"trait"`
}

// PedigreeMetadata conforms to the rows of the optional "metadata" table.
type PedigreeMetadata struct {
	Source       string `db:"source"`
	NPeople      uint   `db:"n_people"`
	CreationTime Time   `db:"creation_time"`
}
