package heredity

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Open loads a pedigree from path. Plain CSV is the native format; .gz and
// .zst suffixes are transparently decompressed, .db/.sqlite paths are read
// through the SQLite loader, and gs:// paths are fetched from Google Cloud
// Storage before being parsed as (possibly compressed) CSV.
func Open(path string) (*Pedigree, error) {
	switch {
	case strings.HasSuffix(path, ".db"), strings.HasSuffix(path, ".sqlite"):
		db, err := OpenPedigreeDB(path)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer db.Close()

		return db.ReadPedigree()
	}

	var reader io.Reader
	if strings.HasPrefix(path, "gs://") {
		rc, err := openGoogleStorage(path)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer rc.Close()
		reader = rc
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer file.Close()
		reader = file
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(reader)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer gz.Close()
		reader = gz
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(reader)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer zr.Close()
		reader = zr
	}

	return ReadPedigree(reader)
}

// ReadPedigree parses the CSV population contract: a header row naming the
// name, mother, father, and trait columns, then one record per person. Empty
// parent fields mark a founder; the trait field must be "1" (present), "0"
// (absent), or empty (unobserved).
func ReadPedigree(r io.Reader) (*Pedigree, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &DataFormatError{Reason: "empty input; expected a CSV header"}
	}
	if err != nil {
		return nil, pfx.Err(err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"name", "mother", "father", "trait"} {
		if _, ok := columns[required]; !ok {
			return nil, &DataFormatError{
				Reason: fmt.Sprintf("header is missing the %q column", required),
			}
		}
	}

	var people []Person
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, pfx.Err(err)
		}

		person := Person{
			Name:   record[columns["name"]],
			Mother: record[columns["mother"]],
			Father: record[columns["father"]],
		}

		person.Trait, err = ParseTrait(record[columns["trait"]])
		if err != nil {
			return nil, &DataFormatError{Record: person.Name, Reason: err.Error()}
		}

		people = append(people, person)
	}

	return NewPedigree(people)
}

// ParseTrait maps the three accepted trait encodings onto a
// TraitObservation.
func ParseTrait(field string) (TraitObservation, error) {
	switch field {
	case "1":
		return TraitPresent, nil
	case "0":
		return TraitAbsent, nil
	case "":
		return TraitUnknown, nil

	default:
		return TraitUnknown, fmt.Errorf("trait value %q is not one of \"1\", \"0\", or empty", field)
	}
}
