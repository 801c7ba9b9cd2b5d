package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// CSVEncoder writes one row per transaction.
// Columns: id,date,type,category,description,amount
type CSVEncoder struct{}

func (CSVEncoder) Extension() string { return "csv" }

func (CSVEncoder) Encode(w io.Writer, s Snapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "date", "type", "category", "description", "amount"}); err != nil {
		return err
	}
	for _, t := range s.Transactions {
		rec := []string{
			strconv.FormatInt(t.ID, 10),
			t.Date,
			string(t.Type),
			t.Category,
			t.Description,
			strconv.FormatFloat(t.Amount, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type JSONEncoder struct{}

func (JSONEncoder) Extension() string { return "json" }

func (JSONEncoder) Encode(w io.Writer, s Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toDocument(s))
}

type YAMLEncoder struct{}

func (YAMLEncoder) Extension() string { return "yaml" }

func (YAMLEncoder) Encode(w io.Writer, s Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toDocument(s)); err != nil {
		return err
	}
	return enc.Close()
}
