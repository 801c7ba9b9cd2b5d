// Package export writes a snapshot of the ledger to CSV, JSON or YAML.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"budget/internal/core"
)

type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Formats lists the supported export formats.
func Formats() []Format {
	return []Format{CSV, JSON, YAML}
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case CSV, JSON, YAML:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q: must be one of %v", s, Formats())
	}
}

// Snapshot is everything an export contains.
type Snapshot struct {
	GeneratedAt  time.Time
	Transactions []core.Transaction
	Summary      core.Summary
	Balance      float64
}

// Encoder is one export strategy.
type Encoder interface {
	Encode(w io.Writer, s Snapshot) error
	Extension() string
}

func EncoderFor(f Format) (Encoder, error) {
	switch f {
	case CSV:
		return CSVEncoder{}, nil
	case JSON:
		return JSONEncoder{}, nil
	case YAML:
		return YAMLEncoder{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", f)
	}
}

// DefaultFileName names an export after its generation time.
func DefaultFileName(s Snapshot, enc Encoder) string {
	return "budget-" + s.GeneratedAt.Format("20060102-150405") + "." + enc.Extension()
}

// WriteFile encodes the snapshot to path, creating parent directories.
func WriteFile(path string, s Snapshot, enc Encoder) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	if err := enc.Encode(f, s); err != nil {
		f.Close()
		return fmt.Errorf("encode %s export: %w", enc.Extension(), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}

// record is the serialized form shared by the JSON and YAML encoders.
type record struct {
	ID          int64   `json:"id" yaml:"id"`
	Date        string  `json:"date" yaml:"date"`
	Type        string  `json:"type" yaml:"type"`
	Category    string  `json:"category" yaml:"category"`
	Description string  `json:"description" yaml:"description"`
	Amount      float64 `json:"amount" yaml:"amount"`
}

type document struct {
	GeneratedAt  string             `json:"generated_at" yaml:"generated_at"`
	Transactions []record           `json:"transactions" yaml:"transactions"`
	Summary      map[string]float64 `json:"summary" yaml:"summary"`
	Balance      float64            `json:"balance" yaml:"balance"`
}

func toDocument(s Snapshot) document {
	doc := document{
		GeneratedAt:  s.GeneratedAt.UTC().Format(time.RFC3339),
		Transactions: make([]record, 0, len(s.Transactions)),
		Summary:      make(map[string]float64, len(s.Summary)),
		Balance:      s.Balance,
	}
	for _, t := range s.Transactions {
		doc.Transactions = append(doc.Transactions, record{
			ID:          t.ID,
			Date:        t.Date,
			Type:        string(t.Type),
			Category:    t.Category,
			Description: t.Description,
			Amount:      t.Amount,
		})
	}
	for k, v := range s.Summary {
		doc.Summary[string(k)] = v
	}
	return doc
}
