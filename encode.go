package moneytracker

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// csvHeader are the columns of ExportCSV.
var csvHeader = []string{"id", "kind", "amount", "category", "note", "date", "tags"}

// ExportJSON writes records as an indented JSON array.
func ExportJSON(w io.Writer, records []Transaction) error {
	if records == nil {
		records = []Transaction{}
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// ExportCSV writes a header line then one line per record, every field
// quoted. Tags are joined with ";".
func ExportCSV(w io.Writer, records []Transaction) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strings.Join(csvHeader, ","))
	for _, r := range records {
		row := []string{
			r.ID,
			string(r.Kind),
			r.Amount.String(),
			r.Category,
			r.Note,
			r.Date.String(),
			strings.Join(r.Tags, ";"),
		}
		for i, field := range row {
			row[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
		}
		bw.WriteString("\n")
		bw.WriteString(strings.Join(row, ","))
	}
	bw.WriteString("\n")
	return bw.Flush()
}

// EncodeJSONL writes one transaction per line.
func EncodeJSONL(w io.Writer, records []Transaction) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding transaction %q: %w", r.ID, err)
		}
	}
	return nil
}

// DecodeJSONL reads transactions written by EncodeJSONL. Blank lines are
// skipped, any invalid line is an error.
func DecodeJSONL(r io.Reader) ([]Transaction, error) {
	var records []Transaction
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		b := scanner.Bytes()
		if len(strings.TrimSpace(string(b))) == 0 {
			continue
		}
		var t Transaction
		if err := json.Unmarshal(b, &t); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, t)
	}
	return records, scanner.Err()
}
