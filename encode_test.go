package moneytracker

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func exportRecords() []Transaction {
	a := T("t1", Income, 100, "Salary", "2024-01-05").WithTags("job", "monthly")
	a.Note = `say "hi", ok`
	return []Transaction{a, T("t2", Expense, 40.5, "", "2024-01-06")}
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, exportRecords()); err != nil {
		t.Fatal(err)
	}
	want := `id,kind,amount,category,note,date,tags
"t1","income","100.00","Salary","say ""hi"", ok","2024-01-05","job;monthly"
"t2","expense","40.50","","","2024-01-06",""
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("ExportCSV() mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := ExportCSV(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "id,kind,amount,category,note,date,tags\n" {
		t.Errorf("ExportCSV(nil) = %q", got)
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportJSON(&buf, exportRecords()[1:]); err != nil {
		t.Fatal(err)
	}
	want := `[
  {
    "id": "t2",
    "kind": "expense",
    "amount": 40.5,
    "category": "",
    "date": "2024-01-06"
  }
]
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("ExportJSON() mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := ExportJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "[]\n" {
		t.Errorf("ExportJSON(nil) = %q, want []", got)
	}
}

func TestJSONL(t *testing.T) {
	var buf bytes.Buffer
	records := exportRecords()
	if err := EncodeJSONL(&buf, records); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), "\n"); n != len(records) {
		t.Errorf("EncodeJSONL() wrote %d lines, want %d", n, len(records))
	}
	got, err := DecodeJSONL(strings.NewReader(buf.String() + "\n  \n"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(records, got, cmpOpts...); diff != "" {
		t.Errorf("JSONL round trip mismatch (-want +got):\n%s", diff)
	}

	_, err = DecodeJSONL(strings.NewReader(buf.String() + "{not json}\n"))
	if err == nil || !strings.HasPrefix(err.Error(), "line 3:") {
		t.Errorf("DecodeJSONL(bad line) error = %v, want line 3", err)
	}
}
