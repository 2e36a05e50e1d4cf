package diag

import (
	"testing"

	"github.com/qtyi/luna-sub005/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	for i := range 3 {
		ok := bag.Add(NewError(SynUnexpectedToken, source.Span{Start: uint32(i)}, "x"))
		if i < 2 && !ok {
			t.Fatalf("add %d rejected", i)
		}
		if i == 2 && ok {
			t.Fatalf("add beyond limit accepted")
		}
	}
	if bag.Len() != 2 || !bag.HasErrors() {
		t.Fatalf("len=%d errors=%v", bag.Len(), bag.HasErrors())
	}
}

func TestBagUnlimited(t *testing.T) {
	bag := NewBag(0)
	for range 100 {
		bag.Add(New(SevWarning, LexMalformedNumber, source.Span{}, "w"))
	}
	if bag.Len() != 100 {
		t.Fatalf("len = %d", bag.Len())
	}
	if bag.HasErrors() || !bag.HasWarnings() {
		t.Fatalf("severity queries wrong")
	}
}

func TestBagSortByPosition(t *testing.T) {
	bag := NewBag(8)
	bag.Add(NewError(SynExpectToken, source.Span{Start: 9, End: 10}, "b"))
	bag.Add(New(SevWarning, SynExpectCall, source.Span{Start: 2, End: 3}, "w"))
	bag.Add(NewError(LexUnknownChar, source.Span{Start: 2, End: 3}, "a"))

	bag.Sort()
	items := bag.Items()
	if items[0].Code != LexUnknownChar || items[1].Code != SynExpectCall || items[2].Code != SynExpectToken {
		t.Fatalf("unexpected order: %v %v %v", items[0].Code, items[1].Code, items[2].Code)
	}
}

func TestCodeIDAndCategory(t *testing.T) {
	cases := []struct {
		code Code
		id   string
		cat  Category
	}{
		{LexUnknownChar, "LEX1001", CategoryLexical},
		{SynExpectToken, "SYN2002", CategorySyntax},
		{IntNoProgress, "INT9001", CategoryStructural},
		{IOLoadFileError, "IO4001", CategoryOther},
	}
	for _, c := range cases {
		if c.code.ID() != c.id {
			t.Errorf("%d.ID() = %s, want %s", c.code, c.code.ID(), c.id)
		}
		if c.code.Category() != c.cat {
			t.Errorf("%s category = %v, want %v", c.id, c.code.Category(), c.cat)
		}
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(4)
	b := ReportError(BagReporter{Bag: bag}, SynUnclosedDelimiter, source.Span{Start: 5, End: 5}, "'end' expected").
		WithNote(source.Span{Start: 0, End: 8}, "to close 'function'").
		WithFix("insert 'end'", InsertText(0, 5, " end"))
	b.Emit()
	b.Emit()

	if bag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", bag.Len())
	}
	d := bag.Items()[0]
	if len(d.Notes) != 1 || len(d.Fixes) != 1 || d.Fixes[0].Edits[0].NewText != " end" {
		t.Fatalf("notes/fixes lost: %+v", d)
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(4)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{Start: 1, End: 2}
	r.Report(SynUnexpectedToken, SevError, sp, "m", nil, nil)
	r.Report(SynUnexpectedToken, SevError, sp, "m", nil, nil)
	r.Report(SynUnexpectedToken, SevError, sp, "other", nil, nil)
	r.Report(SynUnexpectedToken, SevInfo, sp, "m", nil, nil)
	r.Report(SynUnexpectedToken, SevError, source.Span{File: 1, Start: 1, End: 2}, "m", nil, nil)
	if bag.Len() != 4 {
		t.Fatalf("len = %d", bag.Len())
	}
}

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSetWithBase("/workspace")

	userFile := fs.Add("/workspace/testdata/golden/sample.lua", []byte("a\nb\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: userFile, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: userFile, Start: 2, End: 3}, Msg: "note line"},
			},
		},
		{
			Severity: SevWarning,
			Code:     SynExpectCall,
			Message:  "another",
			Primary:  source.Span{File: userFile, Start: 2, End: 3},
		},
	}

	expected := "error SYN2001 testdata/golden/sample.lua:1:1 first line second\n" +
		"note SYN2001 testdata/golden/sample.lua:2:1 note line\n" +
		"warning SYN2005 testdata/golden/sample.lua:2:1 another"

	if got := FormatGoldenDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}
