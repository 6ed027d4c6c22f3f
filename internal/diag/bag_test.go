package diag

import (
	"testing"

	"jsmin/internal/source"
)

func TestBag_LimitAndErrors(t *testing.T) {
	bag := NewBag(2)
	r := &BagReporter{Bag: bag}
	r.Report(SynUnexpectedToken, SevWarning, source.Span{Start: 1, End: 2}, "a", nil)
	if bag.HasErrors() {
		t.Fatalf("warning must not count as error")
	}
	if !bag.HasWarnings() {
		t.Fatalf("expected a warning")
	}
	r.Report(SynExpectSemicolon, SevError, source.Span{Start: 3, End: 4}, "b", nil)
	r.Report(SynExpectSemicolon, SevError, source.Span{Start: 5, End: 6}, "c", nil)
	if bag.Len() != 2 {
		t.Errorf("expected limit of 2, got %d", bag.Len())
	}
	if !bag.HasErrors() {
		t.Errorf("expected errors")
	}
}

func TestBag_SortAndDedup(t *testing.T) {
	bag := NewBag(10)
	bag.Add(NewError(SynExpectRParen, source.Span{Start: 9, End: 10}, "late"))
	bag.Add(NewError(SynExpectRParen, source.Span{Start: 1, End: 2}, "early"))
	bag.Add(NewError(SynExpectRParen, source.Span{Start: 1, End: 2}, "dup"))
	bag.Sort()
	bag.Dedup()

	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 diagnostics after dedup, got %d", len(items))
	}
	if items[0].Message != "early" || items[1].Message != "late" {
		t.Errorf("unexpected order: %q, %q", items[0].Message, items[1].Message)
	}
}

func TestCode_ID(t *testing.T) {
	tests := map[Code]string{
		LexBadNumber:       "LEX1004",
		SynUnexpectedToken: "SYN2001",
		IOLoadFileError:    "IO4001",
		UnknownCode:        "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
}
