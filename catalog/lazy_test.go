package catalog

import (
	"testing"

	"htmldata/htmltype"
)

func TestLazyTypeResolvesOnce(t *testing.T) {
	calls := 0
	cell := LazyType(func() htmltype.Type {
		calls++
		return htmltype.BooleanType()
	})
	first := cell.Get()
	second := cell.Get()
	if calls != 1 {
		t.Fatalf("resolve ran %d times, expected 1", calls)
	}
	if !first.Equal(second) || !first.Equal(htmltype.BooleanType()) {
		t.Errorf("expected boolean from both calls, got %v then %v", first, second)
	}
}

func TestLazyTypeNotResolvedUntilGet(t *testing.T) {
	calls := 0
	cell := LazyType(func() htmltype.Type {
		calls++
		return htmltype.StringType()
	})
	if calls != 0 {
		t.Fatalf("resolve ran before Get")
	}
	cell.Get()
	if calls != 1 {
		t.Fatalf("resolve ran %d times, expected 1", calls)
	}
}

func TestStaticType(t *testing.T) {
	cell := StaticType(htmltype.UnionType("a", "b"))
	if !cell.Get().Equal(htmltype.UnionType("a", "b")) {
		t.Errorf("static cell returned %v", cell.Get())
	}
}

func TestNilCellIsWildcard(t *testing.T) {
	var cell *TypeCell
	if !cell.Get().IsAny() {
		t.Error("nil cell should read as the wildcard type")
	}
}
