package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/strewnlab/meteorscope/internal/model"
	"github.com/strewnlab/meteorscope/internal/pipeline"
)

func TestErrorMessageMapsTaxonomy(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"schema", &model.SchemaError{Column: "Mass (g)"}, "missing"},
		{"connection", &model.ConnectionError{Path: "/tmp/x.db", Err: errors.New("no such file")}, "/tmp/x.db"},
		{"empty", &model.EmptyResultError{Stage: "filtering"}, "filtering"},
		{"render", &model.RenderError{View: "worldmap", Err: errors.New("too narrow")}, "worldmap"},
		{"other", errors.New("boom"), "boom"},
	}
	for _, c := range cases {
		got := ErrorMessage(c.err)
		if !strings.Contains(got, c.want) {
			t.Errorf("%s: ErrorMessage(%v) = %q, want substring %q", c.name, c.err, got, c.want)
		}
	}
}

func TestBrowseRecordsSearch(t *testing.T) {
	a := App{
		result: &pipeline.LoadResult{
			Records: []model.Record{
				{Name: "Hoba"},
				{Name: "Aachen"},
				{Name: "Zagami"},
				{Name: "Zag"},
			},
		},
	}

	a.browser.searchQuery = "zag"
	got := a.browseRecords()
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for %q, got %d", "zag", len(got))
	}
	if got[0].Name != "Zagami" || got[1].Name != "Zag" {
		t.Errorf("search should preserve input order, got %v", got)
	}

	a.browser.searchQuery = ""
	if len(a.browseRecords()) != 4 {
		t.Error("empty query should return all records")
	}
}

func TestBrowserStateClamp(t *testing.T) {
	st := newBrowserState(10)
	st.cursor = 42
	st.offset = 30
	st.clamp(5)
	if st.cursor != 4 {
		t.Errorf("cursor should clamp to last row, got %d", st.cursor)
	}
	if st.offset > st.cursor {
		t.Errorf("offset %d must not pass cursor %d", st.offset, st.cursor)
	}

	st.clamp(0)
	if st.cursor != 0 {
		t.Errorf("cursor should clamp to 0 on empty list, got %d", st.cursor)
	}
}

func TestNewBrowserStateRowsBounds(t *testing.T) {
	if st := newBrowserState(0); st.rows != 10 {
		t.Errorf("expected default 10 rows, got %d", st.rows)
	}
	if st := newBrowserState(500); st.rows != maxBrowseRows {
		t.Errorf("expected clamp to %d, got %d", maxBrowseRows, st.rows)
	}
}
