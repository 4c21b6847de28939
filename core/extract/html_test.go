package extract

import "testing"

func TestExtractHTML_Table(t *testing.T) {
	html := `<html><body>
<table>
 <tr><th>ID</th><th>Name</th></tr>
 <tr><td>1</td><td>Alice</td></tr>
 <tr><td>2</td><td>Bob</td></tr>
</table>
</body></html>`

	res := extractHTML([]byte(html))
	if !res.IsTable() {
		t.Fatalf("expected table result, got %+v", res)
	}
	if res.Table.Columns[0] != "ID" || res.Table.Columns[1] != "Name" {
		t.Fatalf("columns = %v", res.Table.Columns)
	}
	if len(res.Table.Rows) != 2 || res.Table.Rows[0]["Name"] != "Alice" {
		t.Fatalf("rows = %v", res.Table.Rows)
	}
}

func TestExtractHTML_TwoTablesConcatenate(t *testing.T) {
	html := `<html><body>
<table><tr><th>ID</th><th>Name</th></tr><tr><td>1</td><td>Alice</td></tr></table>
<table><tr><th>Key</th><th>Label</th></tr><tr><td>2</td><td>Bob</td></tr></table>
</body></html>`

	res := extractHTML([]byte(html))
	if !res.IsTable() {
		t.Fatalf("expected table result")
	}
	// Equal column counts align by position under the first header.
	if len(res.Table.Columns) != 2 {
		t.Fatalf("columns = %v, want 2", res.Table.Columns)
	}
	if len(res.Table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(res.Table.Rows))
	}
	if res.Table.Rows[1]["Name"] != "Bob" {
		t.Fatalf("row 1 Name = %q, want Bob", res.Table.Rows[1]["Name"])
	}
}

func TestExtractHTML_NoTableFallsBackToLines(t *testing.T) {
	html := `<html><body>
<nav>skip this</nav>
<p>Alpha beta</p>
<p>Gamma</p>
</body></html>`

	res := extractHTML([]byte(html))
	if !res.IsLines() {
		t.Fatalf("expected line result, got %+v", res)
	}
	joined := ""
	for _, l := range res.Lines {
		joined += l + "\n"
		if l == "skip this" {
			t.Fatalf("noise element survived extraction")
		}
	}
	if len(res.Lines) == 0 {
		t.Fatalf("no lines extracted from %q", joined)
	}
}
