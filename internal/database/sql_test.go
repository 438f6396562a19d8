package database

import "testing"

func TestSplitStatements(t *testing.T) {
	script := `
-- leading comment
CREATE TABLE a (x INTEGER);

CREATE TABLE b (
    y VARCHAR(10) -- trailing comment
);
INSERT INTO b VALUES ('semi;colon');
`
	stmts := SplitStatements(script)
	if len(stmts) != 3 {
		t.Fatalf("got %d statements, want 3: %q", len(stmts), stmts)
	}
	if stmts[0] != "CREATE TABLE a (x INTEGER)" {
		t.Errorf("first statement = %q", stmts[0])
	}
	if stmts[2] != "INSERT INTO b VALUES ('semi;colon')" {
		t.Errorf("quoted semicolon was split: %q", stmts[2])
	}
}

func TestSplitStatementsEscapedQuotes(t *testing.T) {
	script := `INSERT INTO r VALUES ('it''s; fine');INSERT INTO r VALUES ('a''''b;c');`
	stmts := SplitStatements(script)
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2: %q", len(stmts), stmts)
	}
	if stmts[0] != `INSERT INTO r VALUES ('it''s; fine')` {
		t.Errorf("escaped quote mishandled: %q", stmts[0])
	}
	if stmts[1] != `INSERT INTO r VALUES ('a''''b;c')` {
		t.Errorf("doubled escape mishandled: %q", stmts[1])
	}
}

func TestSplitStatementsDashesInString(t *testing.T) {
	script := "INSERT INTO r VALUES ('a--b;c');\nSELECT 1;"
	stmts := SplitStatements(script)
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2: %q", len(stmts), stmts)
	}
	if stmts[0] != "INSERT INTO r VALUES ('a--b;c')" {
		t.Errorf("dashes inside a string treated as a comment: %q", stmts[0])
	}
}

func TestSplitStatementsEmpty(t *testing.T) {
	if stmts := SplitStatements("  \n-- only a comment\n"); len(stmts) != 0 {
		t.Errorf("expected no statements, got %q", stmts)
	}
}

func TestEmbeddedSchemaCoversAllTables(t *testing.T) {
	stmts := SplitStatements(schemaSQL)
	if len(stmts) != 24 {
		t.Errorf("embedded schema has %d statements, want 24", len(stmts))
	}
}
