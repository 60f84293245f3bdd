package level

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gridlock/internal/core"
)

const goodTable = `x,y,dir,turn
0,2,2,0
-3,1,3,0
2,-2,0,4
`

func TestParseValidTable(t *testing.T) {
	placements, err := Parse(strings.NewReader(goodTable))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(placements) != 3 {
		t.Fatalf("got %d placements, want 3", len(placements))
	}
	first := placements[0]
	if first.X != 0 || first.Y != 2 || first.Dir != core.Down || first.Turn != 0 {
		t.Errorf("first placement = %+v", first)
	}
	if placements[2].Turn != 4 {
		t.Errorf("third placement turn = %d, want 4", placements[2].Turn)
	}
}

func TestParseWrongColumnCount(t *testing.T) {
	table := "x,y,dir,turn\n1,2,3\n"
	if _, err := Parse(strings.NewReader(table)); err == nil {
		t.Error("short row accepted")
	}

	table = "x,y,dir\n"
	if _, err := Parse(strings.NewReader(table)); err == nil {
		t.Error("three-column header accepted")
	}
}

func TestParseMalformedInteger(t *testing.T) {
	table := "x,y,dir,turn\n1,north,2,0\n"
	placements, err := Parse(strings.NewReader(table))
	if err == nil {
		t.Fatal("non-integer field accepted")
	}
	if placements != nil {
		t.Error("malformed load still yielded data")
	}
}

func TestParseBadDirectionCode(t *testing.T) {
	table := "x,y,dir,turn\n1,1,7,0\n"
	if _, err := Parse(strings.NewReader(table)); err == nil {
		t.Error("direction code 7 accepted")
	}
}

func TestParseEmptyTable(t *testing.T) {
	placements, err := Parse(strings.NewReader("x,y,dir,turn\n"))
	if err != nil {
		t.Fatalf("header-only table failed: %v", err)
	}
	if len(placements) != 0 {
		t.Errorf("header-only table yielded %d placements", len(placements))
	}

	if _, err := Parse(strings.NewReader("")); err == nil {
		t.Error("empty input accepted")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level.csv")
	if err := os.WriteFile(path, []byte(goodTable), 0o644); err != nil {
		t.Fatal(err)
	}
	placements, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if len(placements) != 3 {
		t.Errorf("got %d placements, want 3", len(placements))
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.csv")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestInitialProjectiles(t *testing.T) {
	placements, err := Parse(strings.NewReader(goodTable))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	initial := InitialProjectiles(placements)
	if len(initial) != 2 {
		t.Fatalf("got %d initial projectiles, want 2", len(initial))
	}
	for _, p := range initial {
		if p.Pos == (core.Point{X: 2, Y: -2}) {
			t.Error("turn-4 placement included in initial projectiles")
		}
	}
}
