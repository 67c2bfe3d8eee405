package render

import (
	"strings"
	"testing"
)

type zoneRow struct {
	Zone string
	Time string
}

type nested struct {
	Outer string
	Inner struct {
		Field int
	}
}

func TestToTable(t *testing.T) {
	rows := []zoneRow{
		{Zone: "UTC", Time: "2021-05-01T01:17:02Z"},
		{Zone: "America/Chicago", Time: "2021-04-30T20:17:02-05:00"},
	}
	out := ToTable(rows, []string{"Zone", "Time"}, TableOptions{})
	if out == "" {
		t.Fatal("expected non-empty table output")
	}
	for _, want := range []string{"Zone", "Time", "UTC", "America/Chicago"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected table output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestToTableEmptyInputs(t *testing.T) {
	if out := ToTable([]zoneRow{}, []string{"Zone"}, TableOptions{}); out != "" {
		t.Fatalf("expected empty output for empty struct slice, got %q", out)
	}
	if out := ToTable([]zoneRow{{Zone: "UTC"}}, nil, TableOptions{}); out != "" {
		t.Fatalf("expected empty output for nil columns, got %q", out)
	}
}

func TestToTableAliases(t *testing.T) {
	rows := []zoneRow{{Zone: "UTC", Time: "now"}}
	out := ToTable(rows, []string{"Zone", "Time"}, TableOptions{
		Aliases: map[string]string{"Zone": "Timezone"},
	})
	if !strings.Contains(out, "Timezone") {
		t.Fatalf("expected aliased header \"Timezone\" in output:\n%s", out)
	}
}

func TestFindQualifiedField(t *testing.T) {
	var n nested
	field, found, index, err := FindQualifiedField[any]("Inner.Field", n)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("expected to find Inner.Field")
	}
	if field.Name != "Field" {
		t.Fatalf("expected field name Field, got %q", field.Name)
	}
	if len(index) == 0 {
		t.Fatal("expected a non-empty index path")
	}
}

func TestFindQualifiedFieldMissing(t *testing.T) {
	var n nested
	_, found, _, err := FindQualifiedField[any]("Nonexistent", n)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("expected Nonexistent to not be found")
	}
}

func TestFindQualifiedFieldNotAStruct(t *testing.T) {
	if _, _, _, err := FindQualifiedField[any]("Zone", 5); err == nil {
		t.Fatal("expected an error when st is not a struct")
	}
}

func TestStructFields(t *testing.T) {
	cols, err := StructFields(zoneRow{}, true)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Zone", "Time"}
	if len(cols) != len(want) {
		t.Fatalf("got %v, want %v", cols, want)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Fatalf("got %v, want %v", cols, want)
		}
	}
}

func TestStructFieldsNested(t *testing.T) {
	cols, err := StructFields(nested{}, true)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Outer", "Inner.Field"}
	if len(cols) != len(want) {
		t.Fatalf("got %v, want %v", cols, want)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Fatalf("got %v, want %v", cols, want)
		}
	}
}
