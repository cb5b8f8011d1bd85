package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintJSON(&buf, map[string]any{"nickname": "<Potato>"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := "{\n  \"nickname\": \"<Potato>\"\n}\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestApplyJQWithJSONNumbers(t *testing.T) {
	data := map[string]any{
		"data": []any{
			map[string]any{"account_id": json.Number("1000123456"), "nickname": "PotatoSquad"},
			map[string]any{"account_id": json.Number("42"), "nickname": "Other"},
		},
	}

	var buf bytes.Buffer
	if err := ApplyJQ(&buf, data, ".data[].account_id"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if buf.String() != "1000123456\n42\n" {
		t.Errorf("Expected account ids, got %q", buf.String())
	}
}

func TestApplyJQErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := ApplyJQ(&buf, map[string]any{}, ".data["); err == nil {
		t.Error("Expected parse error")
	}
	if err := ApplyJQ(&buf, map[string]any{"a": "x"}, ".a + 1"); err == nil {
		t.Error("Expected evaluation error")
	}
}

func TestApplyTemplate(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]any{"nickname": "PotatoSquad"}
	if err := ApplyTemplate(&buf, data, "{{.nickname}}"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if buf.String() != "PotatoSquad" {
		t.Errorf("Expected 'PotatoSquad', got %q", buf.String())
	}
}

func TestFilterFields(t *testing.T) {
	data := []map[string]any{
		{"account_id": 1, "nickname": "a", "created_at": 5},
		{"account_id": 2, "nickname": "b"},
	}
	got := FilterFields(data, []string{"nickname"})
	if len(got) != 2 || len(got[0]) != 1 || got[1]["nickname"] != "b" {
		t.Errorf("Unexpected filter result %v", got)
	}

	single := FilterFieldsSingle(data[0], []string{"account_id", "missing"})
	if len(single) != 1 || single["account_id"] != 1 {
		t.Errorf("Unexpected single filter result %v", single)
	}
}

func TestFlatten(t *testing.T) {
	data := map[string]any{
		"nickname": "PotatoSquad",
		"statistics": map[string]any{
			"battles": json.Number("120"),
			"pvp": map[string]any{
				"wins": json.Number("64"),
			},
		},
		"hidden_profile": false,
		"tags":           []any{"a", "b"},
	}

	keys, flat := Flatten(data)
	expectedKeys := []string{"hidden_profile", "nickname", "statistics.battles", "statistics.pvp.wins", "tags"}
	if strings.Join(keys, ",") != strings.Join(expectedKeys, ",") {
		t.Errorf("Expected keys %v, got %v", expectedKeys, keys)
	}
	if flat["statistics.pvp.wins"] != "64" {
		t.Errorf("Expected wins 64, got %q", flat["statistics.pvp.wins"])
	}
	if flat["tags"] != `["a","b"]` {
		t.Errorf("Expected inline array, got %q", flat["tags"])
	}
	if flat["hidden_profile"] != "false" {
		t.Errorf("Expected 'false', got %q", flat["hidden_profile"])
	}
}

func TestPrintTableNonTTY(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, []string{"ACCOUNT_ID", "NICKNAME"}, [][]string{{"123", "PotatoSquad"}}, false)

	expected := "ACCOUNT_ID\tNICKNAME\n123\tPotatoSquad\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestPrintTableTTY(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, []string{"ACCOUNT_ID", "NICKNAME"}, [][]string{{"123", "PotatoSquad"}}, true)

	out := buf.String()
	if !strings.Contains(out, "PotatoSquad") || !strings.Contains(out, "123") {
		t.Errorf("Expected rendered table to contain the row, got %q", out)
	}
}

func TestPrintCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintCSV(&buf, []string{"ID", "NAME"}, [][]string{{"1", "Yamato, IJN"}}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := "ID,NAME\n1,\"Yamato, IJN\"\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestPrintJSONL(t *testing.T) {
	var buf bytes.Buffer
	rows := []map[string]any{{"id": 1}, {"id": 2}}
	if err := PrintJSONL(&buf, rows); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if buf.String() != "{\"id\":1}\n{\"id\":2}\n" {
		t.Errorf("Unexpected JSONL output %q", buf.String())
	}
}

func TestPrintTableFlattensMultilineCells(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, []string{"TYPE", "DESCRIPTION"}, [][]string{{"pvp", "Random\nbattles\twith players"}}, false)

	expected := "TYPE\tDESCRIPTION\npvp\tRandom battles with players\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestPrintCSVKeepsNewlines(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintCSV(&buf, []string{"ID", "DESCRIPTION"}, [][]string{{"1", "two\nlines"}}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := "ID,DESCRIPTION\n1,\"two\nlines\"\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestJSONLWriterDoesNotEscapeHTML(t *testing.T) {
	var buf bytes.Buffer
	jw := NewJSONLWriter(&buf)
	if err := jw.Write(map[string]any{"tag": "<KSD>"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if buf.String() != "{\"tag\":\"<KSD>\"}\n" {
		t.Errorf("Unexpected JSONL output %q", buf.String())
	}
}
