package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSeedRequestDropsNonStringNames(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected NameList
	}{
		{"all strings", `{"names":["Alice","Bob"]}`, NameList{"Alice", "Bob"}},
		{"mixed entries", `{"names":["Alice",5,null,{"n":1},true,"Bob"]}`, NameList{"Alice", "Bob"}},
		{"only non-strings", `{"names":[1,2,3]}`, NameList{}},
		{"null list", `{"names":null}`, nil},
		{"missing list", `{}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req SeedRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(req.Names, tt.expected) {
				t.Errorf("expected %#v, got %#v", tt.expected, req.Names)
			}
		})
	}
}

func TestSeedRequestRejectsNonArrayNames(t *testing.T) {
	for _, body := range []string{`{"names":"Alice"}`, `{"names":42}`, `{"names":{"a":"b"}}`} {
		var req SeedRequest
		if err := json.Unmarshal([]byte(body), &req); err == nil {
			t.Errorf("expected error for %s", body)
		}
	}
}
