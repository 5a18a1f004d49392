package dto

import (
	"reflect"
	"testing"
)

func TestParseDistrictsJSONArray(t *testing.T) {
	got := ParseDistricts(`["Mysuru"," Hassan ",""]`)
	want := []string{"Mysuru", "Hassan"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseDistrictsCSV(t *testing.T) {
	got := ParseDistricts("Mysuru, Hassan ,,Kolar")
	want := []string{"Mysuru", "Hassan", "Kolar"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseDistrictsEmpty(t *testing.T) {
	if got := ParseDistricts("  "); got != nil {
		t.Errorf("blank input should yield nil, got %v", got)
	}
	if got := ParseDistricts("[]"); len(got) != 0 {
		t.Errorf("empty array should yield no districts, got %v", got)
	}
}

func TestParseKeepSet(t *testing.T) {
	s := `["namur/ads/a.webp","namur/ads/b.webp"]`
	keep := ParseKeepSet(&s)
	if len(keep) != 2 {
		t.Fatalf("want 2 keys, got %d", len(keep))
	}
	if _, ok := keep["namur/ads/a.webp"]; !ok {
		t.Error("missing key a")
	}

	if keep := ParseKeepSet(nil); len(keep) != 0 {
		t.Errorf("nil input keeps nothing, got %v", keep)
	}

	bad := `not json`
	if keep := ParseKeepSet(&bad); len(keep) != 0 {
		t.Errorf("unparseable input keeps nothing, got %v", keep)
	}
}
