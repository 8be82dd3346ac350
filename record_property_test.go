package druginfo

import (
	"encoding/json"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestProperty_PercentageBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.Float64Range(-50, 150).Draw(t, "confidence")

		m := validRecordMap()
		timeline := m["tolerance"].(map[string]any)["timeline"].([]any)
		timeline[0].(map[string]any)["confidence"] = value

		_, err := FromMap(m)
		inBounds := value >= 0 && value <= 100
		if inBounds && err != nil {
			t.Fatalf("confidence %v rejected: %v", value, err)
		}
		if !inBounds && err == nil {
			t.Fatalf("confidence %v accepted", value)
		}
	})
}

func TestProperty_RatioBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.Float64Range(-1, 2).Draw(t, "ratio")

		m := validRecordMap()
		cross := m["tolerance"].(map[string]any)["cross_tolerances"].([]any)
		cross[0].(map[string]any)["ratio"] = value

		_, err := FromMap(m)
		inBounds := value >= 0 && value <= 1
		if inBounds != (err == nil) {
			t.Fatalf("ratio %v: in bounds %v, err %v", value, inBounds, err)
		}
	})
}

// The domain ban holds for every casing of the banned host.
func TestProperty_BannedDomainAnyCasing(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		host := []byte(BannedDomain)
		for i, c := range host {
			if rapid.Bool().Draw(t, "upper") && c >= 'a' && c <= 'z' {
				host[i] = c - 'a' + 'A'
			}
		}
		path := rapid.StringMatching(`[a-z]{0,8}`).Draw(t, "path")
		url := "https://" + string(host) + "/" + path

		m := validRecordMap()
		m["search_url"] = url

		if _, err := FromMap(m); err == nil {
			t.Fatalf("banned URL %q accepted", url)
		}
	})
}

// Round-tripping a valid record through Parse never changes it.
func TestProperty_ParseRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := validRecordMap()
		m["drug_name"] = rapid.StringMatching(`[a-z]{1,16}`).Draw(t, "name")
		m["half_life"] = rapid.StringMatching(`[1-9] hours`).Draw(t, "halfLife")

		record, err := FromMap(m)
		if err != nil {
			t.Fatalf("fixture rejected: %v", err)
		}

		data, err := json.Marshal(record)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		again, err := Parse(data)
		if err != nil {
			t.Fatalf("reparse: %v", err)
		}
		if again.DrugName != record.DrugName || again.HalfLife != record.HalfLife {
			t.Fatalf("round trip changed record: %v != %v", again, record)
		}
	})
}

// Sentence counting is insensitive to trailing whitespace.
func TestProperty_NotesTrailingWhitespace(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pad := strings.Repeat(" ", rapid.IntRange(0, 5).Draw(t, "pad"))
		notes := "One. Two. Three." + pad

		m := validRecordMap()
		m["notes"] = notes
		if _, err := FromMap(m); err != nil {
			t.Fatalf("notes %q rejected: %v", notes, err)
		}
	})
}
