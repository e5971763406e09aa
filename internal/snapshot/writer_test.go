package snapshot

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/username/jp-holidays/internal/calendar"
	"go.uber.org/zap"
)

func testCalendar() *calendar.Calendar {
	return calendar.New([]calendar.Holiday{
		{Date: calendar.Date{Year: 1955, Month: time.January, Day: 1}, Name: "元日"},
		{Date: calendar.Date{Year: 1955, Month: time.January, Day: 15}, Name: "成人の日"},
		{Date: calendar.Date{Year: 1955, Month: time.March, Day: 21}, Name: "春分の日"},
	})
}

func readJSON(t *testing.T, fs afero.Fs, path string, v any) {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("Unmarshal(%s) error = %v", path, err)
	}
}

func TestNewResponse(t *testing.T) {
	cal := testCalendar()

	tests := []struct {
		name        string
		date        calendar.Date
		wantName    string
		wantWeekday string
		wantJa      string
		wantPublic  bool
	}{
		{"Holiday on Saturday", calendar.Date{Year: 1955, Month: time.January, Day: 1}, "元日", "Saturday", "土", true},
		{"Plain Sunday", calendar.Date{Year: 1955, Month: time.January, Day: 2}, "", "Sunday", "日", false},
		{"Plain Wednesday", calendar.Date{Year: 1955, Month: time.January, Day: 5}, "", "Wednesday", "水", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewResponse(cal, tt.date)

			if tt.wantPublic {
				if resp.Name == nil || *resp.Name != tt.wantName {
					t.Errorf("Name = %v, want %q", resp.Name, tt.wantName)
				}
			} else if resp.Name != nil {
				t.Errorf("Name = %q, want nil", *resp.Name)
			}
			if resp.Date != tt.date.String() {
				t.Errorf("Date = %s, want %s", resp.Date, tt.date)
			}
			if resp.DayOfWeek != tt.wantWeekday || resp.DayOfWeekJa != tt.wantJa {
				t.Errorf("weekday = %s/%s, want %s/%s", resp.DayOfWeek, resp.DayOfWeekJa, tt.wantWeekday, tt.wantJa)
			}
			if resp.Public != tt.wantPublic || resp.Holiday != tt.wantPublic {
				t.Errorf("Public/Holiday = %v/%v, want %v", resp.Public, resp.Holiday, tt.wantPublic)
			}
		})
	}
}

func TestNewResponse_JSONShape(t *testing.T) {
	resp := NewResponse(testCalendar(), calendar.Date{Year: 1955, Month: time.January, Day: 2})

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"name":null,"date":"1955-01-02","year":1955,"month":1,"day":2,"day_of_week":"Sunday","day_of_week_ja":"日","public":false,"holiday":false}`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}

func TestWriter_Write(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, "/dist/api/v1", zap.NewNop())

	summary, err := w.Write(testCalendar(), false)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	// 1955-01-01 .. 1955-03-21 inclusive
	if summary.Days != 31+28+21 {
		t.Errorf("Days = %d, want %d", summary.Days, 31+28+21)
	}
	if summary.Months != 3 || summary.Years != 1 {
		t.Errorf("Months/Years = %d/%d, want 3/1", summary.Months, summary.Years)
	}

	var day Response
	readJSON(t, fs, "/dist/api/v1/1955-01-15.json", &day)
	if day.Name == nil || *day.Name != "成人の日" || !day.Holiday {
		t.Errorf("1955-01-15 = %+v", day)
	}

	readJSON(t, fs, "/dist/api/v1/1955-01-16.json", &day)
	if day.Name != nil || day.Holiday || day.Public {
		t.Errorf("1955-01-16 = %+v", day)
	}

	var month ResponseList
	readJSON(t, fs, "/dist/api/v1/1955-01.json", &month)
	if len(month.Results) != 2 {
		t.Errorf("1955-01 results = %d, want 2", len(month.Results))
	}

	readJSON(t, fs, "/dist/api/v1/1955-02.json", &month)
	if month.Results == nil || len(month.Results) != 0 {
		t.Errorf("1955-02 results = %v, want empty list", month.Results)
	}

	var year ResponseList
	readJSON(t, fs, "/dist/api/v1/1955.json", &year)
	if len(year.Results) != 3 {
		t.Errorf("1955 results = %d, want 3", len(year.Results))
	}

	var list ResponseList
	readJSON(t, fs, "/dist/api/v1/list.json", &list)
	if len(list.Results) != 3 || list.Results[0].Date != "1955-01-01" || list.Results[2].Date != "1955-03-21" {
		t.Errorf("list = %+v", list.Results)
	}

	if ok, _ := afero.Exists(fs, "/dist/api/v1/1955-03-22.json"); ok {
		t.Error("wrote a day past the last holiday")
	}
}

func TestWriter_Clean(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/out/stale.json", []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewWriter(fs, "/out", zap.NewNop()).Write(testCalendar(), true); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if ok, _ := afero.Exists(fs, "/out/stale.json"); ok {
		t.Error("stale file survived clean")
	}
	if ok, _ := afero.Exists(fs, "/out/list.json"); !ok {
		t.Error("list.json missing")
	}
}

func TestWriter_EmptyCalendar(t *testing.T) {
	w := NewWriter(afero.NewMemMapFs(), "/out", zap.NewNop())
	if _, err := w.Write(calendar.New(nil), false); err == nil {
		t.Error("Write() expected error for empty calendar")
	}
}
