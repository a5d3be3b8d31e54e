package models

import (
	"encoding/json"
	"testing"
)

func TestGenres(t *testing.T) {
	t.Run("Value", func(t *testing.T) {
		tc := []struct {
			name   string
			genres Genres
			want   string
		}{
			{name: "nil encodes empty array", genres: nil, want: "[]"},
			{name: "duplicates kept", genres: Genres{"Jazz", "Jazz"}, want: `["Jazz","Jazz"]`},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				got, err := tt.genres.Value()
				if err != nil {
					t.Fatalf("Value() error = %v", err)
				}
				if got != tt.want {
					t.Errorf("Value() = %v, want %v", got, tt.want)
				}
			})
		}
	})

	t.Run("Scan", func(t *testing.T) {
		tc := []struct {
			name    string
			src     any
			want    int
			wantErr bool
		}{
			{name: "null", src: nil, want: 0},
			{name: "empty string", src: "", want: 0},
			{name: "json null", src: "null", want: 0},
			{name: "string", src: `["Jazz","Folk"]`, want: 2},
			{name: "bytes", src: []byte(`["Jazz"]`), want: 1},
			{name: "invalid json", src: "[", wantErr: true},
			{name: "unsupported type", src: 42, wantErr: true},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				var g Genres
				err := g.Scan(tt.src)
				if (err != nil) != tt.wantErr {
					t.Fatalf("Scan() error = %v, wantErr %v", err, tt.wantErr)
				}
				if tt.wantErr {
					return
				}
				if g == nil {
					t.Fatal("Scan() left genres nil")
				}
				if len(g) != tt.want {
					t.Errorf("Scan() len = %d, want %d", len(g), tt.want)
				}
			})
		}
	})

	t.Run("MarshalJSON nil", func(t *testing.T) {
		b, err := json.Marshal(Artist{})
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		var decoded map[string]any
		if err := json.Unmarshal(b, &decoded); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if genres, ok := decoded["genres"].([]any); !ok || len(genres) != 0 {
			t.Errorf("expected empty genres array, got %v", decoded["genres"])
		}
		if decoded["seeking_venue"] != false {
			t.Errorf("expected seeking_venue false, got %v", decoded["seeking_venue"])
		}
	})

	t.Run("Has", func(t *testing.T) {
		g := Genres{"Jazz", "Soul"}
		if !g.Has("Soul") || g.Has("Pop") {
			t.Errorf("Has() mismatch for %v", g)
		}
	})
}

func TestSeeking(t *testing.T) {
	t.Run("SeekingFromForm", func(t *testing.T) {
		tc := []struct {
			name    string
			present bool
			value   string
			want    Seeking
			wantErr bool
		}{
			{name: "absent", present: false, want: NotSeeking},
			{name: "empty", present: true, value: "", want: NotSeeking},
			{name: "checked", present: true, value: "y", want: IsSeeking},
			{name: "other value", present: true, value: "yes", wantErr: true},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				got, err := SeekingFromForm(tt.present, tt.value)
				if (err != nil) != tt.wantErr {
					t.Fatalf("SeekingFromForm() error = %v, wantErr %v", err, tt.wantErr)
				}
				if !tt.wantErr && got != tt.want {
					t.Errorf("SeekingFromForm() = %v, want %v", got, tt.want)
				}
			})
		}
	})

	t.Run("Scan", func(t *testing.T) {
		tc := []struct {
			src  any
			want Seeking
		}{
			{src: nil, want: NotSeeking},
			{src: true, want: IsSeeking},
			{src: false, want: NotSeeking},
			{src: int64(1), want: IsSeeking},
			{src: int64(0), want: NotSeeking},
			{src: "1", want: IsSeeking},
			{src: []byte("true"), want: IsSeeking},
			{src: "", want: NotSeeking},
		}

		for _, tt := range tc {
			var s Seeking
			if err := s.Scan(tt.src); err != nil {
				t.Fatalf("Scan(%v) error = %v", tt.src, err)
			}
			if s != tt.want {
				t.Errorf("Scan(%v) = %v, want %v", tt.src, s, tt.want)
			}
		}
	})

	t.Run("Value", func(t *testing.T) {
		v, _ := IsSeeking.Value()
		if v != true {
			t.Errorf("IsSeeking.Value() = %v, want true", v)
		}
		if !IsSeeking.Checked() || NotSeeking.Checked() {
			t.Error("Checked() mismatch")
		}
	})
}

func TestChoices(t *testing.T) {
	if len(States) != 51 {
		t.Errorf("expected 51 state codes, got %d", len(States))
	}
	if !IsState("MA") || IsState("ma") {
		t.Error("IsState() should match exact codes only")
	}
	if !IsGenre("Rock n Roll") || IsGenre("Polka") {
		t.Error("IsGenre() mismatch")
	}
}
