package deck

import "testing"

func TestClassesByStrength(t *testing.T) {
	classes := ClassesByStrength()

	if len(classes) != 169 {
		t.Fatalf("got %d classes, want 169", len(classes))
	}
	if classes[0] != "AA" {
		t.Errorf("strongest class = %s, want AA", classes[0])
	}
	if classes[len(classes)-1] != "72o" {
		t.Errorf("weakest class = %s, want 72o", classes[len(classes)-1])
	}

	// The ordering must match the fixed percentile ranking.
	prev := 2.0
	for _, class := range classes {
		p, ok := ClassPercentile(class)
		if !ok {
			t.Fatalf("class %s has no percentile", class)
		}
		if p > prev {
			t.Errorf("class %s percentile %.3f out of order (previous %.3f)", class, p, prev)
		}
		prev = p
	}
}

func TestHandClass(t *testing.T) {
	tests := []struct {
		cards string
		want  string
	}{
		{"AsKs", "AKs"},
		{"AsKd", "AKo"},
		{"KdAs", "AKo"}, // higher rank first regardless of input order
		{"TsTh", "TT"},
		{"7h2c", "72o"},
		{"2c7h", "72o"},
	}

	for _, tt := range tests {
		cards := MustParseCards(tt.cards)
		if got := HandClass(cards[0], cards[1]); got != tt.want {
			t.Errorf("HandClass(%s) = %s, want %s", tt.cards, got, tt.want)
		}
	}
}

func TestClassCombos(t *testing.T) {
	tests := []struct {
		class   string
		count   int
		wantErr bool
	}{
		{class: "AA", count: 6},
		{class: "AKs", count: 4},
		{class: "AKo", count: 12},
		{class: "72o", count: 12},
		{class: "AAs", wantErr: true}, // pairs have no modifier
		{class: "AK", wantErr: true},  // unpaired hands need one
		{class: "Xx", wantErr: true},
		{class: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			combos, err := ClassCombos(tt.class)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ClassCombos(%q) error = %v, wantErr %v", tt.class, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(combos) != tt.count {
				t.Errorf("ClassCombos(%q) returned %d combos, want %d", tt.class, len(combos), tt.count)
			}
			for _, combo := range combos {
				if combo[0] == combo[1] {
					t.Errorf("combo contains duplicate card %s", combo[0])
				}
				if HandClass(combo[0], combo[1]) != tt.class {
					t.Errorf("combo %v does not belong to class %s", combo, tt.class)
				}
			}
		})
	}
}
