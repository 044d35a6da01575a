package save

import (
	"encoding/base64"
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/metal-tycoon/internal/catalog"
	"github.com/vovakirdan/metal-tycoon/internal/economy"
	"github.com/vovakirdan/metal-tycoon/internal/loot"
)

// playedState builds a state with some progress through the real rules.
func playedState(t *testing.T) economy.State {
	t.Helper()
	cat := catalog.Default()
	s := economy.NewState(cat)
	s.Coins = 3000
	gen := loot.NewGenerator(cat, rand.New(rand.NewSource(21)))
	l := economy.NewLedger(cat, s, gen, economy.WithClock(func() time.Time {
		return time.UnixMilli(1_700_000_123_456)
	}))

	park, _ := cat.Area("park")
	if err := l.Buy(park); err != nil {
		t.Fatalf("Buy(park): %v", err)
	}
	for i := 0; i < 8; i++ {
		it := gen.GenerateBuriedItem(float64(i), float64(-i), 1+i%3)
		if i%2 == 0 {
			it, _ = gen.RerollVariants(it, 1)
		}
		l.RecordFind(it)
		if err := l.Collect(it); err != nil {
			t.Fatalf("Collect: %v", err)
		}
	}
	l.RecordUpgrade()
	return l.Snapshot()
}

func TestExportImportRoundTrip(t *testing.T) {
	cat := catalog.Default()
	want := playedState(t)

	blob, err := Export(want)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	got, err := Import(cat, blob)
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	if !reflect.DeepEqual(got.Clone(), want.Clone()) {
		t.Errorf("round trip mismatch\n got: %+v\nwant: %+v", got, want)
	}
}

func TestEncodeDecodeFreshState(t *testing.T) {
	cat := catalog.Default()
	want := economy.NewState(cat)

	data, err := Encode(want)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	got, err := Decode(cat, data)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !reflect.DeepEqual(got.Clone(), want.Clone()) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestDecodeMergesDefaults(t *testing.T) {
	cat := catalog.Default()
	got, err := Decode(cat, []byte(`{"coins": 42}`))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got.Coins != 42 || got.DetectorLevel != 1 || got.BagLevel != 1 || got.CurrentArea != "beach" {
		t.Errorf("state = %+v", got)
	}
	if got.Stats.RareFinds == nil {
		t.Error("RareFinds is nil")
	}
}

func TestDecodeResolvesItems(t *testing.T) {
	cat := catalog.Default()
	data := `{"inventory": [
		{"id": "a", "metal": "gold", "variants": ["shiny", "bogus", "large"], "value": 1},
		{"id": "b", "metal": "adamantium"}
	]}`

	got, err := Decode(cat, []byte(data))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(got.Inventory) != 2 {
		t.Fatalf("inventory = %d items", len(got.Inventory))
	}
	gold := got.Inventory[0]
	if gold.Value != 1200 || !reflect.DeepEqual(gold.VariantIDs(), []string{"shiny", "large"}) {
		t.Errorf("gold = %d %v", gold.Value, gold.VariantIDs())
	}
	if got.Inventory[1].Metal.ID != "aluminum" || got.Inventory[1].Value != 1 {
		t.Errorf("unknown metal resolved to %s", got.Inventory[1].Metal.ID)
	}
}

func TestImportClampsUnknownLevels(t *testing.T) {
	cat := catalog.Default()
	blob := base64.StdEncoding.EncodeToString([]byte(`{"coins": 1000000, "detector_level": 99, "bag_level": 42}`))

	got, err := Import(cat, blob)
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	if got.DetectorLevel != 1 || got.BagLevel != 1 {
		t.Fatalf("levels = %d/%d, want starter gear", got.DetectorLevel, got.BagLevel)
	}

	l := economy.NewLedger(cat, got, loot.NewGenerator(cat, rand.New(rand.NewSource(1))))
	mythical, _ := cat.Detector(8)
	if l.Owns(mythical) {
		t.Error("top detector counted as owned")
	}
	scout, _ := cat.Detector(2)
	if err := l.Buy(scout); err != nil {
		t.Fatalf("Buy(scout) error: %v", err)
	}
	if l.CurrentDetector().Level != 2 || l.Generator().RarityBonus() != scout.RarityBonus {
		t.Errorf("detector %d bonus %v", l.CurrentDetector().Level, l.Generator().RarityBonus())
	}
}

func TestDecodeRejectsNewerVersion(t *testing.T) {
	_, err := Decode(catalog.Default(), []byte(`{"version": 99}`))
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("Decode() error = %v, want ErrUnsupportedVersion", err)
	}
}

func TestImportRejectsCorruptBlobs(t *testing.T) {
	b64 := func(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name string
		blob string
	}{
		{name: "not base64", blob: "%%%not-base64%%%"},
		{name: "not json", blob: b64("hello there")},
		{name: "truncated json", blob: b64(`{"coins": 5`)},
		{name: "negative coins", blob: b64(`{"coins": -5}`)},
		{name: "coins as string", blob: b64(`{"coins": "lots"}`)},
		{name: "item without metal", blob: b64(`{"inventory": [{"id": "x"}]}`)},
		{name: "zero detector", blob: b64(`{"detector_level": 0}`)},
		{name: "future version", blob: b64(`{"version": 2}`)},
		{name: "empty", blob: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Import(catalog.Default(), tc.blob)
			if !errors.Is(err, ErrInvalidSave) {
				t.Errorf("Import() error = %v, want ErrInvalidSave", err)
			}
		})
	}
}

func TestExportIsPlainBase64JSON(t *testing.T) {
	blob, err := Export(economy.NewState(catalog.Default()))
	if err != nil {
		t.Fatal(err)
	}
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		t.Fatalf("not std base64: %v", err)
	}
	if !strings.HasPrefix(string(raw), `{"version":1,`) {
		t.Errorf("unexpected payload %s", raw)
	}
}
