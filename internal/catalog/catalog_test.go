package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/informaticalaredo/GrowthMaster/internal/model"
)

func TestDefault_Contents(t *testing.T) {
	c := Default()
	if c.Len() != 14 {
		t.Fatalf("expected 14 actions, got %d", c.Len())
	}
	a, ok := c.Lookup("landing_page")
	if !ok {
		t.Fatal("landing_page not found")
	}
	if a.Cost != 2000 || !a.OneTime {
		t.Errorf("unexpected landing_page: %+v", a)
	}
	if _, ok := c.Lookup("nope"); ok {
		t.Error("unexpected lookup hit for unknown id")
	}
}

func TestFilter_DeclarationOrderAndUnknownIgnored(t *testing.T) {
	c := Default()
	got := c.Filter(model.NewActionSet("post_sale_followup", "seo_opt", "ghost"))
	if len(got) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(got))
	}
	if got[0].ID != "seo_opt" || got[1].ID != "post_sale_followup" {
		t.Errorf("unexpected order: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestNew_DropsDuplicateIDs(t *testing.T) {
	c := New([]model.Action{{ID: "a", Cost: 1}, {ID: "a", Cost: 2}, {ID: "b"}})
	if c.Len() != 2 {
		t.Fatalf("expected 2 actions, got %d", c.Len())
	}
	a, _ := c.Lookup("a")
	if a.Cost != 1 {
		t.Errorf("expected first declaration to win, got cost %.0f", a.Cost)
	}
}

func TestEvents_Table(t *testing.T) {
	evs := Events()
	if len(evs) != 4 {
		t.Fatalf("expected 4 events, got %d", len(evs))
	}
	positive := 0
	for _, e := range evs {
		if e.Polarity == model.PolarityPositive {
			positive++
		}
	}
	if positive != 1 {
		t.Errorf("expected 1 positive event, got %d", positive)
	}
	evs[0].Title = "mutated"
	if Events()[0].Title == "mutated" {
		t.Error("Events must return a copy")
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `actions:
  - id: popup
    name: Exit popup
    category: RECOVERY
    cost: 300
    one_time: true
    impacts:
      - metric: purchaseRate
        multiplier: 1.02
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, ok := c.Lookup("popup")
	if !ok {
		t.Fatal("popup not loaded")
	}
	if a.Category != model.CategoryRecovery || !a.OneTime || len(a.Impacts) != 1 {
		t.Errorf("unexpected action: %+v", a)
	}
	if a.Impacts[0].Metric != model.MetricPurchaseRate || a.Impacts[0].Multiplier != 1.02 {
		t.Errorf("unexpected impact: %+v", a.Impacts[0])
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("actions: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for empty catalog")
	}
}
