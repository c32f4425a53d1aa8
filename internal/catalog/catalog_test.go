package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fudosan-labs/estate-advisor/internal/core/domain"
)

func TestDefaultCatalogHasFiveListings(t *testing.T) {
	c := Default()
	if c.Len() != 5 {
		t.Fatalf("expected 5 listings, got %d", c.Len())
	}
	for _, id := range []string{"beginner_001", "beginner_002", "experienced_001", "semipro_001", "pro_001"} {
		if _, ok := c.ByID(id); !ok {
			t.Fatalf("expected listing %s in default catalog", id)
		}
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]domain.Property{{ID: "a"}, {ID: "a"}})
	if err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestNewRejectsMissingID(t *testing.T) {
	_, err := New([]domain.Property{{Name: "no id"}})
	if err == nil {
		t.Fatalf("expected missing id error")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := Default()
	first := c.All()
	first[0].Price = -1

	again, ok := c.ByID(first[0].ID)
	if !ok {
		t.Fatalf("listing disappeared")
	}
	if again.Price == -1 {
		t.Fatalf("catalog mutated through All() result")
	}
}

func TestLoadFile(t *testing.T) {
	const content = `
properties:
  - id: test_001
    name: テスト物件
    location:
      prefecture: 北海道
      city: 札幌市
      nearest_station: JR札幌駅
      walking_minutes: 4
    price: 2000
    monthly_rent: 8
    yearly_rent: 96
    gross_yield: 4.8
    net_yield: 3.5
    property_type: mansion
    building_age: 10
    floor_area: 30
    layout: 1K
    management_fee: 0.9
    repair_reserve: 0.4
    occupancy_rate: 93
    future_risk:
      market_risk: low
      liquidity_risk: low
      maintenance_risk: medium
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	property, ok := c.ByID("test_001")
	if !ok {
		t.Fatalf("expected test_001 in loaded catalog")
	}
	if property.Price != 2000 || property.FutureRisk.MaintenanceRisk != domain.RiskMedium {
		t.Fatalf("unexpected parsed listing: %+v", property)
	}
}

func TestLoadFileRejectsEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("properties: []"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected error for empty catalog")
	}
}
