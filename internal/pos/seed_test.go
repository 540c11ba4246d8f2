package pos

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDecodeAppDataEmptyYieldsDefaults(t *testing.T) {
	data, err := DecodeAppData(nil)
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultData()
	if len(data.Menu) != len(def.Menu) || len(data.Inventory) != len(def.Inventory) {
		t.Fatalf("want seed dataset, got %+v", data)
	}
	if data.Settings.PrimaryColor != "#4A5568" {
		t.Fatalf("want default settings, got %+v", data.Settings)
	}
}

func TestDecodeAppDataMergesMissingSections(t *testing.T) {
	at := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	doc := AppData{
		Transactions: []Transaction{{
			ID:        "TRX-1",
			Items:     []OrderItem{{ID: "menu-1", Name: "Mie Goreng", Price: 8000, Quantity: 1}},
			Payment:   Payment{Status: StatusPaid, Method: MethodQRIS},
			CreatedAt: &at,
			Total:     8000,
		}},
	}
	raw, _ := json.Marshal(map[string]any{"transactions": doc.Transactions})

	data, err := DecodeAppData(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(data.Transactions) != 1 || data.Transactions[0].ID != "TRX-1" {
		t.Fatalf("stored transactions lost: %+v", data.Transactions)
	}
	if data.Transactions[0].Payment.Method != MethodQRIS {
		t.Fatalf("payment method lost: %+v", data.Transactions[0].Payment)
	}
	if len(data.Menu) == 0 || len(data.Inventory) == 0 {
		t.Fatal("missing sections must fall back to seed")
	}
}

func TestDecodeAppDataMergesSettingsFieldWise(t *testing.T) {
	raw := []byte(`{"settings":{"primaryColor":"#000000"}}`)
	data, err := DecodeAppData(raw)
	if err != nil {
		t.Fatal(err)
	}
	if data.Settings.PrimaryColor != "#000000" {
		t.Fatalf("stored field must win: %+v", data.Settings)
	}
	if data.Settings.SecondaryColor != "#FDFBF6" {
		t.Fatalf("missing field must default: %+v", data.Settings)
	}
}

func TestDecodeAppDataBadJSON(t *testing.T) {
	data, err := DecodeAppData([]byte("{broken"))
	if err == nil {
		t.Fatal("want error for broken document")
	}
	// still usable: defaults come back alongside the error
	if len(data.Menu) == 0 {
		t.Fatal("want defaults on decode failure")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewStore(nil, nil)
	o := testOrder("TRX-1", StatusPaid, line("menu-1", "Mie Goreng", 8000, 0, 2, "stock-1"))
	if _, err := s.Commit(o); err != nil {
		t.Fatal(err)
	}

	raw, err := json.Marshal(s.Data())
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := DecodeAppData(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Transactions) != 1 || loaded.Transactions[0].Total != 16000 {
		t.Fatalf("round trip lost transactions: %+v", loaded.Transactions)
	}
	if inv := loaded.Inventory[0]; inv.ID != "stock-1" || inv.Quantity != 38 {
		t.Fatalf("round trip lost inventory state: %+v", inv)
	}
}
