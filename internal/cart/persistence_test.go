package cart

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDecodeItemsToleratesUnknownAndMissingFields(t *testing.T) {
	t.Parallel()

	payload := []byte(`[
		{"productId":1,"name":"Sage & Marshmallow","price":8,"quantity":2,"legacyField":"ignored"},
		{"productId":2,"name":"No Price Recorded","quantity":1},
		{"productId":3,"name":"Phantom","price":"7.50","quantity":0}
	]`)

	items, err := decodeItems(payload)
	if err != nil {
		t.Fatalf("tolerant decode should not fail: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected zero-quantity entry dropped, got %d items", len(items))
	}
	if !items[0].Price.Equal(decimal.NewFromInt(8)) {
		t.Fatalf("numeric price should decode, got %s", items[0].Price)
	}
	if !items[1].Price.IsZero() {
		t.Fatalf("absent price should read as zero, got %s", items[1].Price)
	}
}

func TestDecodeItemsRejectsUnparseablePayload(t *testing.T) {
	t.Parallel()

	if _, err := decodeItems([]byte(`{"items":`)); err == nil {
		t.Fatal("expected error for unparseable payload")
	}
}

func TestEncodeItemsEmptyCartSerializesAsEmptyArray(t *testing.T) {
	t.Parallel()

	payload, err := encodeItems(nil)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if string(payload) != "[]" {
		t.Fatalf("expected empty array, got %s", payload)
	}
}

func TestEncodeDecodeRoundTripPreservesPriceAsString(t *testing.T) {
	t.Parallel()

	items := []LineItem{
		{ProductID: 4, Name: "Frida Kahlo Watermelon", Price: decimal.RequireFromString("7.50"), Quantity: 3, InStock: true},
	}
	payload, err := encodeItems(items)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := decodeItems(payload)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected single item, got %d", len(decoded))
	}
	if !decoded[0].Price.Equal(items[0].Price) || decoded[0].Quantity != 3 {
		t.Fatalf("round trip mismatch: %+v", decoded[0])
	}
}
