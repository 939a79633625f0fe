package service

import (
	"strings"
	"testing"
)

func TestObjectKeyFor(t *testing.T) {
	first := objectKeyFor("01ARZ3NDEKTSV4RRFFQ69G5FAV", 0, "invoice.pdf")
	second := objectKeyFor("01ARZ3NDEKTSV4RRFFQ69G5FAV", 1, "invoice.pdf")

	if first == second {
		t.Fatalf("same-named files must get distinct keys, both %q", first)
	}

	if first != "batches/01ARZ3NDEKTSV4RRFFQ69G5FAV/0000_invoice.pdf" {
		t.Errorf("unexpected key %q", first)
	}

	if !strings.HasPrefix(second, "batches/01ARZ3NDEKTSV4RRFFQ69G5FAV/") {
		t.Errorf("key %q should live under the batch prefix", second)
	}
}
