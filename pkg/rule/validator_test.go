package rule_test

import (
	"testing"

	"github.com/Himan2899/SmartFileOrganizer/pkg/rule"
)

type customRule struct {
	Name          string `rule:"required"`
	Kind          string `rule:"required,oneof=extension name size"`
	SizeThreshold int    `rule:"gte=0"`
}

func TestEngine(t *testing.T) {
	if rule.Engine() == nil {
		t.Fatal("Engine() returned nil")
	}
}

func TestValidateStruct(t *testing.T) {
	valid := customRule{Name: "big videos", Kind: "size", SizeThreshold: 100}
	if err := rule.ValidateStruct(valid); err != nil {
		t.Errorf("Expected no error for valid struct, got %v", err)
	}

	missingName := customRule{Kind: "size", SizeThreshold: 100}
	if err := rule.ValidateStruct(missingName); err == nil {
		t.Error("Expected error for struct missing name, got nil")
	}

	badKind := customRule{Name: "big videos", Kind: "regex", SizeThreshold: 100}
	if err := rule.ValidateStruct(badKind); err == nil {
		t.Error("Expected error for unknown rule kind, got nil")
	}

	negative := customRule{Name: "big videos", Kind: "size", SizeThreshold: -1}
	if err := rule.ValidateStruct(negative); err == nil {
		t.Error("Expected error for negative threshold, got nil")
	}
}

func TestDescribe(t *testing.T) {
	if got := rule.Describe(nil); got != nil {
		t.Errorf("Describe(nil) = %v, want nil", got)
	}

	err := rule.ValidateStruct(customRule{Kind: "regex", SizeThreshold: -1})
	if err == nil {
		t.Fatal("expected validation error")
	}

	fields := rule.Describe(err)
	if len(fields) != 3 {
		t.Fatalf("Describe() returned %d entries, want 3: %v", len(fields), fields)
	}

	if fields["name"] != "failed on required" {
		t.Errorf("name message = %q", fields["name"])
	}

	if fields["kind"] != "failed on oneof=extension name size" {
		t.Errorf("kind message = %q", fields["kind"])
	}

	if fields["sizethreshold"] != "failed on gte=0" {
		t.Errorf("sizethreshold message = %q", fields["sizethreshold"])
	}
}
