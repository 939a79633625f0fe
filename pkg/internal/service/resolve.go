package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/classify"
	"github.com/Himan2899/SmartFileOrganizer/pkg/internal/types"
)

// ResolvePath decides the single destination path for a file. Precedence,
// highest first: custom rules in configured order, the AI suggested folder,
// the structural date/type/size fallback, then the bare file name. The final
// path segment is always the original file name; resolution only prepends
// folders. Ignored-type filtering happens before the resolver is called.
func ResolvePath(file *classify.InputFile, rules *types.OrganizationRules, outcome *classify.Outcome) string {
	for i := range rules.CustomRules {
		r := &rules.CustomRules[i]
		if !r.Enabled {
			continue
		}

		if customRuleMatches(r, file.Name, file.Size) {
			return r.TargetFolder + "/" + file.Name
		}
	}

	if rules.AIClassification {
		if cls := outcome.Classification(); cls != nil {
			return cls.SuggestedFolder + "/" + file.Name
		}
	}

	var parts []string

	if rules.OrganizeByDate {
		t := file.LastModified
		parts = append(parts, strconv.Itoa(t.Year()), fmt.Sprintf("%02d", int(t.Month())))
	}

	if rules.OrganizeByType {
		parts = append(parts, GetFileType(file.Name))
	}

	if rules.OrganizeBySize {
		parts = append(parts, GetSizeCategory(file.Size))
	}

	if len(parts) == 0 {
		return file.Name
	}

	return strings.Join(parts, "/") + "/" + file.Name
}

// customRuleMatches evaluates one rule condition against a file.
func customRuleMatches(rule *types.CustomRule, fileName string, size int64) bool {
	switch rule.Condition {
	case types.RuleConditionExtension:
		return strings.HasSuffix(strings.ToLower(fileName), strings.ToLower(rule.Value))
	case types.RuleConditionName:
		return strings.Contains(strings.ToLower(fileName), strings.ToLower(rule.Value))
	case types.RuleConditionSize:
		limitMB, err := strconv.Atoi(strings.TrimSpace(rule.Value))
		if err != nil {
			return false
		}

		return size > int64(limitMB)*mib
	default:
		return false
	}
}

// IsIgnored reports whether the file's extension is in the ignored set.
// Extensions are compared lower-cased with the leading dot.
func IsIgnored(fileName string, ignoredTypes []string) bool {
	ext := strings.ToLower(extensionWithDot(fileName))
	if ext == "" {
		return false
	}

	for _, ignored := range ignoredTypes {
		if strings.ToLower(ignored) == ext {
			return true
		}
	}

	return false
}

func extensionWithDot(fileName string) string {
	idx := strings.LastIndex(fileName, ".")
	if idx < 0 {
		return ""
	}

	return fileName[idx:]
}
