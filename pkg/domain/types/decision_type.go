package types

import "strings"

// DecisionType is one of the fixed categories a commit can be classified into.
type DecisionType string

const (
	DecisionDependencyAdded         DecisionType = "dependency_added"
	DecisionDependencyRemoved       DecisionType = "dependency_removed"
	DecisionArchitectureChange      DecisionType = "architecture_change"
	DecisionWorkaround              DecisionType = "workaround"
	DecisionPerformanceOptimization DecisionType = "performance_optimization"
	DecisionSecurityFix             DecisionType = "security_fix"
	DecisionConfigChange            DecisionType = "config_change"
	DecisionAPIDesign               DecisionType = "api_design"
	DecisionDatabaseSchema          DecisionType = "database_schema"
	DecisionTesting                 DecisionType = "testing"
	DecisionDocumentation           DecisionType = "documentation"
)

// DecisionTypes returns every decision type in declaration order.
func DecisionTypes() []DecisionType {
	return []DecisionType{
		DecisionDependencyAdded,
		DecisionDependencyRemoved,
		DecisionArchitectureChange,
		DecisionWorkaround,
		DecisionPerformanceOptimization,
		DecisionSecurityFix,
		DecisionConfigChange,
		DecisionAPIDesign,
		DecisionDatabaseSchema,
		DecisionTesting,
		DecisionDocumentation,
	}
}

// IsValid reports whether t is a known decision type.
func (t DecisionType) IsValid() bool {
	for _, v := range DecisionTypes() {
		if v == t {
			return true
		}
	}
	return false
}

func (t DecisionType) String() string { return string(t) }

// Title renders the type for humans, e.g. "dependency_added" -> "Dependency Added".
func (t DecisionType) Title() string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
