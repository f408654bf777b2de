package domain

import "fmt"

// Category is the closed enumeration of graph entity categories. Styling and
// natural keys are associated data; an unknown category is a programmer
// error, not a recoverable condition.
type Category string

const (
	CategoryPersonality Category = "personality"
	CategoryCareer      Category = "career"
	CategorySkill       Category = "skill"
	CategoryCourse      Category = "course"
	CategoryStudent     Category = "student"
)

type NodeStyle struct {
	Color string
	Size  int
}

// Style returns the fixed visualization metadata for the category.
func (c Category) Style() NodeStyle {
	switch c {
	case CategoryPersonality:
		return NodeStyle{Color: "#8b5cf6", Size: 30}
	case CategoryCareer:
		return NodeStyle{Color: "#f59e0b", Size: 28}
	case CategorySkill:
		return NodeStyle{Color: "#10b981", Size: 22}
	case CategoryCourse:
		return NodeStyle{Color: "#3b82f6", Size: 20}
	case CategoryStudent:
		return NodeStyle{Color: "#ef4444", Size: 32}
	default:
		panic(fmt.Sprintf("catalog: unknown category %q", string(c)))
	}
}

// NaturalKeyField names the record field used to namespace node ids and to
// deduplicate entities.
func (c Category) NaturalKeyField() string {
	switch c {
	case CategoryPersonality:
		return "code"
	case CategoryCareer, CategorySkill, CategoryCourse, CategoryStudent:
		return "id"
	default:
		panic(fmt.Sprintf("catalog: unknown category %q", string(c)))
	}
}

// PropertyAllowlist names the record fields copied onto graph nodes. Raw
// query rows are never spread wholesale into node properties.
func (c Category) PropertyAllowlist() []string {
	switch c {
	case CategoryPersonality:
		return []string{"code", "name"}
	case CategoryCareer:
		return []string{"id", "name", "category", "growth_potential", "demand_level"}
	case CategorySkill:
		return []string{"id", "name", "category"}
	case CategoryCourse:
		return []string{"id", "name", "provider", "rating"}
	case CategoryStudent:
		return []string{"id", "personality_code"}
	default:
		panic(fmt.Sprintf("catalog: unknown category %q", string(c)))
	}
}

// NodeID builds the namespaced graph node id for a natural key.
func (c Category) NodeID(naturalKey string) string {
	return fmt.Sprintf("%s-%s", string(c), naturalKey)
}
