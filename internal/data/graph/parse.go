package graph

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/zhilu/aicareer-backend/internal/domain"
)

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	default:
		return 0
	}
}

func asStringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// entityRecord converts one returned value (a store node or a plain map)
// into a property bag. Nulls from OPTIONAL MATCH come back as nil.
func entityRecord(v any) EntityRecord {
	switch n := v.(type) {
	case neo4j.Node:
		return EntityRecord(n.Props)
	case map[string]any:
		return EntityRecord(n)
	default:
		return nil
	}
}

func entityList(v any) []EntityRecord {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]EntityRecord, 0, len(items))
	for _, item := range items {
		if rec := entityRecord(item); rec != nil {
			out = append(out, rec)
		}
	}
	return out
}

func recordValue(record *neo4j.Record, key string) any {
	if record == nil {
		return nil
	}
	v, _ := record.Get(key)
	return v
}

func recordEntity(record *neo4j.Record, key string) EntityRecord {
	return entityRecord(recordValue(record, key))
}

func recordEntities(record *neo4j.Record, key string) []EntityRecord {
	return entityList(recordValue(record, key))
}

// ---- domain converters ----

func toPersonality(rec EntityRecord) domain.PersonalityType {
	return domain.PersonalityType{
		Code: rec.String("code"),
		Name: rec.String("name"),
	}
}

func toCareer(rec EntityRecord) domain.Career {
	return domain.Career{
		ID:              rec.String("id"),
		Name:            rec.String("name"),
		Description:     rec.String("description"),
		Category:        rec.String("category"),
		GrowthPotential: rec.Float("growth_potential"),
		DemandLevel:     rec.String("demand_level"),
	}
}

func toSkill(rec EntityRecord) domain.Skill {
	return domain.Skill{
		ID:       rec.String("id"),
		Name:     rec.String("name"),
		Category: rec.String("category"),
	}
}

func toCourse(rec EntityRecord) domain.Course {
	return domain.Course{
		ID:       rec.String("id"),
		Name:     rec.String("name"),
		Provider: rec.String("provider"),
		Rating:   rec.Float("rating"),
	}
}

func toPath(rec EntityRecord) domain.LearningPath {
	return domain.LearningPath{
		ID:   rec.String("id"),
		Name: rec.String("name"),
	}
}

func toPersonalities(recs []EntityRecord) []domain.PersonalityType {
	out := make([]domain.PersonalityType, 0, len(recs))
	for _, rec := range recs {
		if rec.String("code") == "" {
			continue
		}
		out = append(out, toPersonality(rec))
	}
	return out
}

func toCareers(recs []EntityRecord) []domain.Career {
	out := make([]domain.Career, 0, len(recs))
	for _, rec := range recs {
		if rec.String("id") == "" {
			continue
		}
		out = append(out, toCareer(rec))
	}
	return out
}

func toSkills(recs []EntityRecord) []domain.Skill {
	out := make([]domain.Skill, 0, len(recs))
	for _, rec := range recs {
		if rec.String("id") == "" {
			continue
		}
		out = append(out, toSkill(rec))
	}
	return out
}

func toCourses(recs []EntityRecord) []domain.Course {
	out := make([]domain.Course, 0, len(recs))
	for _, rec := range recs {
		if rec.String("id") == "" {
			continue
		}
		out = append(out, toCourse(rec))
	}
	return out
}

func toPaths(recs []EntityRecord) []domain.LearningPath {
	out := make([]domain.LearningPath, 0, len(recs))
	for _, rec := range recs {
		if rec.String("id") == "" {
			continue
		}
		out = append(out, toPath(rec))
	}
	return out
}
