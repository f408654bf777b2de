package graph

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zhilu/aicareer-backend/internal/platform/logger"
	"github.com/zhilu/aicareer-backend/internal/platform/neo4jdb"
)

// SeedData is the reference dataset loaded from YAML: the sixteen
// personality types, the career/skill/course/path catalog, and the relation
// triples between them.
type SeedData struct {
	Personalities []SeedPersonality `yaml:"personalities"`
	Careers       []SeedCareer      `yaml:"careers"`
	Skills        []SeedSkill       `yaml:"skills"`
	Courses       []SeedCourse      `yaml:"courses"`
	Paths         []SeedPath        `yaml:"paths"`
	Relations     []SeedRelation    `yaml:"relations"`
}

type SeedPersonality struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

type SeedCareer struct {
	ID              string  `yaml:"id"`
	Name            string  `yaml:"name"`
	Description     string  `yaml:"description"`
	Category        string  `yaml:"category"`
	GrowthPotential float64 `yaml:"growthPotential"`
	DemandLevel     string  `yaml:"demandLevel"`
}

type SeedSkill struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

type SeedCourse struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Provider string  `yaml:"provider"`
	Rating   float64 `yaml:"rating"`
}

type SeedPath struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	TargetCareer string   `yaml:"targetCareer"`
	Courses      []string `yaml:"courses"`
}

type SeedRelation struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	Type   string `yaml:"type"`
}

func LoadSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &data, nil
}

type Seeder struct {
	client *neo4jdb.Client
	log    *logger.Logger
}

func NewSeeder(client *neo4jdb.Client, log *logger.Logger) *Seeder {
	return &Seeder{
		client: client,
		log:    log.With("service", "Seeder"),
	}
}

var seedConstraints = []string{
	`CREATE CONSTRAINT personality_code_unique IF NOT EXISTS FOR (t:PersonalityType) REQUIRE t.code IS UNIQUE`,
	`CREATE CONSTRAINT career_id_unique IF NOT EXISTS FOR (c:Career) REQUIRE c.id IS UNIQUE`,
	`CREATE CONSTRAINT skill_id_unique IF NOT EXISTS FOR (k:Skill) REQUIRE k.id IS UNIQUE`,
	`CREATE CONSTRAINT course_id_unique IF NOT EXISTS FOR (co:Course) REQUIRE co.id IS UNIQUE`,
	`CREATE CONSTRAINT path_id_unique IF NOT EXISTS FOR (p:LearningPath) REQUIRE p.id IS UNIQUE`,
	`CREATE CONSTRAINT student_id_unique IF NOT EXISTS FOR (s:Student) REQUIRE s.id IS UNIQUE`,
}

func (s *Seeder) Apply(ctx context.Context, data *SeedData) error {
	// Best-effort schema init; may fail for restricted users.
	for _, constraint := range seedConstraints {
		if err := s.client.RunWrite(ctx, constraint, nil); err != nil {
			s.log.Warn("schema init failed (continuing)", "error", err)
		}
	}

	if err := s.client.RunWrite(ctx, `
UNWIND $rows AS r
MERGE (t:PersonalityType {code: r.code})
SET t.name = r.name
`, map[string]any{"rows": personalityRows(data.Personalities)}); err != nil {
		return fmt.Errorf("seed personalities: %w", err)
	}

	if err := s.client.RunWrite(ctx, `
UNWIND $rows AS r
MERGE (c:Career {id: r.id})
SET c.name = r.name,
    c.description = r.description,
    c.category = r.category,
    c.growth_potential = r.growth_potential,
    c.demand_level = r.demand_level
`, map[string]any{"rows": careerRows(data.Careers)}); err != nil {
		return fmt.Errorf("seed careers: %w", err)
	}

	if err := s.client.RunWrite(ctx, `
UNWIND $rows AS r
MERGE (k:Skill {id: r.id})
SET k.name = r.name, k.category = r.category
`, map[string]any{"rows": skillRows(data.Skills)}); err != nil {
		return fmt.Errorf("seed skills: %w", err)
	}

	if err := s.client.RunWrite(ctx, `
UNWIND $rows AS r
MERGE (co:Course {id: r.id})
SET co.name = r.name, co.provider = r.provider, co.rating = r.rating
`, map[string]any{"rows": courseRows(data.Courses)}); err != nil {
		return fmt.Errorf("seed courses: %w", err)
	}

	if err := s.client.RunWrite(ctx, `
UNWIND $rows AS r
MERGE (p:LearningPath {id: r.id})
SET p.name = r.name
WITH p, r
MATCH (c:Career {id: r.target_career})
MERGE (p)-[:TARGETS]->(c)
WITH p, r
UNWIND r.courses AS course_id
MATCH (co:Course {id: course_id})
MERGE (p)-[:INCLUDES]->(co)
`, map[string]any{"rows": pathRows(data.Paths)}); err != nil {
		return fmt.Errorf("seed paths: %w", err)
	}

	for _, relType := range []string{"SUITS", "REQUIRES", "TEACHES"} {
		rows := relationRows(data.Relations, relType)
		if len(rows) == 0 {
			continue
		}
		srcLabel, srcKey, dstLabel, dstKey, ok := relationSchema(relType)
		if !ok {
			continue
		}
		cypher := fmt.Sprintf(`
UNWIND $rows AS r
MATCH (a:%s {%s: r.source})
MATCH (b:%s {%s: r.target})
MERGE (a)-[:%s]->(b)
`, srcLabel, srcKey, dstLabel, dstKey, relType)
		if err := s.client.RunWrite(ctx, cypher, map[string]any{"rows": rows}); err != nil {
			return fmt.Errorf("seed %s relations: %w", relType, err)
		}
	}

	s.log.Info("seed applied",
		"personalities", len(data.Personalities),
		"careers", len(data.Careers),
		"skills", len(data.Skills),
		"courses", len(data.Courses),
		"paths", len(data.Paths),
		"relations", len(data.Relations),
	)
	return nil
}

func relationSchema(relType string) (srcLabel, srcKey, dstLabel, dstKey string, ok bool) {
	switch relType {
	case "SUITS":
		return "PersonalityType", "code", "Career", "id", true
	case "REQUIRES":
		return "Career", "id", "Skill", "id", true
	case "TEACHES":
		return "Course", "id", "Skill", "id", true
	default:
		return "", "", "", "", false
	}
}

func personalityRows(items []SeedPersonality) []map[string]any {
	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if item.Code == "" {
			continue
		}
		rows = append(rows, map[string]any{"code": item.Code, "name": item.Name})
	}
	return rows
}

func careerRows(items []SeedCareer) []map[string]any {
	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		rows = append(rows, map[string]any{
			"id":               item.ID,
			"name":             item.Name,
			"description":      item.Description,
			"category":         item.Category,
			"growth_potential": item.GrowthPotential,
			"demand_level":     item.DemandLevel,
		})
	}
	return rows
}

func skillRows(items []SeedSkill) []map[string]any {
	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		rows = append(rows, map[string]any{"id": item.ID, "name": item.Name, "category": item.Category})
	}
	return rows
}

func courseRows(items []SeedCourse) []map[string]any {
	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		rows = append(rows, map[string]any{"id": item.ID, "name": item.Name, "provider": item.Provider, "rating": item.Rating})
	}
	return rows
}

func pathRows(items []SeedPath) []map[string]any {
	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if item.ID == "" || item.TargetCareer == "" {
			continue
		}
		rows = append(rows, map[string]any{
			"id":            item.ID,
			"name":          item.Name,
			"target_career": item.TargetCareer,
			"courses":       stringAnyList(item.Courses),
		})
	}
	return rows
}

func relationRows(items []SeedRelation, relType string) []map[string]any {
	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if item.Type != relType || item.Source == "" || item.Target == "" {
			continue
		}
		rows = append(rows, map[string]any{"source": item.Source, "target": item.Target})
	}
	return rows
}
