package graph

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSeedFile(t *testing.T) {
	content := `
personalities:
  - { code: INTJ, name: 建筑师 }
careers:
  - id: career-algorithm-engineer
    name: 算法工程师
    growthPotential: 9.2
    demandLevel: 高
paths:
  - id: path-a
    name: 成长路径
    targetCareer: career-algorithm-engineer
    courses: [course-1, course-2]
relations:
  - { source: INTJ, target: career-algorithm-engineer, type: SUITS }
`
	path := filepath.Join(t.TempDir(), "knowledge.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp seed: %v", err)
	}

	data, err := LoadSeedFile(path)
	if err != nil {
		t.Fatalf("LoadSeedFile: %v", err)
	}
	if len(data.Personalities) != 1 || data.Personalities[0].Code != "INTJ" {
		t.Fatalf("personalities: %+v", data.Personalities)
	}
	if len(data.Careers) != 1 || data.Careers[0].GrowthPotential != 9.2 {
		t.Fatalf("careers: %+v", data.Careers)
	}
	if len(data.Paths) != 1 || len(data.Paths[0].Courses) != 2 {
		t.Fatalf("paths: %+v", data.Paths)
	}
}

func TestLoadSeedFileMissing(t *testing.T) {
	if _, err := LoadSeedFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSeedRowFiltering(t *testing.T) {
	rows := relationRows([]SeedRelation{
		{Source: "INTJ", Target: "c1", Type: "SUITS"},
		{Source: "", Target: "c1", Type: "SUITS"},
		{Source: "c1", Target: "k1", Type: "REQUIRES"},
	}, "SUITS")
	if len(rows) != 1 || rows[0]["source"] != "INTJ" {
		t.Fatalf("relation rows: %+v", rows)
	}

	paths := pathRows([]SeedPath{
		{ID: "p1", TargetCareer: "c1"},
		{ID: "", TargetCareer: "c1"},
		{ID: "p2", TargetCareer: ""},
	})
	if len(paths) != 1 || paths[0]["id"] != "p1" {
		t.Fatalf("path rows: %+v", paths)
	}
}

func TestRelationSchema(t *testing.T) {
	src, srcKey, dst, dstKey, ok := relationSchema("TEACHES")
	if !ok || src != "Course" || srcKey != "id" || dst != "Skill" || dstKey != "id" {
		t.Fatalf("TEACHES schema: %s.%s -> %s.%s", src, srcKey, dst, dstKey)
	}
	if _, _, _, _, ok := relationSchema("OWNS"); ok {
		t.Fatal("unknown relation type must not map")
	}
}
