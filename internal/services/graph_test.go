package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	graphdata "github.com/zhilu/aicareer-backend/internal/data/graph"
	"github.com/zhilu/aicareer-backend/internal/domain"
	"github.com/zhilu/aicareer-backend/internal/platform/apierr"
)

func nodeSet(g *domain.KnowledgeGraph) map[string]domain.GraphNode {
	out := make(map[string]domain.GraphNode, len(g.Nodes))
	for _, n := range g.Nodes {
		out[n.ID] = n
	}
	return out
}

func assertNoDanglingEdges(t *testing.T, g *domain.KnowledgeGraph) {
	t.Helper()
	nodes := nodeSet(g)
	for _, e := range g.Edges {
		if _, ok := nodes[e.Source]; !ok {
			t.Fatalf("edge %s has dangling source %s", e.ID, e.Source)
		}
		if _, ok := nodes[e.Target]; !ok {
			t.Fatalf("edge %s has dangling target %s", e.ID, e.Target)
		}
	}
}

func TestStudentGraphAssembly(t *testing.T) {
	students := &fakeStudentRepo{
		graphRow: &graphdata.StudentGraphRow{
			Student:     graphdata.EntityRecord{"id": "s1", "personality_code": "INTJ"},
			Personality: graphdata.EntityRecord{"code": "INTJ", "name": "建筑师"},
			Careers: []graphdata.EntityRecord{
				{"id": "c1", "name": "算法工程师", "growth_potential": 9.2},
				{"id": "c2", "name": "AI研究员", "growth_potential": 8.9},
				{"id": "c1", "name": "算法工程师", "growth_potential": 9.2}, // duplicate row
			},
			Skills: []graphdata.EntityRecord{
				{"id": "k1", "name": "Python编程"},
				{"id": "", "name": "孤儿技能"}, // no natural key, must be skipped
			},
			Courses: []graphdata.EntityRecord{
				{"id": "co1", "name": "机器学习基础"},
			},
		},
	}
	svc := NewGraphService(testLogger(), students, &fakeCareerRepo{}, &fakeSnapshotRepo{}, nil)

	g, err := svc.StudentGraph(context.Background(), "s1")
	if err != nil {
		t.Fatalf("StudentGraph: %v", err)
	}

	nodes := nodeSet(g)
	if len(nodes) != 6 {
		t.Fatalf("expected 6 nodes, got %d: %v", len(nodes), g.NodeIDs())
	}
	for _, want := range []string{"student-s1", "personality-INTJ", "career-c1", "career-c2", "skill-k1", "course-co1"} {
		if _, ok := nodes[want]; !ok {
			t.Fatalf("missing node %s", want)
		}
	}
	if _, ok := nodes["skill-"]; ok {
		t.Fatal("record without a natural key must not produce a node")
	}

	assertNoDanglingEdges(t, g)
	if len(g.Edges) != 3 {
		t.Fatalf("expected 3 edges (has_personality + 2 suits), got %d", len(g.Edges))
	}
	if g.Edges[0].ID != "edge-has_personality-0" || g.Edges[0].Source != "student-s1" || g.Edges[0].Target != "personality-INTJ" {
		t.Fatalf("unexpected personality edge: %+v", g.Edges[0])
	}
	for _, e := range g.Edges[1:] {
		if e.RelationType != "SUITS" || e.Source != "personality-INTJ" {
			t.Fatalf("unexpected suits edge: %+v", e)
		}
	}

	if nodes["student-s1"].Color != "#ef4444" || nodes["student-s1"].Size != 32 {
		t.Fatalf("student node styling mismatch: %+v", nodes["student-s1"])
	}
	if nodes["career-c1"].Label != "算法工程师" {
		t.Fatalf("career label mismatch: %q", nodes["career-c1"].Label)
	}
}

func TestStudentGraphNotFound(t *testing.T) {
	svc := NewGraphService(testLogger(), &fakeStudentRepo{}, &fakeCareerRepo{}, &fakeSnapshotRepo{}, nil)

	_, err := svc.StudentGraph(context.Background(), "missing")
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected apierr.Error, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Code != "student_not_found" {
		t.Fatalf("unexpected error: status=%d code=%s", apiErr.Status, apiErr.Code)
	}
}

func TestFullGraphPrunesEdgesPastTruncation(t *testing.T) {
	snapshots := &fakeSnapshotRepo{
		rows: &graphdata.FullGraphRows{
			Personalities: []graphdata.EntityRecord{{"code": "INTJ", "name": "建筑师"}},
			Careers:       []graphdata.EntityRecord{{"id": "c1", "name": "算法工程师"}},
			Skills:        []graphdata.EntityRecord{{"id": "k1", "name": "Python编程"}},
			Courses:       []graphdata.EntityRecord{{"id": "co1", "name": "机器学习基础"}},
			Relations: []graphdata.RelationTriple{
				{SourceKey: "INTJ", TargetKey: "c1", Type: "SUITS"},
				{SourceKey: "c1", TargetKey: "k1", Type: "REQUIRES"},
				{SourceKey: "c1", TargetKey: "k2", Type: "REQUIRES"},  // k2 truncated out
				{SourceKey: "co1", TargetKey: "k2", Type: "TEACHES"}, // ditto
				{SourceKey: "co1", TargetKey: "k1", Type: "TEACHES"},
				{SourceKey: "INTJ", TargetKey: "c1", Type: "OWNS"}, // unknown type ignored
			},
		},
	}
	svc := NewGraphService(testLogger(), &fakeStudentRepo{}, &fakeCareerRepo{}, snapshots, nil)

	g, err := svc.FullGraph(context.Background(), 2)
	if err != nil {
		t.Fatalf("FullGraph: %v", err)
	}
	if snapshots.lastLimit != 2 {
		t.Fatalf("limit not forwarded: got %d", snapshots.lastLimit)
	}

	assertNoDanglingEdges(t, g)
	if len(g.Nodes) != 4 {
		t.Fatalf("expected 4 nodes, got %d", len(g.Nodes))
	}
	if len(g.Edges) != 3 {
		t.Fatalf("expected 3 edges after pruning, got %d: %+v", len(g.Edges), g.Edges)
	}

	// Ordinals count iterated triples per relation type, so the surviving
	// TEACHES edge keeps ordinal 1 even though ordinal 0 was pruned.
	ids := make(map[string]bool, len(g.Edges))
	for _, e := range g.Edges {
		ids[e.ID] = true
	}
	for _, want := range []string{"edge-suits-0", "edge-requires-0", "edge-teaches-1"} {
		if !ids[want] {
			t.Fatalf("missing edge id %s in %v", want, ids)
		}
	}
}

func TestFullGraphDefaultsLimit(t *testing.T) {
	snapshots := &fakeSnapshotRepo{rows: &graphdata.FullGraphRows{}}
	svc := NewGraphService(testLogger(), &fakeStudentRepo{}, &fakeCareerRepo{}, snapshots, nil)

	g, err := svc.FullGraph(context.Background(), 0)
	if err != nil {
		t.Fatalf("FullGraph: %v", err)
	}
	if snapshots.lastLimit != DefaultGraphLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultGraphLimit, snapshots.lastLimit)
	}
	if g.Nodes == nil || g.Edges == nil {
		t.Fatal("empty graph must serialize as empty arrays, not null")
	}
}

func TestCareerGraphCenterAndEdges(t *testing.T) {
	careers := &fakeCareerRepo{
		graphRow: &graphdata.CareerGraphRow{
			Career: graphdata.EntityRecord{"id": "c1", "name": "算法工程师"},
			Personalities: []graphdata.EntityRecord{
				{"code": "INTJ", "name": "建筑师"},
				{"code": "INTP", "name": "逻辑学家"},
			},
			Skills: []graphdata.EntityRecord{
				{"id": "k1", "name": "Python编程"},
			},
			Courses: []graphdata.EntityRecord{
				{"id": "co1", "name": "机器学习基础"},
			},
		},
	}
	svc := NewGraphService(testLogger(), &fakeStudentRepo{}, careers, &fakeSnapshotRepo{}, nil)

	g, err := svc.CareerGraph(context.Background(), "c1")
	if err != nil {
		t.Fatalf("CareerGraph: %v", err)
	}

	nodes := nodeSet(g)
	center, ok := nodes["career-c1"]
	if !ok {
		t.Fatal("missing centered career node")
	}
	if center.Size != 42 {
		t.Fatalf("center size: got %d, want 42", center.Size)
	}

	assertNoDanglingEdges(t, g)
	var suits, requires int
	for _, e := range g.Edges {
		switch e.RelationType {
		case "SUITS":
			suits++
			if e.Target != "career-c1" {
				t.Fatalf("suits edge must point at the career: %+v", e)
			}
		case "REQUIRES":
			requires++
			if e.Source != "career-c1" {
				t.Fatalf("requires edge must start at the career: %+v", e)
			}
		default:
			t.Fatalf("unexpected edge type %s", e.RelationType)
		}
	}
	if suits != 2 || requires != 1 {
		t.Fatalf("edge counts: suits=%d requires=%d", suits, requires)
	}
}

func TestCareerGraphNotFound(t *testing.T) {
	svc := NewGraphService(testLogger(), &fakeStudentRepo{}, &fakeCareerRepo{}, &fakeSnapshotRepo{}, nil)

	_, err := svc.CareerGraph(context.Background(), "missing")
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected apierr.Error, got %v", err)
	}
	if apiErr.Code != "career_not_found" {
		t.Fatalf("unexpected code %s", apiErr.Code)
	}
}
