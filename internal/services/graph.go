package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/zhilu/aicareer-backend/internal/cache"
	graphdata "github.com/zhilu/aicareer-backend/internal/data/graph"
	"github.com/zhilu/aicareer-backend/internal/domain"
	"github.com/zhilu/aicareer-backend/internal/platform/apierr"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
)

// DefaultGraphLimit bounds skill and course nodes in full-graph assembly
// when the caller supplies no usable limit.
const DefaultGraphLimit = 50

// careerCenterSize marks the centered career node in a subgraph as visually
// dominant.
const careerCenterSize = 42

type GraphService interface {
	StudentGraph(ctx context.Context, studentID string) (*domain.KnowledgeGraph, error)
	FullGraph(ctx context.Context, limit int) (*domain.KnowledgeGraph, error)
	CareerGraph(ctx context.Context, careerID string) (*domain.KnowledgeGraph, error)
}

type graphService struct {
	log       *logger.Logger
	students  graphdata.StudentRepo
	careers   graphdata.CareerRepo
	snapshots graphdata.SnapshotRepo
	cache     *cache.GraphCache
}

func NewGraphService(
	log *logger.Logger,
	studentRepo graphdata.StudentRepo,
	careerRepo graphdata.CareerRepo,
	snapshotRepo graphdata.SnapshotRepo,
	graphCache *cache.GraphCache,
) GraphService {
	return &graphService{
		log:       log.With("service", "GraphService"),
		students:  studentRepo,
		careers:   careerRepo,
		snapshots: snapshotRepo,
		cache:     graphCache,
	}
}

func (s *graphService) StudentGraph(ctx context.Context, studentID string) (*domain.KnowledgeGraph, error) {
	row, err := s.students.GraphRow(ctx, studentID)
	if err != nil {
		return nil, apierr.Upstream("graph_query_failed", err)
	}
	if row == nil || row.Student == nil {
		return nil, apierr.NotFound("student_not_found", fmt.Errorf("student %s not found", studentID))
	}

	b := newGraphBuilder()
	studentNodeID, _ := b.addNode(domain.CategoryStudent, row.Student)
	if studentNodeID == "" {
		return nil, apierr.NotFound("student_not_found", fmt.Errorf("student %s not found", studentID))
	}

	personalityNodeID, _ := b.addNode(domain.CategoryPersonality, row.Personality)
	hasPersonality := personalityNodeID != ""
	if hasPersonality {
		b.addEdge("HAS_PERSONALITY", studentNodeID, personalityNodeID, 0)
	}

	for i, rec := range row.Careers {
		careerNodeID, fresh := b.addNode(domain.CategoryCareer, rec)
		if careerNodeID == "" || !fresh {
			continue
		}
		if hasPersonality {
			b.addEdge("SUITS", personalityNodeID, careerNodeID, i)
		}
	}

	// Skills and courses are informational leaves here; no edges synthesized.
	for _, rec := range row.Skills {
		b.addNode(domain.CategorySkill, rec)
	}
	for _, rec := range row.Courses {
		b.addNode(domain.CategoryCourse, rec)
	}

	return b.graph(), nil
}

func (s *graphService) FullGraph(ctx context.Context, limit int) (*domain.KnowledgeGraph, error) {
	if limit <= 0 {
		limit = DefaultGraphLimit
	}
	if g, ok := s.cache.GetFullGraph(ctx, limit); ok {
		return g, nil
	}

	rows, err := s.snapshots.FullRows(ctx, limit)
	if err != nil {
		return nil, apierr.Upstream("graph_query_failed", err)
	}

	b := newGraphBuilder()
	for _, rec := range rows.Personalities {
		b.addNode(domain.CategoryPersonality, rec)
	}
	for _, rec := range rows.Careers {
		b.addNode(domain.CategoryCareer, rec)
	}
	for _, rec := range rows.Skills {
		b.addNode(domain.CategorySkill, rec)
	}
	for _, rec := range rows.Courses {
		b.addNode(domain.CategoryCourse, rec)
	}

	// Relations are bounded independently of nodes: an edge whose endpoint
	// was truncated out of the node set is dropped, not an error.
	ordinals := map[string]int{}
	for _, rel := range rows.Relations {
		sourceCat, targetCat, ok := relationEndpoints(rel.Type)
		if !ok {
			continue
		}
		ordinal := ordinals[rel.Type]
		ordinals[rel.Type]++
		b.addEdge(rel.Type, sourceCat.NodeID(rel.SourceKey), targetCat.NodeID(rel.TargetKey), ordinal)
	}

	g := b.graph()
	s.cache.SetFullGraph(ctx, limit, g)
	return g, nil
}

func (s *graphService) CareerGraph(ctx context.Context, careerID string) (*domain.KnowledgeGraph, error) {
	row, err := s.careers.GraphRow(ctx, careerID)
	if err != nil {
		return nil, apierr.Upstream("graph_query_failed", err)
	}
	if row == nil || row.Career == nil {
		return nil, apierr.NotFound("career_not_found", fmt.Errorf("career %s not found", careerID))
	}

	b := newGraphBuilder()
	careerNodeID, _ := b.addNode(domain.CategoryCareer, row.Career)
	if careerNodeID == "" {
		return nil, apierr.NotFound("career_not_found", fmt.Errorf("career %s not found", careerID))
	}
	b.setSize(careerNodeID, careerCenterSize)

	for i, rec := range row.Personalities {
		personalityNodeID, fresh := b.addNode(domain.CategoryPersonality, rec)
		if personalityNodeID == "" || !fresh {
			continue
		}
		b.addEdge("SUITS", personalityNodeID, careerNodeID, i)
	}
	for i, rec := range row.Skills {
		skillNodeID, fresh := b.addNode(domain.CategorySkill, rec)
		if skillNodeID == "" || !fresh {
			continue
		}
		b.addEdge("REQUIRES", careerNodeID, skillNodeID, i)
	}
	// Courses stay edge-less leaves, same convention as the student graph.
	for _, rec := range row.Courses {
		b.addNode(domain.CategoryCourse, rec)
	}

	return b.graph(), nil
}

func relationEndpoints(relType string) (domain.Category, domain.Category, bool) {
	switch relType {
	case "SUITS":
		return domain.CategoryPersonality, domain.CategoryCareer, true
	case "REQUIRES":
		return domain.CategoryCareer, domain.CategorySkill, true
	case "TEACHES":
		return domain.CategoryCourse, domain.CategorySkill, true
	default:
		return "", "", false
	}
}

// ---- graph builder ----

type graphBuilder struct {
	nodes []domain.GraphNode
	edges []domain.GraphEdge
	index map[string]int
}

func newGraphBuilder() *graphBuilder {
	return &graphBuilder{
		nodes: []domain.GraphNode{},
		edges: []domain.GraphEdge{},
		index: map[string]int{},
	}
}

// addNode deduplicates by namespaced natural key. A record without a usable
// natural key is silently skipped (it cannot be namespaced) and reported as
// ("", false). A repeated entity returns its existing id with fresh=false.
func (b *graphBuilder) addNode(cat domain.Category, rec graphdata.EntityRecord) (id string, fresh bool) {
	if rec == nil {
		return "", false
	}
	key := strings.TrimSpace(rec.String(cat.NaturalKeyField()))
	if key == "" {
		return "", false
	}
	id = cat.NodeID(key)
	if _, seen := b.index[id]; seen {
		return id, false
	}

	style := cat.Style()
	props := make(map[string]any)
	for _, field := range cat.PropertyAllowlist() {
		if v, ok := rec[field]; ok && v != nil {
			props[field] = v
		}
	}
	label := strings.TrimSpace(rec.String("name"))
	if label == "" {
		label = key
	}

	b.index[id] = len(b.nodes)
	b.nodes = append(b.nodes, domain.GraphNode{
		ID:         id,
		Label:      label,
		Category:   cat,
		Properties: props,
		Color:      style.Color,
		Size:       style.Size,
	})
	return id, true
}

// addEdge materializes an edge only when both endpoints are present.
func (b *graphBuilder) addEdge(relType, source, target string, ordinal int) bool {
	if _, ok := b.index[source]; !ok {
		return false
	}
	if _, ok := b.index[target]; !ok {
		return false
	}
	b.edges = append(b.edges, domain.GraphEdge{
		ID:           fmt.Sprintf("edge-%s-%d", strings.ToLower(relType), ordinal),
		Source:       source,
		Target:       target,
		RelationType: relType,
		Label:        relationLabel(relType),
	})
	return true
}

func (b *graphBuilder) setSize(nodeID string, size int) {
	if i, ok := b.index[nodeID]; ok {
		b.nodes[i].Size = size
	}
}

func (b *graphBuilder) graph() *domain.KnowledgeGraph {
	return &domain.KnowledgeGraph{Nodes: b.nodes, Edges: b.edges}
}

func relationLabel(relType string) string {
	switch relType {
	case "SUITS":
		return "适合"
	case "REQUIRES":
		return "需要"
	case "TEACHES":
		return "教授"
	case "HAS_PERSONALITY":
		return "性格类型"
	default:
		return ""
	}
}
