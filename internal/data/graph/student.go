package graph

import (
	"context"
	"encoding/json"
	"time"

	"github.com/zhilu/aicareer-backend/internal/domain"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
	"github.com/zhilu/aicareer-backend/internal/platform/neo4jdb"
)

type studentRepo struct {
	client *neo4jdb.Client
	log    *logger.Logger
}

func NewStudentRepo(client *neo4jdb.Client, log *logger.Logger) StudentRepo {
	return &studentRepo{
		client: client,
		log:    log.With("repo", "StudentRepo"),
	}
}

func (r *studentRepo) Upsert(ctx context.Context, s *domain.Student) error {
	scoresJSON := ""
	if len(s.PersonalityScores) > 0 {
		if raw, err := json.Marshal(s.PersonalityScores); err == nil {
			scoresJSON = string(raw)
		}
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	return r.client.RunWrite(ctx, `
MERGE (s:Student {id: $id})
ON CREATE SET s.created_at = $now
SET s.personality_code = $code,
    s.personality_scores_json = $scores_json,
    s.completed_courses = $completed,
    s.target_careers = $targets,
    s.updated_at = $now
WITH s
OPTIONAL MATCH (s)-[old:HAS_PERSONALITY]->(:PersonalityType)
DELETE old
WITH DISTINCT s
MATCH (t:PersonalityType {code: $code})
MERGE (s)-[:HAS_PERSONALITY]->(t)
`, map[string]any{
		"id":          s.ID,
		"code":        s.PersonalityCode,
		"scores_json": scoresJSON,
		"completed":   stringAnyList(s.CompletedCourses),
		"targets":     stringAnyList(s.TargetCareers),
		"now":         now,
	})
}

func (r *studentRepo) Get(ctx context.Context, id string) (*domain.Student, error) {
	record, err := r.client.RunSingleQuery(ctx, `
MATCH (s:Student {id: $id})
RETURN s AS student
`, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	rec := recordEntity(record, "student")
	if rec == nil {
		return nil, nil
	}
	return studentFromRecord(rec), nil
}

func (r *studentRepo) GraphRow(ctx context.Context, id string) (*StudentGraphRow, error) {
	record, err := r.client.RunSingleQuery(ctx, `
MATCH (s:Student {id: $id})
OPTIONAL MATCH (s)-[:HAS_PERSONALITY]->(t:PersonalityType)
OPTIONAL MATCH (t)-[:SUITS]->(c:Career)
OPTIONAL MATCH (c)-[:REQUIRES]->(k:Skill)
OPTIONAL MATCH (co:Course)-[:TEACHES]->(k)
RETURN s AS student,
       t AS personality,
       collect(DISTINCT c) AS careers,
       collect(DISTINCT k) AS skills,
       collect(DISTINCT co) AS courses
`, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return &StudentGraphRow{
		Student:     recordEntity(record, "student"),
		Personality: recordEntity(record, "personality"),
		Careers:     recordEntities(record, "careers"),
		Skills:      recordEntities(record, "skills"),
		Courses:     recordEntities(record, "courses"),
	}, nil
}

func studentFromRecord(rec EntityRecord) *domain.Student {
	s := &domain.Student{
		ID:               rec.String("id"),
		PersonalityCode:  rec.String("personality_code"),
		CompletedCourses: asStringList(rec["completed_courses"]),
		TargetCareers:    asStringList(rec["target_careers"]),
	}
	if raw := rec.String("personality_scores_json"); raw != "" {
		_ = json.Unmarshal([]byte(raw), &s.PersonalityScores)
	}
	if ts, err := time.Parse(time.RFC3339Nano, rec.String("created_at")); err == nil {
		s.CreatedAt = ts
	}
	if ts, err := time.Parse(time.RFC3339Nano, rec.String("updated_at")); err == nil {
		s.UpdatedAt = ts
	}
	return s
}

func stringAnyList(items []string) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}
