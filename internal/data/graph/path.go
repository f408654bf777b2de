package graph

import (
	"context"

	"github.com/zhilu/aicareer-backend/internal/domain"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
	"github.com/zhilu/aicareer-backend/internal/platform/neo4jdb"
)

type pathRepo struct {
	client *neo4jdb.Client
	log    *logger.Logger
}

func NewPathRepo(client *neo4jdb.Client, log *logger.Logger) PathRepo {
	return &pathRepo{
		client: client,
		log:    log.With("repo", "PathRepo"),
	}
}

func (r *pathRepo) ForCareer(ctx context.Context, careerID string) ([]domain.PathWithCourses, error) {
	records, err := r.client.RunQuery(ctx, `
MATCH (p:LearningPath)-[:TARGETS]->(c:Career {id: $career_id})
OPTIONAL MATCH (p)-[:INCLUDES]->(co:Course)
RETURN p AS path, collect(DISTINCT co) AS courses
ORDER BY p.name
`, map[string]any{"career_id": careerID})
	if err != nil {
		return nil, err
	}
	out := make([]domain.PathWithCourses, 0, len(records))
	for _, record := range records {
		rec := recordEntity(record, "path")
		if rec.String("id") == "" {
			continue
		}
		out = append(out, domain.PathWithCourses{
			LearningPath: toPath(rec),
			Courses:      toCourses(recordEntities(record, "courses")),
		})
	}
	return out, nil
}

func (r *pathRepo) Detail(ctx context.Context, id string) (*domain.PathDetail, error) {
	record, err := r.client.RunSingleQuery(ctx, `
MATCH (p:LearningPath {id: $id})
OPTIONAL MATCH (p)-[:TARGETS]->(c:Career)
OPTIONAL MATCH (p)-[:INCLUDES]->(co:Course)
OPTIONAL MATCH (co)-[:TEACHES]->(k:Skill)
WITH p, c, co, collect(DISTINCT k) AS skills
RETURN p AS path, c AS career, collect({course: co, skills: skills}) AS courses
`, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	rec := recordEntity(record, "path")
	if rec == nil || rec.String("id") == "" {
		return nil, nil
	}

	detail := &domain.PathDetail{LearningPath: toPath(rec)}
	if careerRec := recordEntity(record, "career"); careerRec != nil && careerRec.String("id") != "" {
		career := toCareer(careerRec)
		detail.TargetCareer = &career
	}
	entries, _ := recordValue(record, "courses").([]any)
	detail.Courses = make([]domain.CourseWithSkills, 0, len(entries))
	for _, entry := range entries {
		wrapper, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		courseRec := entityRecord(wrapper["course"])
		if courseRec == nil || courseRec.String("id") == "" {
			continue
		}
		detail.Courses = append(detail.Courses, domain.CourseWithSkills{
			Course:       toCourse(courseRec),
			TaughtSkills: toSkills(entityList(wrapper["skills"])),
		})
	}
	return detail, nil
}

func (r *pathRepo) CandidatesForPersonality(ctx context.Context, code string) ([]PathCandidate, error) {
	records, err := r.client.RunQuery(ctx, `
MATCH (t:PersonalityType {code: $code})-[:SUITS]->(c:Career)<-[:TARGETS]-(p:LearningPath)
OPTIONAL MATCH (p)-[:INCLUDES]->(co:Course)
WITH p, c, collect(DISTINCT co) AS courses
RETURN p AS path, c AS career, courses
ORDER BY p.name
`, map[string]any{"code": code})
	if err != nil {
		return nil, err
	}
	out := make([]PathCandidate, 0, len(records))
	for _, record := range records {
		pathRec := recordEntity(record, "path")
		careerRec := recordEntity(record, "career")
		if pathRec.String("id") == "" || careerRec.String("id") == "" {
			continue
		}
		out = append(out, PathCandidate{
			Path:    toPath(pathRec),
			Career:  toCareer(careerRec),
			Courses: toCourses(recordEntities(record, "courses")),
		})
	}
	return out, nil
}
