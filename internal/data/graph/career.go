package graph

import (
	"context"

	"github.com/zhilu/aicareer-backend/internal/domain"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
	"github.com/zhilu/aicareer-backend/internal/platform/neo4jdb"
)

type careerRepo struct {
	client *neo4jdb.Client
	log    *logger.Logger
}

func NewCareerRepo(client *neo4jdb.Client, log *logger.Logger) CareerRepo {
	return &careerRepo{
		client: client,
		log:    log.With("repo", "CareerRepo"),
	}
}

func (r *careerRepo) List(ctx context.Context) ([]domain.CareerListItem, error) {
	records, err := r.client.RunQuery(ctx, `
MATCH (c:Career)
OPTIONAL MATCH (t:PersonalityType)-[:SUITS]->(c)
RETURN c AS career, collect(DISTINCT t) AS types
ORDER BY c.name
`, nil)
	if err != nil {
		return nil, err
	}
	out := make([]domain.CareerListItem, 0, len(records))
	for _, record := range records {
		rec := recordEntity(record, "career")
		if rec.String("id") == "" {
			continue
		}
		out = append(out, domain.CareerListItem{
			Career:      toCareer(rec),
			SuitedTypes: toPersonalities(recordEntities(record, "types")),
		})
	}
	return out, nil
}

func (r *careerRepo) Detail(ctx context.Context, id string) (*domain.CareerDetail, error) {
	record, err := r.client.RunSingleQuery(ctx, `
MATCH (c:Career {id: $id})
OPTIONAL MATCH (c)-[:REQUIRES]->(k:Skill)
OPTIONAL MATCH (t:PersonalityType)-[:SUITS]->(c)
OPTIONAL MATCH (p:LearningPath)-[:TARGETS]->(c)
RETURN c AS career,
       collect(DISTINCT k) AS skills,
       collect(DISTINCT t) AS types,
       collect(DISTINCT p) AS paths
`, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	rec := recordEntity(record, "career")
	if rec == nil || rec.String("id") == "" {
		return nil, nil
	}
	return &domain.CareerDetail{
		Career:         toCareer(rec),
		RequiredSkills: toSkills(recordEntities(record, "skills")),
		SuitedTypes:    toPersonalities(recordEntities(record, "types")),
		LearningPaths:  toPaths(recordEntities(record, "paths")),
	}, nil
}

func (r *careerRepo) GraphRow(ctx context.Context, id string) (*CareerGraphRow, error) {
	record, err := r.client.RunSingleQuery(ctx, `
MATCH (c:Career {id: $id})
OPTIONAL MATCH (t:PersonalityType)-[:SUITS]->(c)
OPTIONAL MATCH (c)-[:REQUIRES]->(k:Skill)
OPTIONAL MATCH (co:Course)-[:TEACHES]->(k)
RETURN c AS career,
       collect(DISTINCT t) AS personalities,
       collect(DISTINCT k) AS skills,
       collect(DISTINCT co) AS courses
`, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	career := recordEntity(record, "career")
	if career == nil || career.String("id") == "" {
		return nil, nil
	}
	return &CareerGraphRow{
		Career:        career,
		Personalities: recordEntities(record, "personalities"),
		Skills:        recordEntities(record, "skills"),
		Courses:       recordEntities(record, "courses"),
	}, nil
}

func (r *careerRepo) Top(ctx context.Context, limit int) ([]domain.Career, error) {
	records, err := r.client.RunQuery(ctx, `
MATCH (c:Career)
RETURN c AS career
LIMIT $limit
`, map[string]any{"limit": limit})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Career, 0, len(records))
	for _, record := range records {
		rec := recordEntity(record, "career")
		if rec.String("id") == "" {
			continue
		}
		out = append(out, toCareer(rec))
	}
	return out, nil
}

func (r *careerRepo) NamesByIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	records, err := r.client.RunQuery(ctx, `
MATCH (c:Career)
WHERE c.id IN $ids
RETURN c.name AS name
ORDER BY c.name
`, map[string]any{"ids": stringAnyList(ids)})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(records))
	for _, record := range records {
		if name := asString(recordValue(record, "name")); name != "" {
			out = append(out, name)
		}
	}
	return out, nil
}
