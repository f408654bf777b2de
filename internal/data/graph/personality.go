package graph

import (
	"context"

	"github.com/zhilu/aicareer-backend/internal/domain"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
	"github.com/zhilu/aicareer-backend/internal/platform/neo4jdb"
)

type personalityRepo struct {
	client *neo4jdb.Client
	log    *logger.Logger
}

func NewPersonalityRepo(client *neo4jdb.Client, log *logger.Logger) PersonalityRepo {
	return &personalityRepo{
		client: client,
		log:    log.With("repo", "PersonalityRepo"),
	}
}

func (r *personalityRepo) List(ctx context.Context) ([]domain.PersonalityType, error) {
	records, err := r.client.RunQuery(ctx, `
MATCH (t:PersonalityType)
RETURN t AS type
ORDER BY t.code
`, nil)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PersonalityType, 0, len(records))
	for _, record := range records {
		rec := recordEntity(record, "type")
		if rec.String("code") == "" {
			continue
		}
		out = append(out, toPersonality(rec))
	}
	return out, nil
}

func (r *personalityRepo) Get(ctx context.Context, code string) (*domain.PersonalityType, error) {
	record, err := r.client.RunSingleQuery(ctx, `
MATCH (t:PersonalityType {code: $code})
RETURN t AS type
`, map[string]any{"code": code})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	rec := recordEntity(record, "type")
	if rec == nil || rec.String("code") == "" {
		return nil, nil
	}
	t := toPersonality(rec)
	return &t, nil
}

func (r *personalityRepo) SuitedCareers(ctx context.Context, code string) ([]domain.CareerWithSkills, error) {
	records, err := r.client.RunQuery(ctx, `
MATCH (t:PersonalityType {code: $code})-[:SUITS]->(c:Career)
OPTIONAL MATCH (c)-[:REQUIRES]->(k:Skill)
RETURN c AS career, collect(DISTINCT k) AS skills
ORDER BY c.name
`, map[string]any{"code": code})
	if err != nil {
		return nil, err
	}
	out := make([]domain.CareerWithSkills, 0, len(records))
	for _, record := range records {
		rec := recordEntity(record, "career")
		if rec.String("id") == "" {
			continue
		}
		out = append(out, domain.CareerWithSkills{
			Career:         toCareer(rec),
			RequiredSkills: toSkills(recordEntities(record, "skills")),
		})
	}
	return out, nil
}
