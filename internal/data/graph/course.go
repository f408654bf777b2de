package graph

import (
	"context"

	"github.com/zhilu/aicareer-backend/internal/domain"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
	"github.com/zhilu/aicareer-backend/internal/platform/neo4jdb"
)

type courseRepo struct {
	client *neo4jdb.Client
	log    *logger.Logger
}

func NewCourseRepo(client *neo4jdb.Client, log *logger.Logger) CourseRepo {
	return &courseRepo{
		client: client,
		log:    log.With("repo", "CourseRepo"),
	}
}

func (r *courseRepo) TopByRating(ctx context.Context, limit int) ([]domain.Course, error) {
	records, err := r.client.RunQuery(ctx, `
MATCH (co:Course)
RETURN co AS course
ORDER BY co.rating DESC
LIMIT $limit
`, map[string]any{"limit": limit})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Course, 0, len(records))
	for _, record := range records {
		rec := recordEntity(record, "course")
		if rec.String("id") == "" {
			continue
		}
		out = append(out, toCourse(rec))
	}
	return out, nil
}

func (r *courseRepo) NamesByIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	records, err := r.client.RunQuery(ctx, `
MATCH (co:Course)
WHERE co.id IN $ids
RETURN co.name AS name
ORDER BY co.name
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

type skillRepo struct {
	client *neo4jdb.Client
	log    *logger.Logger
}

func NewSkillRepo(client *neo4jdb.Client, log *logger.Logger) SkillRepo {
	return &skillRepo{
		client: client,
		log:    log.With("repo", "SkillRepo"),
	}
}

func (r *skillRepo) Top(ctx context.Context, limit int) ([]domain.Skill, error) {
	records, err := r.client.RunQuery(ctx, `
MATCH (k:Skill)
RETURN k AS skill
LIMIT $limit
`, map[string]any{"limit": limit})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Skill, 0, len(records))
	for _, record := range records {
		rec := recordEntity(record, "skill")
		if rec.String("id") == "" {
			continue
		}
		out = append(out, toSkill(rec))
	}
	return out, nil
}
