package graph

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/zhilu/aicareer-backend/internal/platform/logger"
	"github.com/zhilu/aicareer-backend/internal/platform/neo4jdb"
)

type snapshotRepo struct {
	client *neo4jdb.Client
	log    *logger.Logger
}

func NewSnapshotRepo(client *neo4jdb.Client, log *logger.Logger) SnapshotRepo {
	return &snapshotRepo{
		client: client,
		log:    log.With("repo", "SnapshotRepo"),
	}
}

// FullRows fetches the whole-graph node slices and the flat relation
// triples. Nodes and relations are bounded independently: skills and courses
// are truncated at the store, relations are fetched in full and pruned later
// against the node set. Each query runs in its own session.
func (r *snapshotRepo) FullRows(ctx context.Context, limit int) (*FullGraphRows, error) {
	rows := &FullGraphRows{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		rows.Personalities, err = r.collectEntities(gctx, `
MATCH (t:PersonalityType)
RETURN t AS entity
ORDER BY t.code
`, nil)
		return err
	})
	g.Go(func() error {
		var err error
		rows.Careers, err = r.collectEntities(gctx, `
MATCH (c:Career)
RETURN c AS entity
ORDER BY c.name
`, nil)
		return err
	})
	g.Go(func() error {
		var err error
		rows.Skills, err = r.collectEntities(gctx, `
MATCH (k:Skill)
RETURN k AS entity
ORDER BY k.name
LIMIT $limit
`, map[string]any{"limit": limit})
		return err
	})
	g.Go(func() error {
		var err error
		rows.Courses, err = r.collectEntities(gctx, `
MATCH (co:Course)
RETURN co AS entity
ORDER BY co.name
LIMIT $limit
`, map[string]any{"limit": limit})
		return err
	})
	g.Go(func() error {
		var err error
		rows.Relations, err = r.collectRelations(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *snapshotRepo) collectEntities(ctx context.Context, cypher string, params map[string]any) ([]EntityRecord, error) {
	records, err := r.client.RunQuery(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	out := make([]EntityRecord, 0, len(records))
	for _, record := range records {
		if rec := recordEntity(record, "entity"); rec != nil {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *snapshotRepo) collectRelations(ctx context.Context) ([]RelationTriple, error) {
	records, err := r.client.RunQuery(ctx, `
MATCH (t:PersonalityType)-[:SUITS]->(c:Career)
RETURN t.code AS source, c.id AS target, 'SUITS' AS type
UNION ALL
MATCH (c:Career)-[:REQUIRES]->(k:Skill)
RETURN c.id AS source, k.id AS target, 'REQUIRES' AS type
UNION ALL
MATCH (co:Course)-[:TEACHES]->(k:Skill)
RETURN co.id AS source, k.id AS target, 'TEACHES' AS type
`, nil)
	if err != nil {
		return nil, err
	}
	out := make([]RelationTriple, 0, len(records))
	for _, record := range records {
		triple := RelationTriple{
			SourceKey: asString(recordValue(record, "source")),
			TargetKey: asString(recordValue(record, "target")),
			Type:      asString(recordValue(record, "type")),
		}
		if triple.SourceKey == "" || triple.TargetKey == "" || triple.Type == "" {
			continue
		}
		out = append(out, triple)
	}
	return out, nil
}
