package graph

import (
	"context"

	"github.com/zhilu/aicareer-backend/internal/domain"
)

// EntityRecord is the raw property bag of one store node, as returned by the
// query engine. Assembly code reads it through the catalog's natural-key and
// allowlist contracts.
type EntityRecord map[string]any

func (r EntityRecord) String(key string) string {
	return asString(r[key])
}

func (r EntityRecord) Float(key string) float64 {
	return asFloat(r[key])
}

// RelationTriple is one flat (source, target, type) link fetched
// independently of node assembly. The relation type implies the endpoint
// categories: SUITS personality→career, REQUIRES career→skill,
// TEACHES course→skill.
type RelationTriple struct {
	SourceKey string
	TargetKey string
	Type      string
}

// StudentGraphRow nests one student's record with its linked entities.
type StudentGraphRow struct {
	Student     EntityRecord
	Personality EntityRecord
	Careers     []EntityRecord
	Skills      []EntityRecord
	Courses     []EntityRecord
}

// CareerGraphRow nests one career's record with its linked entities.
type CareerGraphRow struct {
	Career        EntityRecord
	Personalities []EntityRecord
	Skills        []EntityRecord
	Courses       []EntityRecord
}

// FullGraphRows holds the independently bounded node slices plus the flat
// relation triples for whole-graph assembly.
type FullGraphRows struct {
	Personalities []EntityRecord
	Careers       []EntityRecord
	Skills        []EntityRecord
	Courses       []EntityRecord
	Relations     []RelationTriple
}

// PathCandidate is one Personality→Career→LearningPath→Course traversal
// result consumed by the recommendation engine.
type PathCandidate struct {
	Path    domain.LearningPath
	Career  domain.Career
	Courses []domain.Course
}

type StudentRepo interface {
	Upsert(ctx context.Context, s *domain.Student) error
	// Get returns (nil, nil) when the student does not exist.
	Get(ctx context.Context, id string) (*domain.Student, error)
	// GraphRow returns (nil, nil) when the student does not exist.
	GraphRow(ctx context.Context, id string) (*StudentGraphRow, error)
}

type PersonalityRepo interface {
	List(ctx context.Context) ([]domain.PersonalityType, error)
	// Get returns (nil, nil) when the code is unknown.
	Get(ctx context.Context, code string) (*domain.PersonalityType, error)
	SuitedCareers(ctx context.Context, code string) ([]domain.CareerWithSkills, error)
}

type CareerRepo interface {
	List(ctx context.Context) ([]domain.CareerListItem, error)
	// Detail returns (nil, nil) when the career does not exist.
	Detail(ctx context.Context, id string) (*domain.CareerDetail, error)
	// GraphRow returns (nil, nil) when the career does not exist.
	GraphRow(ctx context.Context, id string) (*CareerGraphRow, error)
	Top(ctx context.Context, limit int) ([]domain.Career, error)
	NamesByIDs(ctx context.Context, ids []string) ([]string, error)
}

type PathRepo interface {
	ForCareer(ctx context.Context, careerID string) ([]domain.PathWithCourses, error)
	// Detail returns (nil, nil) when the path does not exist.
	Detail(ctx context.Context, id string) (*domain.PathDetail, error)
	CandidatesForPersonality(ctx context.Context, code string) ([]PathCandidate, error)
}

type CourseRepo interface {
	TopByRating(ctx context.Context, limit int) ([]domain.Course, error)
	NamesByIDs(ctx context.Context, ids []string) ([]string, error)
}

type SkillRepo interface {
	Top(ctx context.Context, limit int) ([]domain.Skill, error)
}

type SnapshotRepo interface {
	FullRows(ctx context.Context, limit int) (*FullGraphRows, error)
}
