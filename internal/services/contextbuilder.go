package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	graphdata "github.com/zhilu/aicareer-backend/internal/data/graph"
	"github.com/zhilu/aicareer-backend/internal/domain"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
	"github.com/zhilu/aicareer-backend/internal/platform/openai"
)

const (
	topicalCareerLimit = 5
	topicalCourseLimit = 5
	topicalSkillLimit  = 10

	// historyWindow bounds prior turns; with the new user message the
	// downstream conversation never exceeds historyWindow+1 entries.
	historyWindow = 10
)

// Keyword trigger sets for topical context. Substring detection is a
// heuristic carried over from the source behavior; it may over- and
// under-trigger.
var (
	careerTriggers = []string{"职业", "工作", "就业", "岗位", "career", "job"}
	courseTriggers = []string{"课程", "培训", "course", "class"}
	skillTriggers  = []string{"技能", "能力", "skill"}
)

// ContextBuilder assembles the text block prepended to a conversational
// request: an optional student-profile summary plus keyword-triggered
// topical facts fetched from the graph store.
type ContextBuilder struct {
	log           *logger.Logger
	students      graphdata.StudentRepo
	personalities graphdata.PersonalityRepo
	careers       graphdata.CareerRepo
	courses       graphdata.CourseRepo
	skills        graphdata.SkillRepo
}

func NewContextBuilder(
	log *logger.Logger,
	studentRepo graphdata.StudentRepo,
	personalityRepo graphdata.PersonalityRepo,
	careerRepo graphdata.CareerRepo,
	courseRepo graphdata.CourseRepo,
	skillRepo graphdata.SkillRepo,
) *ContextBuilder {
	return &ContextBuilder{
		log:           log.With("service", "ContextBuilder"),
		students:      studentRepo,
		personalities: personalityRepo,
		careers:       careerRepo,
		courses:       courseRepo,
		skills:        skillRepo,
	}
}

// Build returns the combined context block and whether the profile and
// topical parts contributed. An empty block is valid (no augmentation).
func (b *ContextBuilder) Build(ctx context.Context, message, studentID string) (block string, profileUsed, topicalUsed bool, err error) {
	profile, err := b.buildProfileContext(ctx, studentID)
	if err != nil {
		return "", false, false, err
	}
	topical, err := b.buildTopicalContext(ctx, message)
	if err != nil {
		return "", false, false, err
	}

	parts := make([]string, 0, 2)
	if profile != "" {
		parts = append(parts, profile)
	}
	if topical != "" {
		parts = append(parts, topical)
	}
	return strings.Join(parts, "\n\n"), profile != "", topical != "", nil
}

// WindowHistory truncates the caller-supplied history to its most recent
// entries.
func (b *ContextBuilder) WindowHistory(history []openai.Message) []openai.Message {
	if len(history) <= historyWindow {
		return history
	}
	return history[len(history)-historyWindow:]
}

func (b *ContextBuilder) buildProfileContext(ctx context.Context, studentID string) (string, error) {
	if strings.TrimSpace(studentID) == "" {
		return "", nil
	}
	student, err := b.students.Get(ctx, studentID)
	if err != nil {
		return "", err
	}
	// Absence of a matching record is not an error; the profile part is
	// simply empty.
	if student == nil {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("【学生画像】")
	if student.PersonalityCode != "" {
		name := ""
		if t, err := b.personalities.Get(ctx, student.PersonalityCode); err != nil {
			return "", err
		} else if t != nil {
			name = t.Name
		}
		if name != "" {
			fmt.Fprintf(&sb, "\n性格类型：%s（%s）", student.PersonalityCode, name)
		} else {
			fmt.Fprintf(&sb, "\n性格类型：%s", student.PersonalityCode)
		}
	}
	if len(student.CompletedCourses) > 0 {
		names, err := b.courses.NamesByIDs(ctx, student.CompletedCourses)
		if err != nil {
			return "", err
		}
		if len(names) > 0 {
			fmt.Fprintf(&sb, "\n已完成课程：%s", strings.Join(names, "、"))
		}
	}
	if len(student.TargetCareers) > 0 {
		names, err := b.careers.NamesByIDs(ctx, student.TargetCareers)
		if err != nil {
			return "", err
		}
		if len(names) > 0 {
			fmt.Fprintf(&sb, "\n目标职业：%s", strings.Join(names, "、"))
		}
	}
	return sb.String(), nil
}

func (b *ContextBuilder) buildTopicalContext(ctx context.Context, message string) (string, error) {
	wantCareers := matchesAny(message, careerTriggers)
	wantCourses := matchesAny(message, courseTriggers)
	wantSkills := matchesAny(message, skillTriggers)
	if !wantCareers && !wantCourses && !wantSkills {
		return "", nil
	}

	var (
		careerBlock string
		courseBlock string
		skillBlock  string
	)
	g, gctx := errgroup.WithContext(ctx)
	if wantCareers {
		g.Go(func() error {
			careers, err := b.careers.Top(gctx, topicalCareerLimit)
			if err != nil {
				return err
			}
			careerBlock = renderCareerBlock(careers)
			return nil
		})
	}
	if wantCourses {
		g.Go(func() error {
			courses, err := b.courses.TopByRating(gctx, topicalCourseLimit)
			if err != nil {
				return err
			}
			courseBlock = renderCourseBlock(courses)
			return nil
		})
	}
	if wantSkills {
		g.Go(func() error {
			skills, err := b.skills.Top(gctx, topicalSkillLimit)
			if err != nil {
				return err
			}
			skillBlock = renderSkillBlock(skills)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	// Fixed category order: career, course, skill.
	parts := make([]string, 0, 3)
	for _, part := range []string{careerBlock, courseBlock, skillBlock} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}

func matchesAny(message string, triggers []string) bool {
	lowered := strings.ToLower(message)
	for _, kw := range triggers {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

func renderCareerBlock(careers []domain.Career) string {
	if len(careers) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("【热门AI职业】")
	for _, c := range careers {
		fmt.Fprintf(&sb, "\n- %s（增长潜力 %.0f，需求 %s）", c.Name, c.GrowthPotential, orDash(c.DemandLevel))
	}
	return sb.String()
}

func renderCourseBlock(courses []domain.Course) string {
	if len(courses) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("【推荐课程】")
	for _, c := range courses {
		fmt.Fprintf(&sb, "\n- %s（%s，评分 %.1f）", c.Name, orDash(c.Provider), c.Rating)
	}
	return sb.String()
}

func renderSkillBlock(skills []domain.Skill) string {
	if len(skills) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("【核心技能】")
	for _, k := range skills {
		if k.Category != "" {
			fmt.Fprintf(&sb, "\n- %s（%s）", k.Name, k.Category)
		} else {
			fmt.Fprintf(&sb, "\n- %s", k.Name)
		}
	}
	return sb.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "未知"
	}
	return s
}
