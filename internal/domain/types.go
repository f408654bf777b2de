package domain

import "time"

// PersonalityType is one of the sixteen four-letter classification codes.
// Immutable reference data seeded once.
type PersonalityType struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var validPersonalityCodes = map[string]bool{
	"INTJ": true, "INTP": true, "ENTJ": true, "ENTP": true,
	"INFJ": true, "INFP": true, "ENFJ": true, "ENFP": true,
	"ISTJ": true, "ISFJ": true, "ESTJ": true, "ESFJ": true,
	"ISTP": true, "ISFP": true, "ESTP": true, "ESFP": true,
}

func ValidPersonalityCode(code string) bool {
	return validPersonalityCodes[code]
}

type Career struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Category        string  `json:"category,omitempty"`
	GrowthPotential float64 `json:"growthPotential"`
	DemandLevel     string  `json:"demandLevel,omitempty"`
}

type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

type Course struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Provider string  `json:"provider,omitempty"`
	Rating   float64 `json:"rating"`
}

type LearningPath struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Student is created on first personality submission and never deleted.
// CompletedCourses and TargetCareers are sets persisted as sequences.
type Student struct {
	ID                string             `json:"id"`
	PersonalityCode   string             `json:"personalityCode,omitempty"`
	PersonalityScores map[string]float64 `json:"personalityScores,omitempty"`
	CompletedCourses  []string           `json:"completedCourses,omitempty"`
	TargetCareers     []string           `json:"targetCareers,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

// CompletedSet exposes CompletedCourses as a membership set.
func (s *Student) CompletedSet() map[string]bool {
	out := make(map[string]bool, len(s.CompletedCourses))
	for _, id := range s.CompletedCourses {
		out[id] = true
	}
	return out
}

// ---- Read-side aggregates ----

type CareerWithSkills struct {
	Career
	RequiredSkills []Skill `json:"requiredSkills"`
}

type CareerListItem struct {
	Career
	SuitedTypes []PersonalityType `json:"suitedTypes"`
}

type CareerDetail struct {
	Career
	RequiredSkills []Skill           `json:"requiredSkills"`
	SuitedTypes    []PersonalityType `json:"suitedTypes"`
	LearningPaths  []LearningPath    `json:"learningPaths"`
}

type PersonalityDetail struct {
	PersonalityType
	SuitedCareers []Career `json:"suitedCareers"`
}

type CourseWithSkills struct {
	Course
	TaughtSkills []Skill `json:"taughtSkills"`
}

type PathWithCourses struct {
	LearningPath
	Courses []Course `json:"courses"`
}

type PathDetail struct {
	LearningPath
	Courses      []CourseWithSkills `json:"courses"`
	TargetCareer *Career            `json:"targetCareer,omitempty"`
}

// PathRecommendation is one ranked learning-path suggestion. RemainingCourses
// is the path's course list minus the student's completed set.
type PathRecommendation struct {
	Path             LearningPath `json:"path"`
	TargetCareer     Career       `json:"targetCareer"`
	RemainingCourses []Course     `json:"remainingCourses"`
}

type ChatResult struct {
	Reply              string `json:"reply"`
	ProfileContextUsed bool   `json:"profileContextUsed"`
	GraphContextUsed   bool   `json:"graphContextUsed"`
}
