package app

import (
	graphdata "github.com/zhilu/aicareer-backend/internal/data/graph"
	"github.com/zhilu/aicareer-backend/internal/platform/logger"
	"github.com/zhilu/aicareer-backend/internal/platform/neo4jdb"
)

type Repos struct {
	Students      graphdata.StudentRepo
	Personalities graphdata.PersonalityRepo
	Careers       graphdata.CareerRepo
	Paths         graphdata.PathRepo
	Courses       graphdata.CourseRepo
	Skills        graphdata.SkillRepo
	Snapshots     graphdata.SnapshotRepo
}

func wireRepos(client *neo4jdb.Client, log *logger.Logger) Repos {
	return Repos{
		Students:      graphdata.NewStudentRepo(client, log),
		Personalities: graphdata.NewPersonalityRepo(client, log),
		Careers:       graphdata.NewCareerRepo(client, log),
		Paths:         graphdata.NewPathRepo(client, log),
		Courses:       graphdata.NewCourseRepo(client, log),
		Skills:        graphdata.NewSkillRepo(client, log),
		Snapshots:     graphdata.NewSnapshotRepo(client, log),
	}
}
