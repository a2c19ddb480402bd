package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"mentorhub/internal/domain"
)

type userDocument struct {
	ID         string    `bson:"_id"`
	Username   string    `bson:"username"`
	FullName   string    `bson:"fullName"`
	Email      string    `bson:"email"`
	Password   string    `bson:"password"`
	ProfileImg string    `bson:"profileImg"`
	Skills     []string  `bson:"skills"`
	Goal       string    `bson:"goal"`
	Roadmap    bson.D    `bson:"roadmap"`
	IsAdmin    bool      `bson:"isAdmin"`
	CreatedAt  time.Time `bson:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}

type hackathonDocument struct {
	ID             string    `bson:"_id"`
	Name           string    `bson:"name"`
	Club           string    `bson:"club"`
	SkillsRequired []string  `bson:"skills_required"`
	Level          string    `bson:"level"`
	StartDate      time.Time `bson:"startDate"`
	EndDate        time.Time `bson:"endDate"`
	CreatedAt      time.Time `bson:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt"`
}

func toUserDocument(u *domain.User) userDocument {
	return userDocument{
		ID:         u.ID,
		Username:   u.Username,
		FullName:   u.FullName,
		Email:      u.Email,
		Password:   u.PasswordHash,
		ProfileImg: u.ProfileImg,
		Skills:     domain.SkillNames(u.Skills),
		Goal:       string(u.Goal),
		Roadmap:    roadmapToBSON(u.Roadmap),
		IsAdmin:    u.IsAdmin,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func (d userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID,
		Username:     d.Username,
		FullName:     d.FullName,
		Email:        d.Email,
		PasswordHash: d.Password,
		ProfileImg:   d.ProfileImg,
		Skills:       toSkills(d.Skills),
		Goal:         domain.Goal(d.Goal),
		Roadmap:      roadmapFromBSON(d.Roadmap),
		IsAdmin:      d.IsAdmin,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func toHackathonDocument(h *domain.Hackathon) hackathonDocument {
	return hackathonDocument{
		ID:             h.ID,
		Name:           h.Name,
		Club:           h.Club,
		SkillsRequired: domain.SkillNames(h.SkillsRequired),
		Level:          string(h.Level),
		StartDate:      h.StartDate,
		EndDate:        h.EndDate,
		CreatedAt:      h.CreatedAt,
		UpdatedAt:      h.UpdatedAt,
	}
}

func (d hackathonDocument) toDomain() domain.Hackathon {
	return domain.Hackathon{
		ID:             d.ID,
		Name:           d.Name,
		Club:           d.Club,
		SkillsRequired: toSkills(d.SkillsRequired),
		Level:          domain.Level(d.Level),
		StartDate:      d.StartDate.UTC(),
		EndDate:        d.EndDate.UTC(),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func toSkills(names []string) []domain.Skill {
	skills := make([]domain.Skill, len(names))
	for i, n := range names {
		skills[i] = domain.Skill(n)
	}
	return skills
}

// roadmapToBSON keeps topic order by storing the roadmap as an ordered document.
func roadmapToBSON(r domain.Roadmap) bson.D {
	doc := bson.D{}
	for _, t := range r.Topics() {
		doc = append(doc, bson.E{Key: t.Name, Value: t.Items})
	}
	return doc
}

func roadmapFromBSON(doc bson.D) domain.Roadmap {
	var r domain.Roadmap
	for _, e := range doc {
		arr, ok := e.Value.(primitive.A)
		if !ok {
			continue
		}
		items := make([]string, 0, len(arr))
		for _, v := range arr {
			if s, ok := v.(string); ok {
				items = append(items, s)
			}
		}
		r.Set(e.Key, items)
	}
	return r
}
