package domain

// Skill is one of the fixed skills a user can hold or a hackathon can require.
type Skill string

// Goal is the career path a user works towards.
type Goal string

// Level grades a hackathon's difficulty.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// Skills lists every allowed skill in presentation order.
var Skills = []Skill{
	"Linear Algebra",
	"Statistics",
	"Oop",
	"Dsa",
	"Os",
	"Version Control",
	"System Design",
	"UI/UX",
	"Networking Fundamentals",
	"Fundamental Database",
	"Scripting",
	"Python",
	"JavaScript",
	"Java",
	"SQL",
	"Bash/Shell Scripting",
	"Discrete Mathematics",
	"Computer Architecture",
	"Problem-Solving",
	"Cli",
}

// Goals lists every allowed career goal.
var Goals = []Goal{
	"Cloud Computing",
	"Cybersecurity",
	"Programming and Scripting",
	"Data Science",
	"DevOps",
	"Artificial Intelligence",
	"Networking",
	"Database Management",
	"IT Project Management",
	"Web Development",
	"Software Engineering",
	"Blockchain Technology",
	"Game Development",
	"Embedded Systems",
	"Robotics",
}

// Levels lists hackathon levels from easiest to hardest.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

var (
	allowedSkills = enumSet(Skills)
	allowedGoals  = enumSet(Goals)
	allowedLevels = enumSet(Levels)
)

func enumSet[T ~string](values []T) map[T]struct{} {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// IsValidGoal reports whether g is one of Goals.
func IsValidGoal(g string) bool {
	_, ok := allowedGoals[Goal(g)]
	return ok
}

// IsValidLevel reports whether l is one of Levels.
func IsValidLevel(l string) bool {
	_, ok := allowedLevels[Level(l)]
	return ok
}

// FilterSkills keeps the members of values that are allowed skills.
func FilterSkills(values []string) []Skill {
	return FilterToEnum(values, allowedSkills)
}

// UnknownSkills returns the members of values that are not allowed skills.
func UnknownSkills(values []string) []string {
	var unknown []string
	for _, v := range values {
		if _, ok := allowedSkills[Skill(v)]; !ok {
			unknown = append(unknown, v)
		}
	}
	return unknown
}

// SkillNames converts skills back to plain strings.
func SkillNames(skills []Skill) []string {
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = string(s)
	}
	return out
}
