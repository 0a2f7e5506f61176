package skill

// roleSkillMap is the static role→skills baseline used when live listing
// data is unavailable or insufficient. Keys are normalized role names.
var roleSkillMap = map[string][]string{
	"frontend developer":   {"javascript", "react", "html", "css", "git", "rest"},
	"backend developer":    {"node", "express", "sql", "mongodb", "git", "rest"},
	"full stack developer": {"javascript", "react", "node", "express", "sql", "git"},
	"data analyst":         {"sql", "python", "excel"},
	"data scientist":       {"python", "sql", "machine learning"},
	"devops engineer":      {"docker", "kubernetes", "aws", "linux", "git"},
}

// RoleSkills returns the baseline skill list for a target role, or the
// default vocabulary when the role is unknown. Never fails.
func RoleSkills(role string) []string {
	baseline, ok := roleSkillMap[Normalize(role)]
	if !ok {
		baseline = DefaultVocabulary
	}
	return NormalizeAll(baseline)
}
