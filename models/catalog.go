package models

// BranchOptions maps each course to its branch choices, in the order the
// sign form presents them. Every list ends with the "Other" sentinel, which
// opens a free-text field.
var BranchOptions = map[string][]string{
	"B.Tech": {
		"CSE",
		"CSE (Data Science)",
		"CSE (AI & ML)",
		"CSE (Cyber Security)",
		"CSE (IoT)",
		"IT",
		"ECE",
		"EEE",
		"Electrical Engineering",
		"Mechanical Engineering",
		"Civil Engineering",
		BranchOther,
	},
	"BCA": {"BCA", "BCA (Cloud Computing)", BranchOther},
	"MBA": {
		"MBA (Marketing)", "MBA (Finance)", "MBA (HR)",
		"MBA (IT)", "MBA (International Business)", "MBA (Operations)", BranchOther,
	},
	"MCA": {"MCA", BranchOther},
}

// Courses returns the catalog course names in a stable order.
func Courses() []string {
	return []string{"B.Tech", "BCA", "MBA", "MCA"}
}

// ValidCourse reports whether course is part of the catalog.
func ValidCourse(course string) bool {
	_, ok := BranchOptions[course]
	return ok
}
