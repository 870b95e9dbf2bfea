package catalog

import "github.com/bethanyfinesse/bridgemindapp/internal/models"

var students = []models.Student{
	{ID: "s1", Avatar: "female", Name: "Lina", Country: "Brazil", Major: "Computer Science", Hobbies: []string{"Soccer", "Cooking"}, Region: "Latin America"},
	{ID: "s2", Avatar: "male", Name: "Kenji", Country: "Japan", Major: "Mechanical Engineering", Hobbies: []string{"Drawing", "Gaming"}, Region: "Asia"},
	{ID: "s3", Avatar: "female", Name: "Amira", Country: "Egypt", Major: "Psychology", Hobbies: []string{"Reading", "Volunteering"}, Region: "Africa"},
}

// Students returns a copy of the find-friends directory.
func Students() []models.Student {
	out := make([]models.Student, len(students))
	copy(out, students)
	return out
}
