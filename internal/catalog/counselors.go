package catalog

import "github.com/bethanyfinesse/bridgemindapp/internal/models"

// GeneratorNames is the rotation used by the demo match sampler.
var GeneratorNames = []string{
	"Dr. Priya Patel",
	"Dr. Wei Chen",
	"Dr. Maria Santos",
	"Dr. Ahmed Hassan",
	"Dr. Sophie Dubois",
	"Dr. Elena Volkov",
	"Dr. Min-jun Park",
	"Dr. Thao Nguyen",
	"Dr. Raj Sharma",
	"Dr. Fatima Khan",
}

// ExtraSpecialties pads generated counselor profiles beyond the user's own struggles.
var ExtraSpecialties = []string{
	"Relationship Issues",
	"Career Guidance",
	"Self-Esteem",
	"Stress Management",
	"Life Transitions",
	"Trauma",
	"Social Anxiety",
	"Grief",
}

// Ratings and session counts are display-only.
var counselors = []models.Counselor{
	{ID: "m1", Name: "Dr. Priya Patel", Languages: []string{"Hindi", "English"}, Country: "India", Specialties: []string{"Academic Stress", "Anxiety", "Family Issues"}, Approach: "CBT (Cognitive Behavioral)", Rating: 4.9, Sessions: 520},
	{ID: "m2", Name: "Dr. Wei Chen", Languages: []string{"Mandarin", "English"}, Country: "China", Specialties: []string{"Anxiety", "Cultural Adjustment", "Homesickness"}, Approach: "Solution-Focused", Rating: 4.8, Sessions: 430},
	{ID: "m3", Name: "Dr. Maria Santos", Languages: []string{"Portuguese", "Spanish", "English"}, Country: "Brazil", Specialties: []string{"Depression", "Loneliness", "Identity Issues"}, Approach: "Person-Centered", Rating: 4.7, Sessions: 380},
	{ID: "m4", Name: "Dr. Ahmed Hassan", Languages: []string{"Arabic", "English"}, Country: "Saudi Arabia", Specialties: []string{"Depression", "Family Issues", "Cultural Adjustment"}, Approach: "Psychodynamic", Rating: 4.85, Sessions: 460},
	{ID: "m5", Name: "Dr. Sophie Dubois", Languages: []string{"French", "English"}, Country: "Canada", Specialties: []string{"Academic Stress", "Anxiety", "Stress Management"}, Approach: "Mindfulness-Based", Rating: 4.75, Sessions: 350},
	{ID: "m6", Name: "Dr. Elena Volkov", Languages: []string{"Russian", "English"}, Country: "Turkey", Specialties: []string{"Homesickness", "Loneliness", "Grief"}, Approach: "Humanistic", Rating: 4.6, Sessions: 240},
	{ID: "m7", Name: "Dr. Min-jun Park", Languages: []string{"Korean", "English"}, Country: "South Korea", Specialties: []string{"Academic Stress", "Identity Issues", "Social Anxiety"}, Approach: "CBT (Cognitive Behavioral)", Rating: 4.95, Sessions: 580},
	{ID: "m8", Name: "Dr. Thao Nguyen", Languages: []string{"Vietnamese", "English"}, Country: "Vietnam", Specialties: []string{"Cultural Adjustment", "Homesickness", "Family Issues"}, Approach: "ACT", Rating: 4.7, Sessions: 310},
	{ID: "m9", Name: "Dr. Raj Sharma", Languages: []string{"Hindi", "English"}, Country: "Nepal", Specialties: []string{"Anxiety", "Depression", "Self-Esteem"}, Approach: "Psychodynamic", Rating: 4.65, Sessions: 270},
	{ID: "m10", Name: "Dr. Fatima Khan", Languages: []string{"English", "Hindi"}, Country: "Pakistan", Specialties: []string{"Depression", "Cultural Adjustment", "Trauma"}, Approach: "Humanistic", Rating: 4.8, Sessions: 410},
	{ID: "m11", Name: "Dr. Yuki Tanaka", Languages: []string{"Japanese", "English"}, Country: "Japan", Specialties: []string{"Anxiety", "Social Anxiety", "Academic Stress"}, Approach: "Mindfulness-Based", Rating: 4.9, Sessions: 490},
	{ID: "m12", Name: "Dr. Carlos Mendez", Languages: []string{"Spanish", "English"}, Country: "Mexico", Specialties: []string{"Family Issues", "Identity Issues", "Life Transitions"}, Approach: "Person-Centered", Rating: 4.7, Sessions: 330},
	{ID: "m13", Name: "Dr. Amara Okafor", Languages: []string{"English"}, Country: "Nigeria", Specialties: []string{"Loneliness", "Homesickness", "Self-Esteem"}, Approach: "Solution-Focused", Rating: 4.85, Sessions: 440},
	{ID: "m14", Name: "Dr. Hans Mueller", Languages: []string{"German", "English"}, Country: "Canada", Specialties: []string{"Academic Stress", "Stress Management", "Career Guidance"}, Approach: "CBT (Cognitive Behavioral)", Rating: 4.6, Sessions: 220},
	{ID: "m15", Name: "Dr. Siriporn Chai", Languages: []string{"English"}, Country: "Thailand", Specialties: []string{"Anxiety", "Depression", "Relationship Issues"}, Approach: "ACT", Rating: 4.75, Sessions: 360},
}

// Counselors returns a copy of the matching catalog so callers can't mutate
// the package-level data.
func Counselors() []models.Counselor {
	out := make([]models.Counselor, len(counselors))
	copy(out, counselors)
	return out
}
