package model

// UploadedStudentID is the pseudo identity assigned to user-submitted data,
// as opposed to the fixed demo identities below.
const UploadedStudentID = "uploaded"

// SubjectStat is one subject's aggregate percentage for the progress view.
type SubjectStat struct {
	Name  string `json:"name"`
	Pct   int    `json:"pct"`
	Color string `json:"color"`
}

// Student is a static demo fixture. Fixtures are read-only: they are never
// created or mutated at runtime and serve as fallback/demo content only.
type Student struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Exam     string        `json:"exam"`
	Mock     string        `json:"mock"`
	Score    int           `json:"score"`
	Streak   int           `json:"streak"`
	PlanDone int           `json:"planDone"`
	Fixed    string        `json:"fixed"`
	ScoreUp  string        `json:"scoreUp"`
	Weak     []Topic       `json:"weak"`
	Strong   []Topic       `json:"strong"`
	Trend    []int         `json:"trend"`
	Subjects []SubjectStat `json:"subjects"`
	AIMsg    string        `json:"aiMsg"`
	Preview  string        `json:"preview"`
}

// CombinedTopics returns the student's full topic list (weak then strong),
// the shape submitted to the analysis backend.
func (s *Student) CombinedTopics() []Topic {
	topics := make([]Topic, 0, len(s.Weak)+len(s.Strong))
	topics = append(topics, s.Weak...)
	topics = append(topics, s.Strong...)
	return topics
}

// StaticAnalysis returns the student's fixture weak/strong/score triple,
// used when the backend cannot be reached.
func (s *Student) StaticAnalysis() AnalysisResult {
	return AnalysisResult{
		WeakTopics:   s.Weak,
		StrongTopics: s.Strong,
		OverallScore: s.Score,
	}
}

var Students = map[string]*Student{
	"rahul": {
		ID: "rahul", Name: "Rahul Sharma", Exam: "JEE Mains", Mock: "Mock Test #3",
		Score: 52, Streak: 6, PlanDone: 71, Fixed: "2/5",
		ScoreUp: "↑ +8% this month",
		Weak: []Topic{
			{Name: "Thermodynamics", Subject: "Physics", Correct: 3, Attempted: 10, Score: 30},
			{Name: "Organic Chemistry", Subject: "Chemistry", Correct: 4, Attempted: 12, Score: 33},
			{Name: "Integration (Calculus)", Subject: "Math", Correct: 2, Attempted: 8, Score: 25},
		},
		Strong: []Topic{
			{Name: "Mechanics", Subject: "Physics", Correct: 9, Attempted: 10, Score: 90},
			{Name: "Inorganic Chemistry", Subject: "Chemistry", Correct: 7, Attempted: 9, Score: 78},
			{Name: "Algebra", Subject: "Math", Correct: 8, Attempted: 10, Score: 80},
		},
		Trend: []int{38, 44, 48, 50, 52},
		Subjects: []SubjectStat{
			{Name: "Physics", Pct: 58, Color: "#6c47ff"},
			{Name: "Chemistry", Pct: 47, Color: "#ff6b35"},
			{Name: "Mathematics", Pct: 61, Color: "#00c896"},
		},
		AIMsg: "\"Rahul, your biggest weak spots are Thermodynamics and Organic Chemistry. I've front-loaded Days 1-4 to hammer these first, leaving Day 6 for a full mock and Day 7 for review. Stick to this and you'll gain 15-20 marks easily.\"",
		Preview: "Student: Rahul Sharma | Exam: JEE Mains\nDate: Feb 20, 2025 | Total: 90 Qs\n\nTopic Results:\n• Mechanics        → 9/10  ✅\n• Thermodynamics   → 3/10  ❌\n• Electrostatics   → 6/10  ✅\n• Org. Chemistry   → 4/12  ❌\n• Inorg. Chemistry → 7/9   ✅\n• Algebra          → 8/10  ✅\n• Integration      → 2/8   ❌\n• Coord. Geometry  → 7/9   ✅\n\nAI Weakness Score: Thermodynamics 30%,\nOrganic Chemistry 33%, Integration 25%",
	},
	"priya": {
		ID: "priya", Name: "Priya Nair", Exam: "NEET", Mock: "Mock Test #5",
		Score: 71, Streak: 12, PlanDone: 86, Fixed: "4/5",
		ScoreUp: "↑ +14% this month",
		Weak: []Topic{
			{Name: "Genetics & Evolution", Subject: "Biology", Correct: 5, Attempted: 12, Score: 42},
			{Name: "Electrochemistry", Subject: "Chemistry", Correct: 3, Attempted: 8, Score: 38},
		},
		Strong: []Topic{
			{Name: "Human Physiology", Subject: "Biology", Correct: 18, Attempted: 20, Score: 90},
			{Name: "Organic Chemistry", Subject: "Chemistry", Correct: 8, Attempted: 10, Score: 80},
			{Name: "Physics (Optics)", Subject: "Physics", Correct: 7, Attempted: 8, Score: 88},
		},
		Trend: []int{52, 58, 64, 68, 71},
		Subjects: []SubjectStat{
			{Name: "Biology", Pct: 82, Color: "#00c896"},
			{Name: "Chemistry", Pct: 64, Color: "#ff6b35"},
			{Name: "Physics", Pct: 76, Color: "#6c47ff"},
		},
		AIMsg: "\"Priya, you're doing great! Your main gaps are Genetics and Electrochemistry. Just 4-5 focused days on these and you could easily cross 80%. Your Biology is already NEET-ready!\"",
		Preview: "Student: Priya Nair | Exam: NEET\nDate: Feb 22, 2025 | Total: 180 Qs\n\nTopic Results:\n• Human Physiology   → 18/20  ✅\n• Genetics & Evol.   → 5/12   ❌\n• Cell Biology       → 9/10   ✅\n• Electrochemistry   → 3/8    ❌\n• Org. Chemistry     → 8/10   ✅\n• Optics (Physics)   → 7/8    ✅\n\nAI Weakness Score: Genetics 42%,\nElectrochemistry 38%",
	},
	"arjun": {
		ID: "arjun", Name: "Arjun Mehta", Exam: "JEE Advanced", Mock: "Mock Test #2",
		Score: 38, Streak: 3, PlanDone: 43, Fixed: "0/6",
		ScoreUp: "↓ -2% vs last mock",
		Weak: []Topic{
			{Name: "Complex Numbers", Subject: "Math", Correct: 1, Attempted: 8, Score: 13},
			{Name: "Rotational Dynamics", Subject: "Physics", Correct: 2, Attempted: 9, Score: 22},
			{Name: "Electrochemistry", Subject: "Chemistry", Correct: 2, Attempted: 8, Score: 25},
			{Name: "Differential Equations", Subject: "Math", Correct: 2, Attempted: 7, Score: 29},
		},
		Strong: []Topic{
			{Name: "Coordinate Geometry", Subject: "Math", Correct: 7, Attempted: 9, Score: 78},
			{Name: "Mole Concept", Subject: "Chemistry", Correct: 6, Attempted: 8, Score: 75},
		},
		Trend: []int{42, 40, 39, 40, 38},
		Subjects: []SubjectStat{
			{Name: "Physics", Pct: 34, Color: "#6c47ff"},
			{Name: "Chemistry", Pct: 42, Color: "#ff6b35"},
			{Name: "Mathematics", Pct: 38, Color: "#00c896"},
		},
		AIMsg: "\"Arjun, I can see you're in a rough patch — but don't panic. Your score is dropping because you're attempting everything without fundamentals. Let's slow down and rebuild. Complex Numbers and Rotational Dynamics first. One topic at a time.\"",
		Preview: "Student: Arjun Mehta | Exam: JEE Advanced\nDate: Feb 18, 2025 | Total: 54 Qs\n\nTopic Results:\n• Complex Numbers       → 1/8   ❌\n• Rotational Dynamics   → 2/9   ❌\n• Electrochemistry      → 2/8   ❌\n• Differential Eqs      → 2/7   ❌\n• Coord. Geometry       → 7/9   ✅\n• Mole Concept          → 6/8   ✅\n\nAI Weakness Score: Complex Numbers 13%,\nRotational 22%, Electrochemistry 25%",
	},
}
