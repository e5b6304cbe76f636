package model

// DefaultPlan is the generic 7-day plan shown whenever plan generation
// fails. Days always form 1..7 without gaps.
var DefaultPlan = []PlanDay{
	{Day: 1, Title: "Foundation Day", Focus: "Thermodynamics Basics", Tasks: []string{"Learn laws of thermodynamics", "Solve 10 MCQs", "Review formulas"}, Time: "2 hours", MCQs: 10, Color: "#ff6b35", Light: "rgba(255,107,53,0.08)"},
	{Day: 2, Title: "Deep Dive", Focus: "Organic Chemistry Fundamentals", Tasks: []string{"Study reaction mechanisms", "Practice named reactions", "Solve 8 MCQs"}, Time: "2.5 hours", MCQs: 8, Color: "#6c47ff", Light: "rgba(108,71,255,0.08)"},
	{Day: 3, Title: "Problem Solving", Focus: "Calculus Integration", Tasks: []string{"Learn integration techniques", "Practice problems", "Take quiz"}, Time: "2 hours", MCQs: 12, Color: "#00c896", Light: "rgba(0,200,150,0.08)"},
	{Day: 4, Title: "Mixed Practice", Focus: "Weak Topics Review", Tasks: []string{"Revise all weak topics", "Solve mixed MCQs", "Review mistakes"}, Time: "3 hours", MCQs: 15, Color: "#ff6b35", Light: "rgba(255,107,53,0.08)"},
	{Day: 5, Title: "Full Mock", Focus: "Simulate Exam", Tasks: []string{"Take full mock test", "Analyze results", "Note improvements"}, Time: "3 hours", MCQs: 25, Color: "#6c47ff", Light: "rgba(108,71,255,0.08)"},
	{Day: 6, Title: "Rapid Revision", Focus: "Quick Recap", Tasks: []string{"Quick revision of all topics", "Solve previous year questions", "Clarify doubts"}, Time: "2 hours", MCQs: 20, Color: "#00c896", Light: "rgba(0,200,150,0.08)"},
	{Day: 7, Title: "Final Prep", Focus: "Last Minute Tips", Tasks: []string{"Important formulas recap", "Stress management", "Exam strategy"}, Time: "1.5 hours", MCQs: 10, Color: "#ff6b35", Light: "rgba(255,107,53,0.08)"},
}

// DemoPlans holds the static per-student plans used for demo students whose
// backend plan was never generated.
var DemoPlans = map[string][]PlanDay{
	"rahul": {
		{Day: 1, Title: "Thermodynamics Deep Dive", Focus: "Physics", Color: "#6c47ff", Light: "rgba(108,71,255,0.15)", Tasks: []string{"Revise: Laws of Thermodynamics I, II, III", "Study: Carnot Cycle + efficiency derivation", "Practice: 20 MCQs on Heat Transfer"}, Time: "3.5 hrs", MCQs: 20},
		{Day: 2, Title: "Thermo + Practice Test", Focus: "Physics", Color: "#6c47ff", Light: "rgba(108,71,255,0.12)", Tasks: []string{"Revise yesterday's notes (30 min)", "Topic: PV diagrams, Entropy", "Take 30-Q mini mock on Thermodynamics"}, Time: "3 hrs", MCQs: 30},
		{Day: 3, Title: "Organic Chemistry Blast", Focus: "Chemistry", Color: "#ff6b35", Light: "rgba(255,107,53,0.15)", Tasks: []string{"Revise: Named reactions (20 key reactions)", "Study: Reaction mechanisms — SN1, SN2, E1, E2", "Practice: 25 MCQs on Carbon Compounds"}, Time: "4 hrs", MCQs: 25},
		{Day: 4, Title: "Org. Chem + Integration", Focus: "Mixed", Color: "#00c896", Light: "rgba(0,200,150,0.12)", Tasks: []string{"Morning: Org Chem revision (1.5 hrs)", "Afternoon: Integration techniques — IBP, substitution", "Evening: 15 MCQs on each topic"}, Time: "5 hrs", MCQs: 30},
		{Day: 5, Title: "Mixed Weak Topic Sprint", Focus: "All 3 Weak", Color: "#ffb830", Light: "rgba(255,184,48,0.12)", Tasks: []string{"Rapid-fire: 10 Qs on each weak topic", "Identify still-wrong patterns with AI Coach", "Targeted re-study on errors"}, Time: "3 hrs", MCQs: 30},
		{Day: 6, Title: "Full Mock Simulation", Focus: "Full Length", Color: "#ff4060", Light: "rgba(255,64,96,0.12)", Tasks: []string{"Attempt full 90-question mock (3 hrs)", "No phone, exam conditions only", "AI Coach: review all wrong answers after"}, Time: "4 hrs", MCQs: 90},
		{Day: 7, Title: "Review + Consolidate", Focus: "Review", Color: "#a78bfa", Light: "rgba(167,139,250,0.12)", Tasks: []string{"Revise all weak-topic formula sheets", "AI Coach session: ask remaining doubts", "Light: 20 mixed MCQs to build confidence"}, Time: "2.5 hrs", MCQs: 20},
	},
	"priya": {
		{Day: 1, Title: "Genetics Fundamentals", Focus: "Biology", Color: "#00c896", Light: "rgba(0,200,150,0.15)", Tasks: []string{"Revise: Mendel's Laws, Linkage, Crossing Over", "Study: DNA replication, transcription", "Practice: 20 MCQs on Mendelian Genetics"}, Time: "3 hrs", MCQs: 20},
		{Day: 2, Title: "Evolution + Genetics", Focus: "Biology", Color: "#00c896", Light: "rgba(0,200,150,0.12)", Tasks: []string{"Revise: Darwinism, Hardy-Weinberg", "Study: Mutation types, chromosomal disorders", "Take 25-Q genetics mini-mock"}, Time: "3 hrs", MCQs: 25},
		{Day: 3, Title: "Electrochemistry Day 1", Focus: "Chemistry", Color: "#ff6b35", Light: "rgba(255,107,53,0.15)", Tasks: []string{"Revise: Electrode potential, EMF, Nernst", "Study: Galvanic cells, electrolysis", "Practice: 20 MCQs"}, Time: "3.5 hrs", MCQs: 20},
		{Day: 4, Title: "Electrochemistry Day 2", Focus: "Chemistry", Color: "#ff6b35", Light: "rgba(255,107,53,0.12)", Tasks: []string{"Corrosion, batteries (lead-acid, fuel cell)", "Faraday's laws of electrolysis", "30-Q electrochemistry full test"}, Time: "3 hrs", MCQs: 30},
		{Day: 5, Title: "Mixed Biology + Chem", Focus: "Mixed", Color: "#6c47ff", Light: "rgba(108,71,255,0.12)", Tasks: []string{"Speed drill: 15 Qs each topic", "Find patterns in remaining errors", "Revise formula / reaction summaries"}, Time: "2.5 hrs", MCQs: 30},
		{Day: 6, Title: "NEET Full Mock", Focus: "Full Length", Color: "#ff4060", Light: "rgba(255,64,96,0.12)", Tasks: []string{"Full 180-question NEET mock (3 hrs)", "Strict exam conditions — timer on", "Post-mock AI analysis"}, Time: "4 hrs", MCQs: 180},
		{Day: 7, Title: "Final Review", Focus: "Review", Color: "#a78bfa", Light: "rgba(167,139,250,0.12)", Tasks: []string{"Revise all weak-topic notes", "Ask AI Coach 5 remaining doubts", "Light practice — 20 confidence MCQs"}, Time: "2 hrs", MCQs: 20},
	},
	"arjun": {
		{Day: 1, Title: "Complex Numbers Basics", Focus: "Math", Color: "#00c896", Light: "rgba(0,200,150,0.15)", Tasks: []string{"Argand plane, modulus, argument", "De Moivre's theorem derivation", "Practice: 15 MCQs (start easy)"}, Time: "4 hrs", MCQs: 15},
		{Day: 2, Title: "Complex Numbers Advanced", Focus: "Math", Color: "#00c896", Light: "rgba(0,200,150,0.12)", Tasks: []string{"Cube roots of unity, nth roots", "Geometry of complex numbers", "25-Q mini-mock on complex numbers"}, Time: "4 hrs", MCQs: 25},
		{Day: 3, Title: "Rotational Dynamics", Focus: "Physics", Color: "#6c47ff", Light: "rgba(108,71,255,0.15)", Tasks: []string{"Torque, moment of inertia concepts", "Angular momentum conservation", "Practice: 20 MCQs on rotation"}, Time: "4 hrs", MCQs: 20},
		{Day: 4, Title: "Electrochemistry", Focus: "Chemistry", Color: "#ff6b35", Light: "rgba(255,107,53,0.15)", Tasks: []string{"Electrode potential, Nernst equation", "Faraday's laws, cell EMF", "Practice: 20 MCQs"}, Time: "3.5 hrs", MCQs: 20},
		{Day: 5, Title: "Diff. Equations", Focus: "Math", Color: "#ffb830", Light: "rgba(255,184,48,0.12)", Tasks: []string{"First order ODEs — variable separable", "Linear differential equations", "Practice: 15 MCQs"}, Time: "3.5 hrs", MCQs: 15},
		{Day: 6, Title: "Full Mock Test", Focus: "Full Length", Color: "#ff4060", Light: "rgba(255,64,96,0.12)", Tasks: []string{"Full JEE Advanced mock (54 Qs, 3 hrs)", "Exam conditions only", "AI Coach post-mock review"}, Time: "4 hrs", MCQs: 54},
		{Day: 7, Title: "Review Everything", Focus: "Review", Color: "#a78bfa", Light: "rgba(167,139,250,0.12)", Tasks: []string{"Formula sheets for all 4 weak topics", "Ask AI Coach your top 5 doubts", "20 confidence MCQs — mixed"}, Time: "2 hrs", MCQs: 20},
	},
}
