package model

// Topic is one exam subtopic's attempt/correctness/accuracy record. It is
// immutable once constructed; correct <= attempted is expected but not
// enforced anywhere on the parse path.
type Topic struct {
	Name      string `json:"name"`
	Subject   string `json:"subject"`
	Correct   int    `json:"correct"`
	Attempted int    `json:"attempted"`
	Score     int    `json:"score"`
}

// AnalysisResult is the backend's weak/strong categorization of a topic set.
type AnalysisResult struct {
	WeakTopics   []Topic `json:"weak_topics"`
	StrongTopics []Topic `json:"strong_topics"`
	OverallScore int     `json:"overall_score"`
}

// PlanDay is one day of a 7-day revision plan. Backend output is trusted
// as-is; only the built-in defaults guarantee day forming 1..7 without gaps.
type PlanDay struct {
	Day   int      `json:"day"`
	Title string   `json:"title"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
	Time  string   `json:"time"`
	MCQs  int      `json:"mcqs"`
	Color string   `json:"color"`
	Light string   `json:"light"`
}

// OCRScore carries the aggregate counts extracted from a scanned answer sheet.
type OCRScore struct {
	Correct    int     `json:"correct"`
	Wrong      int     `json:"wrong"`
	Unanswered int     `json:"unanswered"`
	Total      int     `json:"total"`
	Score      float64 `json:"score"`
}

// OCRResult is the backend's response to an answer-sheet scan.
type OCRResult struct {
	Success        bool           `json:"success"`
	ExtractedText  string         `json:"extracted_text"`
	Answers        map[int]string `json:"answers"`
	TotalQuestions int            `json:"total_questions"`
	Score          OCRScore       `json:"score"`
	ExamType       string         `json:"exam_type"`
	Message        string         `json:"message"`
}
