package service

import (
	"math/rand"
	"strconv"
	"strings"

	"exam_coach_client/internal/model"
)

// WeakThreshold is the accuracy cut below which a topic counts as weak.
const WeakThreshold = 60

// scanSubjects are the fixed subjects a scanned answer sheet is split into,
// with their share of the aggregate counts.
var scanSubjects = []struct {
	name  string
	share float64
}{
	{"Physics", 0.4},
	{"Chemistry", 0.3},
	{"Mathematics", 0.3},
}

// ReportService turns raw mock-test inputs (delimited text, scanned-sheet
// scores) into Topic records.
type ReportService struct {
	rnd *rand.Rand
}

func NewReportService(rnd *rand.Rand) *ReportService {
	return &ReportService{rnd: rnd}
}

// ParseCSV converts raw delimited text into topics. The first line is
// treated as a header and dropped unconditionally. Rows with fewer than
// four fields are dropped silently; non-numeric counts default to 0.
// Garbage rows are tolerated, an empty result is the caller's problem.
func (s *ReportService) ParseCSV(text string) []model.Topic {
	lines := strings.Split(text, "\n")
	if len(lines) <= 1 {
		return nil
	}

	var topics []model.Topic
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < 4 {
			continue
		}

		topic := model.Topic{
			Name:      strings.TrimSpace(fields[0]),
			Subject:   strings.TrimSpace(fields[1]),
			Correct:   parseInt(fields[2]),
			Attempted: parseInt(fields[3]),
		}
		if len(fields) > 4 {
			topic.Score = parseInt(fields[4])
		}
		topics = append(topics, topic)
	}
	return topics
}

func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// ConvertScan synthesizes three per-subject topics from a scanned sheet's
// aggregate counts, splitting correct/attempted 40/30/30 with floor
// rounding. The per-topic score is an independent uniform draw in [40,80),
// not derived from the split counts.
func (s *ReportService) ConvertScan(score model.OCRScore) []model.Topic {
	attempted := score.Correct + score.Wrong

	topics := make([]model.Topic, 0, len(scanSubjects))
	for _, sub := range scanSubjects {
		topics = append(topics, model.Topic{
			Name:      sub.name,
			Subject:   sub.name,
			Correct:   int(float64(score.Correct) * sub.share),
			Attempted: int(float64(attempted) * sub.share),
			Score:     40 + s.rnd.Intn(40),
		})
	}
	return topics
}

// Partition splits topics at the weak threshold.
func Partition(topics []model.Topic) (weak, strong []model.Topic) {
	for _, t := range topics {
		if t.Score < WeakThreshold {
			weak = append(weak, t)
		} else {
			strong = append(strong, t)
		}
	}
	return weak, strong
}
