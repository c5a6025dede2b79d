package domain

// QuestionType identifies one of the two quiz item variants.
type QuestionType string

const (
	QuestionTypeTrueFalse      QuestionType = "true-false"
	QuestionTypeMultipleChoice QuestionType = "mcq"
)

const (
	AnswerTrue  = "True"
	AnswerFalse = "False"
)

// QuizItem is a single generated question.
// CorrectStatement always holds the uncorrupted source sentence.
type QuizItem struct {
	QuizID           string
	Type             QuestionType
	Question         string
	Options          []string
	Answer           string
	Order            int
	CorrectStatement string
}

// GeneratedQuiz is the output of one pipeline run.
type GeneratedQuiz struct {
	ID                 string
	Transcript         string // sentences separated by blank lines, for display
	NormalizedText     string
	SentenceCount      int
	ImportantWordCount int
	Items              []QuizItem
}

// CountByType returns how many items of type t the quiz holds.
func (q *GeneratedQuiz) CountByType(t QuestionType) int {
	n := 0
	for _, item := range q.Items {
		if item.Type == t {
			n++
		}
	}
	return n
}
