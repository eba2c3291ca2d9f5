package hunt

import (
	"encoding/json"
	"strings"
)

// RiddleType distinguishes option-index riddles from free-text riddles.
type RiddleType string

const (
	RiddleMCQ  RiddleType = "mcq"
	RiddleText RiddleType = "text"
)

// QuizQuestion is a multiple-choice question. Code is only set for the
// code-reading questions of phase 3. CorrectAnswer is the option index and
// must never be sent to clients before an attempt is scored.
type QuizQuestion struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Code          string   `json:"code,omitempty"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// Riddle is one phase 5 puzzle. MCQ riddles carry Options and
// CorrectAnswer; text riddles carry AcceptedAnswers.
type Riddle struct {
	ID              int        `json:"id"`
	Type            RiddleType `json:"type"`
	Riddle          string     `json:"riddle"`
	Options         []string   `json:"options,omitempty"`
	CorrectAnswer   int        `json:"correctAnswer,omitempty"`
	AcceptedAnswers []string   `json:"acceptedAnswers,omitempty"`
}

// DebugChallenge is the fixed phase 4 content: buggy code, the canonical
// expected output, its bare numeric equivalent, and the location token
// revealed on success.
type DebugChallenge struct {
	Code          string
	Answer        string
	NumericAnswer string
	NextLocation  string
	Hints         []string
}

// Catalog is the static phase content the engine scores against. It is
// loaded once at startup and treated as immutable; engine behavior is
// independent of which question set is loaded.
type Catalog struct {
	PromptKeyword   string
	Themes          []string
	Phase2Questions []QuizQuestion
	Phase3Questions []QuizQuestion
	Phase3MinScore  int
	Phase4          DebugChallenge
	Phase5Riddles   []Riddle
}

// RiddleByID returns the riddle with the given id, or nil.
func (c *Catalog) RiddleByID(id int) *Riddle {
	for i := range c.Phase5Riddles {
		if c.Phase5Riddles[i].ID == id {
			return &c.Phase5Riddles[i]
		}
	}
	return nil
}

func (c *Catalog) validTheme(theme string) bool {
	for _, t := range c.Themes {
		if t == theme {
			return true
		}
	}
	return false
}

// QuestionView is a quiz question stripped of its correct answer, safe to
// hand to clients.
type QuestionView struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Code     string   `json:"code,omitempty"`
	Options  []string `json:"options"`
}

// RiddleView is a riddle stripped of its answers.
type RiddleView struct {
	ID      int        `json:"id"`
	Type    RiddleType `json:"type"`
	Riddle  string     `json:"riddle"`
	Options []string   `json:"options,omitempty"`
}

func questionViews(qs []QuizQuestion) []QuestionView {
	views := make([]QuestionView, len(qs))
	for i, q := range qs {
		views[i] = QuestionView{ID: q.ID, Question: q.Question, Code: q.Code, Options: q.Options}
	}
	return views
}

func riddleViews(rs []Riddle) []RiddleView {
	views := make([]RiddleView, len(rs))
	for i, r := range rs {
		views[i] = RiddleView{ID: r.ID, Type: r.Type, Riddle: r.Riddle, Options: r.Options}
	}
	return views
}

// RiddleAnswer holds a submitted riddle answer: an option index for mcq
// riddles or free text for text riddles. It unmarshals from either a JSON
// number or a JSON string.
type RiddleAnswer struct {
	Index   int
	Text    string
	IsIndex bool
}

// IndexAnswer builds an mcq answer.
func IndexAnswer(i int) RiddleAnswer { return RiddleAnswer{Index: i, IsIndex: true} }

// TextAnswer builds a free-text answer.
func TextAnswer(s string) RiddleAnswer { return RiddleAnswer{Text: s} }

func (a *RiddleAnswer) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*a = IndexAnswer(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*a = TextAnswer(s)
	return nil
}

func (a RiddleAnswer) MarshalJSON() ([]byte, error) {
	if a.IsIndex {
		return json.Marshal(a.Index)
	}
	return json.Marshal(a.Text)
}

// check scores one answer against a riddle. Text comparison is
// case-insensitive and whitespace-trimmed against the accepted set.
func (r *Riddle) check(a RiddleAnswer) bool {
	if r.Type == RiddleMCQ {
		return a.IsIndex && a.Index == r.CorrectAnswer
	}
	got := strings.ToLower(strings.TrimSpace(a.Text))
	for _, accepted := range r.AcceptedAnswers {
		if strings.ToLower(strings.TrimSpace(accepted)) == got {
			return true
		}
	}
	return false
}
