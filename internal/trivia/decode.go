package trivia

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// flexInt accepts JSON numbers and numeric strings. Clients send category ids
// either way; null and "" decode to zero.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			*f = 0
			return nil
		}
		n, err := strconv.Atoi(str)
		if err != nil {
			return fmt.Errorf("%q is not an integer", str)
		}
		*f = flexInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}

func (n *NewQuestion) UnmarshalJSON(data []byte) error {
	var raw struct {
		Question   string  `json:"question"`
		Answer     string  `json:"answer"`
		Category   flexInt `json:"category"`
		Difficulty flexInt `json:"difficulty"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*n = NewQuestion{
		Question:   raw.Question,
		Answer:     raw.Answer,
		Category:   int(raw.Category),
		Difficulty: int(raw.Difficulty),
	}
	return nil
}

var errQuizCategoryID = errors.New("quiz_category.id is required")

func (c *QuizCategory) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID   *flexInt        `json:"id"`
		Type json.RawMessage `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.ID == nil {
		return errQuizCategoryID
	}
	c.ID = int(*raw.ID)
	c.Type = ""
	// The "All" selector sends a non-string type; only labels are kept.
	var label string
	if len(raw.Type) > 0 && json.Unmarshal(raw.Type, &label) == nil {
		c.Type = label
	}
	return nil
}
