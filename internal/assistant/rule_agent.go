package assistant

import (
	"context"
	"encoding/json"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
)

const untitledTask = "Untitled task"

// intentKeywords is checked in order. The first group with a keyword present as a
// whole word in the message selects the tool.
var intentKeywords = []struct {
	tool     domain.ToolName
	keywords []string
}{
	{domain.ToolName_AddTask, []string{"create", "add", "make", "new"}},
	{domain.ToolName_UpdateTask, []string{"update", "change", "modify", "rename"}},
	{domain.ToolName_DeleteTask, []string{"delete", "remove", "cancel"}},
	{domain.ToolName_ListTasks, []string{"search", "find", "show", "list", "view"}},
	{domain.ToolName_CompleteTask, []string{"complete", "done", "finish", "mark"}},
}

var (
	fillerWords = map[string]bool{
		"a": true, "an": true, "the": true, "new": true, "task": true,
		"todo": true, "to": true, "called": true, "named": true,
	}
	undoWords = []string{"incomplete", "uncomplete", "undone", "pending", "unfinished", "reopen"}
	digitsRe  = regexp.MustCompile(`\d+`)
)

// RuleBasedAgent picks at most one tool by keyword matching.
type RuleBasedAgent struct {
	registry domain.ToolRegistry
}

// NewRuleBasedAgent creates a new instance of RuleBasedAgent.
func NewRuleBasedAgent(registry domain.ToolRegistry) RuleBasedAgent {
	return RuleBasedAgent{registry: registry}
}

// Strategy implements domain.ChatAgent.
func (a RuleBasedAgent) Strategy() domain.AgentStrategy {
	return domain.AgentStrategy_RuleBased
}

// ProcessRequest implements domain.ChatAgent.
func (a RuleBasedAgent) ProcessRequest(ctx context.Context, req domain.AgentRequest) domain.AgentReply {
	message := strings.TrimSpace(req.Message)
	words := strings.Fields(message)
	tokens := tokenize(message)

	tool, keywordAt, ok := matchIntent(tokens)
	if !ok {
		return domain.AgentReply{
			Response:     "I understand you said: '" + message + "'. How can I help you with your tasks today?",
			ToolCalls:    []domain.ToolCallRecord{},
			ActionsTaken: []string{},
		}
	}

	args := buildArgs(tool, message, words, tokens, keywordAt)
	rawArgs, _ := json.Marshal(args) // args holds only strings, numbers and bools

	result := a.registry.Execute(ctx, string(tool), req.UserID, rawArgs)
	reply := domain.AgentReply{}
	reply.RecordToolCall(string(tool), rawArgs, result)
	if result.Success {
		reply.Response = result.Message
	} else {
		reply.Response = "I tried to help with that, but encountered an issue: " + result.Message
	}
	return reply
}

// tokenize lower-cases text and splits it into words made of letters and digits.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// matchIntent returns the selected tool and the index of the matched keyword.
func matchIntent(tokens []string) (domain.ToolName, int, bool) {
	for _, group := range intentKeywords {
		for i, tok := range tokens {
			if slices.Contains(group.keywords, tok) {
				return group.tool, i, true
			}
		}
	}
	return "", -1, false
}

func buildArgs(tool domain.ToolName, message string, words, tokens []string, keywordAt int) map[string]any {
	args := map[string]any{}
	taskID, hasID := firstInteger(message)

	switch tool {
	case domain.ToolName_AddTask:
		title := extractTitle(words, tokens, keywordAt)
		if title == "" {
			title = untitledTask
		}
		args["title"] = title
	case domain.ToolName_UpdateTask:
		if hasID {
			args["task_id"] = taskID
		}
		if title := textAfterWord(words, "to"); title != "" {
			args["title"] = title
		}
	case domain.ToolName_DeleteTask:
		if hasID {
			args["task_id"] = taskID
		} else if title := extractTitle(words, tokens, keywordAt); title != "" {
			args["title"] = title
		}
	case domain.ToolName_ListTasks:
		switch {
		case slices.Contains(tokens, "pending"):
			args["status"] = string(domain.TaskStatus_PENDING)
		case slices.Contains(tokens, "completed"):
			args["status"] = string(domain.TaskStatus_COMPLETED)
		}
	case domain.ToolName_CompleteTask:
		if hasID {
			args["task_id"] = taskID
		}
		undo := slices.ContainsFunc(tokens, func(tok string) bool {
			return slices.Contains(undoWords, tok)
		})
		args["complete"] = !undo
	}
	return args
}

// extractTitle returns the words following the matched keyword, with leading filler
// words and trailing punctuation removed.
func extractTitle(words, tokens []string, keywordAt int) string {
	start := keywordWordIndex(words, tokens, keywordAt) + 1
	if start <= 0 || start >= len(words) {
		return ""
	}
	rest := words[start:]
	for len(rest) > 0 && fillerWords[strings.ToLower(strings.Trim(rest[0], ".,!?:;"))] {
		rest = rest[1:]
	}
	return truncateTitle(strings.TrimRight(strings.Join(rest, " "), ".!?"))
}

// keywordWordIndex maps a token index back to the whitespace-separated word that holds it.
func keywordWordIndex(words, tokens []string, keywordAt int) int {
	if keywordAt < 0 || keywordAt >= len(tokens) {
		return -1
	}
	seen := 0
	for i, w := range words {
		n := len(tokenize(w))
		if keywordAt < seen+n {
			return i
		}
		seen += n
	}
	return -1
}

// textAfterWord returns the text following the first occurrence of word.
func textAfterWord(words []string, word string) string {
	for i, w := range words {
		if strings.EqualFold(w, word) && i+1 < len(words) {
			return truncateTitle(strings.TrimRight(strings.Join(words[i+1:], " "), ".!?"))
		}
	}
	return ""
}

func firstInteger(text string) (int64, bool) {
	m := digitsRe.FindString(text)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func truncateTitle(title string) string {
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) <= domain.MaxTaskTitleLength {
		return title
	}
	return strings.TrimSpace(string([]rune(title)[:domain.MaxTaskTitleLength]))
}
