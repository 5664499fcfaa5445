package tasks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nkondratev/doctasks/internal/domain/taskModel"
	"github.com/nkondratev/doctasks/pkg/logger_i"
)

var (
	// primary tier: "### TASK-001:" style headers. RE2 has no lookahead, so
	// blocks are sliced between consecutive header positions instead.
	headerPattern = regexp.MustCompile(`(?m)^### ([A-Z]+-\d+):[ \t]*`)
	// fallback tier: "1. do the thing" numbered lists
	numberedPattern = regexp.MustCompile(`(?m)^\d+\.\s*(.+)$`)

	boldLabelPattern = regexp.MustCompile(`\*\*[^*]+\*\*.*`)
	timePattern      = regexp.MustCompile(`\*\*Время выполнения:\*\*\s*([^\n]+)`)
	descPattern      = regexp.MustCompile(`\*\*Описание:\*\*\s*([^*]+)`)
	criteriaSection  = regexp.MustCompile(`(?s)\*\*Acceptance Criteria:\*\*\s*(.*?)(?:\*\*Зависимости:|$)`)
	criteriaLine     = regexp.MustCompile(`(?m)^\s*-\s*(.+)$`)
	depsPattern      = regexp.MustCompile(`\*\*Зависимости:\*\*\s*([^\n]+)`)
	taskIDToken      = regexp.MustCompile(`TASK-\d+`)
)

// field defaults fixed by the generation prompt's contract
const (
	defaultTitle        = "Без названия"
	defaultTimeEstimate = "Не указано"
	defaultDescription  = "Описание отсутствует"
)

type Parser struct {
	maxTitleWords int
	maxTitleChars int
	logger        *logger_i.Logger
}

func NewParser(maxTitleWords, maxTitleChars int) *Parser {
	return &Parser{
		maxTitleWords: maxTitleWords,
		maxTitleChars: maxTitleChars,
		logger:        logger_i.NewLogger("TaskParser"),
	}
}

// Parse decomposes free-form generated text into an ordered task list. It is
// pure and never fails: unparsable input yields an empty list, a block that
// cannot be parsed is skipped without aborting the rest.
func (p *Parser) Parse(text string) []taskModel.TaskRecord {
	if strings.TrimSpace(text) == "" {
		p.logger.Warn("Empty text, nothing to parse")
		return nil
	}

	headers := headerPattern.FindAllStringSubmatchIndex(text, -1)
	if len(headers) == 0 {
		p.logger.Debug("No task headers found, trying numbered list")
		return p.parseNumbered(text)
	}

	var records []taskModel.TaskRecord
	for i, loc := range headers {
		taskID := text[loc[2]:loc[3]]
		blockEnd := len(text)
		if i+1 < len(headers) {
			blockEnd = headers[i+1][0]
		}
		block := strings.TrimSpace(text[loc[1]:blockEnd])

		record, ok := p.parseBlock(taskID, block)
		if !ok {
			p.logger.Error("Skipping unparsable task block", "taskId", taskID)
			continue
		}
		records = append(records, record)
	}
	p.logger.Debug("Parsed task blocks", "count", len(records))
	return records
}

func (p *Parser) parseNumbered(text string) []taskModel.TaskRecord {
	matches := numberedPattern.FindAllStringSubmatch(text, -1)

	var records []taskModel.TaskRecord
	for i, m := range matches {
		taskID := fmt.Sprintf("TASK-%03d", i+1)
		record, ok := p.parseBlock(taskID, strings.TrimSpace(m[1]))
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return records
}

func (p *Parser) parseBlock(taskID, block string) (taskModel.TaskRecord, bool) {
	if block == "" {
		return taskModel.TaskRecord{}, false
	}

	record := taskModel.TaskRecord{
		TaskID:             taskID,
		Title:              p.extractTitle(block),
		TimeEstimate:       defaultTimeEstimate,
		Description:        defaultDescription,
		AcceptanceCriteria: []string{},
		Dependencies:       []string{},
	}

	if m := timePattern.FindStringSubmatch(block); m != nil {
		record.TimeEstimate = strings.TrimSpace(m[1])
	}
	if m := descPattern.FindStringSubmatch(block); m != nil {
		record.Description = strings.TrimSpace(m[1])
	}
	if m := criteriaSection.FindStringSubmatch(block); m != nil {
		for _, line := range criteriaLine.FindAllStringSubmatch(m[1], -1) {
			record.AcceptanceCriteria = append(record.AcceptanceCriteria, strings.TrimSpace(line[1]))
		}
	}
	if m := depsPattern.FindStringSubmatch(block); m != nil {
		deps := strings.TrimSpace(m[1])
		if lower := strings.ToLower(deps); lower != "нет" && lower != "none" {
			if ids := taskIDToken.FindAllString(deps, -1); ids != nil {
				record.Dependencies = ids
			}
		}
	}
	return record, true
}

// extractTitle takes the first line of the block, drops inline bold labels,
// keeps the first few words and hard-truncates with an ellipsis.
func (p *Parser) extractTitle(block string) string {
	firstLine := block
	if idx := strings.IndexByte(block, '\n'); idx >= 0 {
		firstLine = block[:idx]
	}
	title := strings.TrimSpace(boldLabelPattern.ReplaceAllString(firstLine, ""))
	if title == "" {
		return defaultTitle
	}

	words := strings.Fields(title)
	if len(words) > p.maxTitleWords {
		words = words[:p.maxTitleWords]
	}
	title = strings.Join(words, " ")

	if runes := []rune(title); len(runes) > p.maxTitleChars {
		title = string(runes[:p.maxTitleChars-3]) + "..."
	}
	return title
}
