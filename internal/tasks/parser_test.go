package tasks_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/nkondratev/doctasks/internal/tasks"
)

const labeledBlock = `Вот задачи по итогам встречи:

### TASK-001: Настроить окружение
**Время выполнения:** 2 часа
**Описание:** Поднять dev-окружение для команды
**Acceptance Criteria:**
- Окружение доступно всем разработчикам
- CI проходит на чистом клоне
**Зависимости:** нет

### TASK-002: Перенести данные
**Время выполнения:** 1 день
**Описание:** Миграция данных из старой базы
**Acceptance Criteria:**
- Все записи перенесены без потерь
**Зависимости:** TASK-001
`

func TestParseLabeledBlocks(t *testing.T) {
	parser := tasks.NewParser(5, 100)
	records := parser.Parse(labeledBlock)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.TaskID != "TASK-001" {
		t.Errorf("expected TASK-001, got %s", first.TaskID)
	}
	if first.Title != "Настроить окружение" {
		t.Errorf("unexpected title: %q", first.Title)
	}
	if first.TimeEstimate != "2 часа" {
		t.Errorf("unexpected time estimate: %q", first.TimeEstimate)
	}
	if !strings.Contains(first.Description, "dev-окружение") {
		t.Errorf("unexpected description: %q", first.Description)
	}
	if len(first.AcceptanceCriteria) != 2 {
		t.Fatalf("expected 2 criteria, got %d", len(first.AcceptanceCriteria))
	}
	if first.AcceptanceCriteria[1] != "CI проходит на чистом клоне" {
		t.Errorf("unexpected criteria: %q", first.AcceptanceCriteria[1])
	}
	if len(first.Dependencies) != 0 {
		t.Errorf("deps 'нет' must yield empty list, got %v", first.Dependencies)
	}

	second := records[1]
	if !reflect.DeepEqual(second.Dependencies, []string{"TASK-001"}) {
		t.Errorf("expected dependency on TASK-001, got %v", second.Dependencies)
	}
}

func TestParseNumberedFallback(t *testing.T) {
	parser := tasks.NewParser(5, 100)
	text := "Что нужно сделать:\n1. Собрать требования\n2. Написать черновик\n3. Согласовать с командой\n"

	records := parser.Parse(text)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	expectedIds := []string{"TASK-001", "TASK-002", "TASK-003"}
	for i, record := range records {
		if record.TaskID != expectedIds[i] {
			t.Errorf("record %d: expected id %s, got %s", i, expectedIds[i], record.TaskID)
		}
		if record.TimeEstimate != "Не указано" {
			t.Errorf("record %d: expected default time estimate, got %q", i, record.TimeEstimate)
		}
		if record.Description != "Описание отсутствует" {
			t.Errorf("record %d: expected default description, got %q", i, record.Description)
		}
	}
	if records[1].Title != "Написать черновик" {
		t.Errorf("unexpected title: %q", records[1].Title)
	}
}

func TestParseUnstructuredText(t *testing.T) {
	parser := tasks.NewParser(5, 100)

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t  "},
		{"prose without markers", "Обсудили планы на квартал, решений не приняли."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if records := parser.Parse(tt.text); len(records) != 0 {
				t.Errorf("expected no records, got %d", len(records))
			}
		})
	}
}

func TestParseIsRepeatable(t *testing.T) {
	parser := tasks.NewParser(5, 100)

	first := parser.Parse(labeledBlock)
	second := parser.Parse(labeledBlock)
	if !reflect.DeepEqual(first, second) {
		t.Error("same input must parse to the same records")
	}
}

func TestExtractTitleLimits(t *testing.T) {
	parser := tasks.NewParser(5, 100)

	text := "### TASK-001: Первое второе третье четвертое пятое шестое седьмое\n**Время выполнения:** 1 час\n"
	records := parser.Parse(text)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Title != "Первое второе третье четвертое пятое" {
		t.Errorf("title must keep the first 5 words, got %q", records[0].Title)
	}

	longWord := strings.Repeat("x", 120)
	records = parser.Parse("### TASK-001: " + longWord + "\n")
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	title := records[0].Title
	if len([]rune(title)) != 100 {
		t.Errorf("expected title capped at 100 runes, got %d", len([]rune(title)))
	}
	if !strings.HasSuffix(title, "...") {
		t.Errorf("expected ellipsis suffix, got %q", title)
	}
}

func TestParseTitleOnlyHeader(t *testing.T) {
	parser := tasks.NewParser(5, 100)

	records := parser.Parse("### TASK-007: Короткая задача\n")
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	record := records[0]
	if record.TaskID != "TASK-007" {
		t.Errorf("unexpected id %s", record.TaskID)
	}
	if record.AcceptanceCriteria == nil || record.Dependencies == nil {
		t.Error("list fields must be empty, not nil")
	}
}
