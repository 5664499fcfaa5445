package pipeline

import (
	"fmt"
	"strings"
)

// promptTemplate fixes the response contract the parser stages rely on: a
// JSON object with the summary fields, and task blocks inside content using
// the labeled format the task parser understands.
const promptTemplate = `Ты помощник, который превращает заметки и расшифровки встреч в план работ.

Проанализируй текст документа и верни ТОЛЬКО JSON-объект без пояснений, в формате:
{
  "summary": "краткое резюме документа, 2-3 предложения",
  "content": "список задач в формате ниже",
  "key_points": ["ключевой тезис 1", "ключевой тезис 2"],
  "action_items": ["действие 1", "действие 2"]
}

Каждая задача в поле content должна быть оформлена так:
### TASK-001: Название задачи
**Время выполнения:** оценка
**Описание:** что нужно сделать
**Acceptance Criteria:**
- критерий 1
- критерий 2
**Зависимости:** TASK-000 или Нет

Текст документа:
%s`

func buildPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, strings.TrimSpace(text))
}
