package usecase

import (
	"fmt"
	"strings"
	"time"

	"voice-timesheet/internal/model"
	"voice-timesheet/pkg/datemath"
)

// extractionRules is the fixed part of the system prompt. The dynamic
// context (dates, catalog listing) is rendered around it.
const extractionRules = `IMPORTANT INSTRUCTIONS:
1. CAREFULLY analyze the input text to identify ALL work activities mentioned
2. For EACH activity, create a SEPARATE entry in the output array
3. Extract date/time information:
   - If user says "Monday", "Tuesday", etc. -> use CURRENT WEEK dates
   - If user says "yesterday" -> calculate yesterday's date
   - If user says "today" -> use today's date
   - Convert all dates to YYYY-MM-DD format
4. Match activities to the correct project from the available projects list
5. Calculate duration in minutes (e.g., "8 hours" = 480 minutes, "3-4 hours" = 210 minutes (average))
6. The 'entry_date' field must NEVER be null - always include the date
7. Create a concise, grammatically correct comment (1-2 lines max) summarizing what was done
8. If multiple activities are mentioned for the same day, create MULTIPLE separate entries

OUTPUT FORMAT:
Return ONLY a valid JSON array. Each object should have this structure:
[
  {
    "project_code": "matching project code from available projects",
    "client_code": "matching client code",
    "project_name": "matching project name",
    "task_name": "matching task name",
    "task_id": "matching task ID",
    "billing_classification": null,
    "entry_date": "YYYY-MM-DD",
    "start_time": null,
    "end_time": null,
    "duration_minutes": 480,
    "comment": "Brief 1-2 line grammatically correct description of work done",
    "transcript_excerpt": "relevant excerpt from user's input"
  }
]

CRITICAL RULES:
- entry_date must ALWAYS be in YYYY-MM-DD format, never null
- duration_minutes must be a number (convert hours to minutes: hours x 60)
- If duration is a range like "3-4 hours", use the average (3.5 hours = 210 minutes)
- Match project_code, client_code, project_name, task_name, and task_id from available projects
- If project is not found in the list, use the closest match
- Keep comments concise, professional, and grammatically correct
- transcript_excerpt should be the relevant portion of user's input for that activity
- Create separate entries for different days or different projects

Return ONLY the JSON array, no markdown formatting, no additional text.`

// buildExtractionPrompt renders the full system prompt for timesheet
// extraction: temporal context, the project catalog and the rules.
// Pure function of the knowledge base and now.
func buildExtractionPrompt(kb model.KnowledgeBase, now time.Time) string {
	monday, sunday := datemath.WeekBounds(now)

	var sb strings.Builder
	sb.WriteString("You are an intelligent timesheet data extraction assistant. Your task is to analyze user input (text or transcribed speech) and extract structured timesheet entries.\n\n")

	sb.WriteString("CURRENT CONTEXT:\n")
	sb.WriteString(fmt.Sprintf("- Today's Date: %s (%s)\n", now.Format(datemath.DateFormatISO), now.Weekday()))
	sb.WriteString(fmt.Sprintf("- Current Week: %s (Monday) to %s (Sunday)\n\n",
		monday.Format(datemath.DateFormatISO), sunday.Format(datemath.DateFormatISO)))

	sb.WriteString("AVAILABLE PROJECTS:\n")
	for _, p := range kb.Projects {
		sb.WriteString(fmt.Sprintf("- %s (Code: %s, Client: %s, Task: %s, Task ID: %s)\n",
			p.ProjectName, p.ProjectCode, p.ClientCode, p.Task, p.TaskID))
	}
	sb.WriteString("\n")

	sb.WriteString(extractionRules)

	return sb.String()
}
