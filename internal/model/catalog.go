package model

// Project is one billable project/task combination from the knowledge base.
// Identity is ProjectCode, assumed unique within the catalog.
type Project struct {
	ProjectName string `json:"project_name"`
	ProjectCode string `json:"project_code"`
	ClientCode  string `json:"client_code"`
	Task        string `json:"task"`
	TaskID      string `json:"task_id"`
}

// KnowledgeBase is the static catalog of valid projects, loaded read-only
// at request time.
type KnowledgeBase struct {
	Projects []Project `json:"projects"`
}
