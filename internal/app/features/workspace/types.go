// internal/app/features/workspace/types.go
package workspace

import "github.com/devflowhq/devflow/internal/domain/models"

// View is the wire shape of the aggregate. Members and tasks are rendered
// as deterministic ordered arrays (roster by join time, tasks newest
// first) so clients see the same shapes the legacy API produced.
type View struct {
	ID            string                 `json:"id"`
	TeamName      string                 `json:"teamName"`
	TeamHead      string                 `json:"teamHead"`
	LeaderContact string                 `json:"leaderContact"`
	Members       []models.Member        `json:"members"`
	Tasks         []models.Task          `json:"tasks"`
	Messages      []models.Message       `json:"messages"`
	ActivityLog   []models.ActivityEntry `json:"activityLog"`
}

func newView(ws *models.Workspace) View {
	messages := ws.Messages
	if messages == nil {
		messages = []models.Message{}
	}
	log := ws.ActivityLog
	if log == nil {
		log = []models.ActivityEntry{}
	}
	return View{
		ID:            ws.ID.Hex(),
		TeamName:      ws.TeamName,
		TeamHead:      ws.TeamHead,
		LeaderContact: ws.LeaderContact,
		Members:       ws.MemberList(),
		Tasks:         ws.TaskList(),
		Messages:      messages,
		ActivityLog:   log,
	}
}

type addMemberRequest struct {
	Name string `json:"name"`
}

type addTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	AssignedTo  string `json:"assignedTo"`
	DueDate     string `json:"dueDate"`
}

type addCommentRequest struct {
	User string `json:"user"`
	Text string `json:"text"`
}

type addMessageRequest struct {
	User string `json:"user"`
	Text string `json:"text"`
}
