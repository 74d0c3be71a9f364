package http

import (
	"time"

	"personal-task-assistant/internal/assistant"
	"personal-task-assistant/internal/model"
)

// --- Request DTOs ---

type processMessageReq struct {
	Text string `json:"text" binding:"required,max=4000"`
}

func (r processMessageReq) toInput() assistant.ProcessMessageInput {
	return assistant.ProcessMessageInput{Text: r.Text}
}

type linkAccountReq struct {
	Email       string `json:"email"        binding:"required,email"`
	AccessToken string `json:"access_token" binding:"required"`
	ExpiresIn   int    `json:"expires_in"   binding:"required,gt=0"`
}

func (r linkAccountReq) toInput() assistant.LinkAccountInput {
	return assistant.LinkAccountInput{
		Email:       r.Email,
		AccessToken: r.AccessToken,
		ExpiresIn:   r.ExpiresIn,
	}
}

type exportReq struct {
	Email            string `json:"email" binding:"required,email"`
	IncludeCompleted bool   `json:"include_completed"`
}

func (r exportReq) toInput() assistant.ExportInput {
	return assistant.ExportInput{
		Email:            r.Email,
		IncludeCompleted: r.IncludeCompleted,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	Priority    string    `json:"priority"`
	DueDate     string    `json:"due_date,omitempty"`
	Recurrence  string    `json:"recurrence,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		Recurrence:  string(t.Recurrence),
		CreatedAt:   t.CreatedAt,
	}
}

type eventResp struct {
	ID         string `json:"id"`
	Summary    string `json:"summary"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Recurrence string `json:"recurrence,omitempty"`
	Confirmed  bool   `json:"confirmed"`
}

func newEventResp(e model.CalendarEvent) eventResp {
	return eventResp{
		ID:         e.ID,
		Summary:    e.Summary,
		Start:      e.Start,
		End:        e.End,
		Recurrence: string(e.Recurrence),
		Confirmed:  e.IsConfirmed,
	}
}

type messageResp struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func newMessageResp(m model.ChatMessage) messageResp {
	return messageResp{
		Role:      string(m.Role),
		Content:   m.Content,
		Timestamp: m.Timestamp,
	}
}

type processMessageResp struct {
	Reply messageResp `json:"reply"`
	Task  *taskResp   `json:"task,omitempty"`
	Event *eventResp  `json:"event,omitempty"`
}

func (h *handler) newProcessMessageResp(out assistant.ProcessMessageOutput) processMessageResp {
	resp := processMessageResp{Reply: newMessageResp(out.Reply)}
	if out.CreatedTask != nil {
		task := newTaskResp(*out.CreatedTask)
		resp.Task = &task
	}
	if out.CreatedEvent != nil {
		event := newEventResp(*out.CreatedEvent)
		resp.Event = &event
	}
	return resp
}

type transcriptResp struct {
	Messages []messageResp `json:"messages"`
}

func (h *handler) newTranscriptResp(messages []model.ChatMessage) transcriptResp {
	out := make([]messageResp, len(messages))
	for i, m := range messages {
		out[i] = newMessageResp(m)
	}
	return transcriptResp{Messages: out}
}

type snapshotResp struct {
	Tasks  []taskResp  `json:"tasks"`
	Events []eventResp `json:"events"`
}

func (h *handler) newSnapshotResp(out assistant.SnapshotOutput) snapshotResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	events := make([]eventResp, len(out.Events))
	for i, e := range out.Events {
		events[i] = newEventResp(e)
	}
	return snapshotResp{Tasks: tasks, Events: events}
}

// accountResp never echoes the access token back.
type accountResp struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

func newAccountResp(a model.GoogleAccount) accountResp {
	return accountResp{Email: a.Email, ExpiresAt: a.ExpiresAt}
}

type listAccountsResp struct {
	Accounts []accountResp `json:"accounts"`
}

func (h *handler) newListAccountsResp(accounts []model.GoogleAccount) listAccountsResp {
	out := make([]accountResp, len(accounts))
	for i, a := range accounts {
		out[i] = newAccountResp(a)
	}
	return listAccountsResp{Accounts: out}
}

type exportItemResp struct {
	ID      string `json:"id"`
	Summary string `json:"summary"`
	Error   string `json:"error,omitempty"`
}

type exportResp struct {
	Attempted int              `json:"attempted"`
	Succeeded int              `json:"succeeded"`
	Items     []exportItemResp `json:"items"`
}

func (h *handler) newExportResp(out assistant.ExportOutput) exportResp {
	items := make([]exportItemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = exportItemResp{ID: item.ID, Summary: item.Summary, Error: item.Error}
	}
	return exportResp{
		Attempted: out.Attempted,
		Succeeded: out.Succeeded,
		Items:     items,
	}
}
