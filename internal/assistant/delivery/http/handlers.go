package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"personal-task-assistant/pkg/response"
)

// ProcessMessage godoc
// @Summary     Send a chat message
// @Description Classifies one free-form utterance and creates the resulting task or event, if any.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body processMessageReq true "Message text"
// @Success     200 {object} processMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - previous message still processing"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/messages [POST]
func (h *handler) ProcessMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageBody(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ProcessMessage(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessMessage: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProcessMessageResp(output))
}

// Transcript godoc
// @Summary     Get the conversation transcript
// @Description Returns every chat message of the current session, oldest first.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} transcriptResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/messages [GET]
func (h *handler) Transcript(c *gin.Context) {
	ctx := c.Request.Context()

	messages, err := h.uc.Transcript(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Transcript: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTranscriptResp(messages))
}

// Snapshot godoc
// @Summary     Get the dashboard snapshot
// @Description Returns the current task list (newest first) and event list (soonest first).
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} snapshotResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/snapshot [GET]
func (h *handler) Snapshot(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Snapshot(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Snapshot: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSnapshotResp(output))
}

// ToggleTask godoc
// @Summary     Toggle task completion
// @Description Flips the completed flag of a task. Unknown ids succeed without effect.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/toggle [PATCH]
func (h *handler) ToggleTask(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.ToggleTask(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.ToggleTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// DeleteTask godoc
// @Summary     Delete a task
// @Description Removes a task. Unknown ids succeed without effect.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.DeleteTask(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// DeleteEvent godoc
// @Summary     Delete a calendar event
// @Description Removes an event. Unknown ids succeed without effect.
// @Tags        Events
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [DELETE]
func (h *handler) DeleteEvent(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.DeleteEvent(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// LinkAccount godoc
// @Summary     Link a Google Calendar account
// @Description Adds an already-authorized account to the export roster.
// @Tags        Accounts
// @Accept      json
// @Produce     json
// @Param       body body linkAccountReq true "Account credentials"
// @Success     200 {object} accountResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/accounts [POST]
func (h *handler) LinkAccount(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLinkAccountBody(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	account, err := h.uc.LinkAccount(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.LinkAccount: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newAccountResp(account))
}

// ListAccounts godoc
// @Summary     List linked accounts
// @Description Returns the non-expired account roster. Tokens are never echoed.
// @Tags        Accounts
// @Produce     json
// @Success     200 {object} listAccountsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/accounts [GET]
func (h *handler) ListAccounts(c *gin.Context) {
	ctx := c.Request.Context()

	accounts, err := h.uc.ListAccounts(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListAccounts: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListAccountsResp(accounts))
}

// Export godoc
// @Summary     Export the snapshot to Google Calendar
// @Description Uploads every event and dated open task to one linked account, best-effort.
// @Tags        Export
// @Accept      json
// @Produce     json
// @Param       body body exportReq true "Export target"
// @Success     200 {object} exportResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found - no such linked account"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/export [POST]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportBody(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Export(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newExportResp(output))
}
