package http

import (
	"github.com/gin-gonic/gin"
)

// processMessageBody binds and validates the chat message request body.
func (h *handler) processMessageBody(c *gin.Context) (processMessageReq, error) {
	var req processMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processLinkAccountBody binds and validates the link-account request body.
func (h *handler) processLinkAccountBody(c *gin.Context) (linkAccountReq, error) {
	var req linkAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processExportBody binds and validates the export request body.
func (h *handler) processExportBody(c *gin.Context) (exportReq, error) {
	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
