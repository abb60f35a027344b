package http

import (
	"github.com/gin-gonic/gin"
)

// processDecodeReq reads the entity path param, the policy query and the
// raw wire document.
func (h *handler) processDecodeReq(c *gin.Context) (decodeReq, error) {
	var req decodeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.Entity = c.Param("entity")

	body, err := c.GetRawData()
	if err != nil {
		return req, err
	}
	req.Body = body
	return req, req.validate()
}

// processEncodeReq reads the method path param, the split query and the
// raw argument bundle.
func (h *handler) processEncodeReq(c *gin.Context) (encodeReq, error) {
	var req encodeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.Method = c.Param("method")

	body, err := c.GetRawData()
	if err != nil {
		return req, err
	}
	req.Body = body
	return req, req.validate()
}
