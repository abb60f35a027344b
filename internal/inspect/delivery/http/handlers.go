package http

import (
	"github.com/gin-gonic/gin"

	"botschema/pkg/response"
)

// Decode godoc
// @Summary     Decode a wire document
// @Description Maps a Telegram wire document to the named entity and returns it re-serialized.
// @Tags        Inspect
// @Accept      json
// @Produce     json
// @Param       entity path  string true  "Entity name (case-insensitive), e.g. Update"
// @Param       policy query string false "Enum policy override: lenient or strict"
// @Success     200 {object} decodeResp
// @Failure     400 {object} response.Resp "Malformed document"
// @Failure     404 {object} response.Resp "Unknown entity"
// @Failure     422 {object} response.Resp "Schema error"
// @Router      /api/v1/decode/{entity} [POST]
func (h *handler) Decode(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDecodeReq(c)
	if err != nil {
		h.writeError(c, "processDecodeReq", err)
		return
	}

	output, err := h.uc.Decode(ctx, req.toInput())
	if err != nil {
		h.writeError(c, "uc.Decode", err)
		return
	}

	response.OK(c, h.newDecodeResp(output))
}

// Encode godoc
// @Summary     Encode an argument bundle
// @Description Checks an outbound argument bundle and returns its canonical wire documents.
// @Tags        Inspect
// @Accept      json
// @Produce     json
// @Param       method path  string true  "API method: getUpdates, getFile, sendMessage, kickChatMember"
// @Param       split  query bool   false "Split an over-long sendMessage text"
// @Success     200 {object} encodeResp
// @Failure     400 {object} response.Resp "Malformed document"
// @Failure     404 {object} response.Resp "Unknown method"
// @Failure     422 {object} response.Resp "Schema error"
// @Router      /api/v1/encode/{method} [POST]
func (h *handler) Encode(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEncodeReq(c)
	if err != nil {
		h.writeError(c, "processEncodeReq", err)
		return
	}

	output, err := h.uc.Encode(ctx, req.toInput())
	if err != nil {
		h.writeError(c, "uc.Encode", err)
		return
	}

	response.OK(c, h.newEncodeResp(output))
}

// Enums godoc
// @Summary     List enumerations
// @Description Returns every enumeration with its documented tokens and legacy aliases.
// @Tags        Inspect
// @Produce     json
// @Success     200 {object} enumsResp
// @Router      /api/v1/enums [GET]
func (h *handler) Enums(c *gin.Context) {
	response.OK(c, h.newEnumsResp(h.uc.Enums(c.Request.Context())))
}

// Entity godoc
// @Summary     Entity wire names
// @Description Returns the wire keys of an entity or argument bundle in declaration order.
// @Tags        Inspect
// @Produce     json
// @Param       entity path string true "Entity name (case-insensitive)"
// @Success     200 {object} entityResp
// @Failure     404 {object} response.Resp "Unknown entity"
// @Router      /api/v1/entities/{entity} [GET]
func (h *handler) Entity(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Entity(ctx, c.Param("entity"))
	if err != nil {
		h.writeError(c, "uc.Entity", err)
		return
	}

	response.OK(c, h.newEntityResp(output))
}
