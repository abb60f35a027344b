package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	inspectHTTP "botschema/internal/inspect/delivery/http"
	inspectUC "botschema/internal/inspect/usecase"
)

// setupInspectDomain wires the inspect domain and registers its routes.
func (srv HTTPServer) setupInspectDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. UseCase
	uc := inspectUC.New(srv.l, srv.enumPolicy, srv.schemas)

	// 2. HTTP Handler
	h := inspectHTTP.New(srv.l, uc)

	// 3. Routes: /api/v1/decode, /encode, /enums, /entities
	inspectHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Inspect domain registered (enum policy: %s)", srv.enumPolicy)
	return nil
}
