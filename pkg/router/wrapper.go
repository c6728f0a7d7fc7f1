package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plume-lab/backend/pkg/errorx"
	"github.com/plume-lab/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(ginCtx *gin.Context) {
		ctx := newRequestContext(router, ginCtx)

		var req Request
		if err := bindRequest(ginCtx, method, &req); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot bind the request: %v", err)
			ctx = xcontext.WithError(ctx, errorx.New(errorx.BadRequest, "Cannot bind the request"))
		}

		if xcontext.Error(ctx) == nil {
			for _, middleware := range router.befores {
				newCtx, err := middleware(ctx)
				if err != nil {
					ctx = xcontext.WithError(ctx, err)
					break
				}

				if newCtx != nil {
					ctx = newCtx
				}
			}
		}

		if xcontext.Error(ctx) == nil {
			resp, err := handler(ctx, &req)
			if err != nil {
				ctx = xcontext.WithError(ctx, err)
			} else if resp != nil {
				ctx = xcontext.WithResponse(ctx, resp)
			}
		}

		if xcontext.Error(ctx) == nil {
			for _, middleware := range router.afters {
				newCtx, err := middleware(ctx)
				if err != nil {
					ctx = xcontext.WithError(ctx, err)
					break
				}

				if newCtx != nil {
					ctx = newCtx
				}
			}
		}

		writeResponse(ctx)

		for _, closer := range router.closers {
			closer(ctx)
		}
	}
}

func newRequestContext(router *Router, ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	ctx = xcontext.WithHTTPRequest(ctx, ginCtx.Request)
	ctx = xcontext.WithHTTPWriter(ctx, ginCtx.Writer)
	ctx = xcontext.WithDB(ctx, router.db)
	ctx = xcontext.WithConfigs(ctx, router.cfg)
	ctx = xcontext.WithLogger(ctx, router.logger)
	ctx = xcontext.WithTokenEngine(ctx, router.tokenEngine)
	ctx = xcontext.WithSessionStore(ctx, router.sessionStore)
	return ctx
}

func bindRequest(ginCtx *gin.Context, method string, req any) error {
	if len(ginCtx.Params) > 0 {
		if err := ginCtx.ShouldBindUri(req); err != nil {
			return err
		}
	}

	switch method {
	case http.MethodGet:
		return ginCtx.ShouldBindQuery(req)
	case http.MethodPost:
		if ginCtx.Request.ContentLength == 0 {
			return nil
		}

		return ginCtx.ShouldBind(req)
	}

	return nil
}
