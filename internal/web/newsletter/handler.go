package newsletter

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"gitee.com/flycash/newsletter-platform/internal/domain"
	"gitee.com/flycash/newsletter-platform/internal/errs"
	newslettersvc "gitee.com/flycash/newsletter-platform/internal/service/newsletter"
	"gitee.com/flycash/newsletter-platform/internal/web/auth"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	defaultLogLimit = 20
	maxLogLimit     = 100
)

type Handler struct {
	svc    newslettersvc.Service
	auth   *auth.Authenticator
	logger *elog.Component
}

func NewHandler(svc newslettersvc.Service, authenticator *auth.Authenticator) *Handler {
	return &Handler{
		svc:    svc,
		auth:   authenticator,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/newsletter", h.authenticate)
	g.POST("/send", h.Send)
	g.GET("/schedule", h.Schedule)
	g.GET("/send-logs", h.SendLogs)
}

func (h *Handler) authenticate(ctx *gin.Context) {
	if err := h.auth.Verify(ctx.GetHeader("Authorization")); err != nil {
		h.abort(ctx, err)
		return
	}
	ctx.Next()
}

func (h *Handler) Send(ctx *gin.Context) {
	mode, err := h.parseMode(ctx)
	if err != nil {
		h.abort(ctx, err)
		return
	}
	res, err := h.svc.Run(ctx.Request.Context(), mode)
	if err != nil {
		h.abort(ctx, err)
		return
	}
	if res.Skipped {
		ctx.JSON(http.StatusOK, SendResp{
			Success:           true,
			Skipped:           true,
			Reason:            string(res.Reason),
			Message:           res.Message,
			NextScheduledTime: res.NextScheduledTime,
		})
		return
	}
	ctx.JSON(http.StatusOK, SendResp{
		Success: true,
		Message: res.Message,
		Stats: &Stats{
			ArticlesFound:    len(res.Articles),
			SubscribersFound: res.SubscriberCount,
			EmailsSent:       res.Dispatch.SuccessCount,
			EmailsFailed:     res.Dispatch.ErrorCount,
			Subject:          res.Dispatch.Subject,
			Simulated:        res.Dispatch.Simulated,
		},
		Articles: slice.Map(res.Articles, func(_ int, src domain.ArticleSummary) Article {
			return Article{ID: src.ID, Title: src.Title, Slug: src.Slug}
		}),
		Results: res.Dispatch.Outcomes,
	})
}

func (h *Handler) Schedule(ctx *gin.Context) {
	view, err := h.svc.Schedule(ctx.Request.Context())
	if err != nil {
		h.abort(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ScheduleResp{
		Success:  true,
		Config:   view.Config,
		Decision: view.Decision,
	})
}

func (h *Handler) SendLogs(ctx *gin.Context) {
	limit := defaultLogLimit
	if v := ctx.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			h.abort(ctx, fmt.Errorf("%w: limit 必须是正整数", errs.ErrInvalidParameter))
			return
		}
		limit = min(n, maxLogLimit)
	}
	logs, err := h.svc.SendLogs(ctx.Request.Context(), limit)
	if err != nil {
		h.abort(ctx, err)
		return
	}
	if logs == nil {
		logs = []domain.SendLogRecord{}
	}
	ctx.JSON(http.StatusOK, SendLogsResp{Success: true, Logs: logs})
}

// parseMode 汇总请求体、查询参数和请求头里的覆盖选项
func (h *Handler) parseMode(ctx *gin.Context) (domain.InvocationMode, error) {
	var req SendReq
	// 流式请求体的 ContentLength 可能是 0 或 -1，空请求体按 io.EOF 处理
	if ctx.Request.Body != nil {
		if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			return domain.InvocationMode{}, fmt.Errorf("%w: 请求体不是合法的 JSON", errs.ErrInvalidParameter)
		}
	}
	raw := make([]string, 0, len(req.ArticleIDs)+1)
	for _, n := range req.ArticleIDs {
		raw = append(raw, n.String())
	}
	if req.ArticleID != nil {
		raw = append(raw, req.ArticleID.String())
	}
	if v := ctx.Query("articleId"); v != "" {
		raw = append(raw, v)
	}
	if v := ctx.Query("articleIds"); v != "" {
		raw = append(raw, strings.Split(v, ",")...)
	}
	ids, err := parseIDs(raw)
	if err != nil {
		return domain.InvocationMode{}, err
	}
	immediate := isTrue(ctx.GetHeader("X-Send-Immediate")) || isTrue(ctx.Query("immediate"))
	today := isTrue(ctx.GetHeader("X-Force-Send")) || isTrue(ctx.Query("force"))
	return domain.NewInvocationMode(ids, immediate, today), nil
}

func parseIDs(raw []string) ([]int64, error) {
	ids := make([]int64, 0, len(raw))
	for _, s := range raw {
		id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%w: 文章ID %q 不合法", errs.ErrInvalidParameter, s)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func isTrue(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}

func (h *Handler) abort(ctx *gin.Context, err error) {
	code := errs.Code(err)
	status := statusOf(code)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		h.logger.Error("处理简报请求失败",
			elog.String("path", ctx.FullPath()),
			elog.String("code", code),
			elog.FieldErr(err))
		msg = "internal error"
		if code == errs.CodePersistenceUnavailable {
			msg = "persistence unavailable"
		}
	}
	ctx.AbortWithStatusJSON(status, ErrorResp{Success: false, Error: code, Message: msg})
}

func statusOf(code string) int {
	switch code {
	case errs.CodeUnauthorized:
		return http.StatusUnauthorized
	case errs.CodeInvalidRequest, errs.CodeInvalidConfig:
		return http.StatusBadRequest
	case errs.CodeDispatchInProgress:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
