package handlers

import (
	"context"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "stroke_risk/docs" // 导入 swagger 文档
	"stroke_risk/logger"
	"stroke_risk/models"
	"stroke_risk/services"
	"stroke_risk/templates"
	"stroke_risk/utils"
)

// StatsSource 评估历史统计，未启用数据库时为 nil
type StatsSource interface {
	CountByRiskLevel(ctx context.Context, since time.Time) (map[string]int, error)
}

// AssessmentHandler 表单页、结果页与 JSON 接口
type AssessmentHandler struct {
	service *services.AssessmentService
	views   *templates.Renderer
	stats   StatsSource
}

func NewAssessmentHandler(service *services.AssessmentService, views *templates.Renderer, stats StatsSource) *AssessmentHandler {
	return &AssessmentHandler{service: service, views: views, stats: stats}
}

// Index 渲染输入表单
func (h *AssessmentHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.views.RenderIndex(w); err != nil {
		logger.Error("渲染表单页失败", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// Submit 处理表单提交，结果通过重定向参数带到 /result
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var payload models.Payload
	if err := r.ParseForm(); err != nil {
		payload = models.ErrorPayload(err)
	} else if payload, err = h.service.Assess(r.Context(), r.PostForm); err != nil {
		logger.Warn("风险评估失败", "error", err)
		payload = models.ErrorPayload(err)
	}
	http.Redirect(w, r, ResultURL(payload), http.StatusFound)
}

// Result 从查询参数读取风险等级和建议并渲染
func (h *AssessmentHandler) Result(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	view := templates.ResultView{
		RiskLevel:       models.RiskNoResult,
		Recommendations: query["recommendations"],
	}
	if levels, ok := query["risk_level"]; ok && len(levels) > 0 {
		view.RiskLevel = levels[0]
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.views.RenderResult(w, view); err != nil {
		logger.Error("渲染结果页失败", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// AssessAPI godoc
// @Summary 评估卒中风险
// @Description 接收年龄、性别和15个症状（JSON 或表单），返回风险等级与建议。年龄越界会被修正到18-85，缺省症状视为0
// @Tags 风险评估
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body models.AssessmentRequest false "评估参数"
// @Success 200 {object} models.AssessmentResponse "成功"
// @Failure 200 {object} models.APIResponse "参数错误或评估失败"
// @Router /api/assess [post]
func (h *AssessmentHandler) AssessAPI(w http.ResponseWriter, r *http.Request) {
	form, err := requestForm(r)
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeInvalidParams, err.Error(), map[string]interface{}{})
		return
	}

	payload, err := h.service.Assess(r.Context(), form)
	if err != nil {
		logger.Warn("风险评估失败", "error", err)
		utils.WriteCustomErrorResponse(w, models.CodePredictionError, err.Error(), models.ErrorPayload(err))
		return
	}
	utils.WriteSuccessResponse(w, payload)
}

// StatsHandler godoc
// @Summary 评估统计
// @Description 统计最近N天各风险等级的评估数量，需要启用数据库
// @Tags 风险评估
// @Produce json
// @Param days query int false "回溯天数，默认7"
// @Success 200 {object} models.APIResponse "成功"
// @Failure 200 {object} models.APIResponse "参数错误或数据库错误"
// @Router /api/stats [get]
func (h *AssessmentHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	if h.stats == nil {
		utils.WriteCustomErrorResponse(w, models.CodeDatabaseError, "assessment history is disabled", map[string]interface{}{})
		return
	}

	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil || d <= 0 {
			utils.WriteErrorResponse(w, models.CodeInvalidParams, map[string]interface{}{
				"param": "days",
			})
			return
		}
		days = d
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	counts, err := h.stats.CountByRiskLevel(r.Context(), since)
	if err != nil {
		logger.Error("统计评估记录失败", "error", err)
		utils.WriteCustomErrorResponse(w, models.CodeDatabaseError, err.Error(), map[string]interface{}{})
		return
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"days":   days,
		"counts": counts,
	})
}

// ResultURL 构造 /result 重定向地址，建议列表按顺序重复 recommendations 参数
func ResultURL(payload models.Payload) string {
	q := url.Values{}
	q.Set("risk_level", payload.RiskLevel)
	q["recommendations"] = payload.Recommendations
	return "/result?" + q.Encode()
}

func requestForm(r *http.Request) (url.Values, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		return utils.DecodeJSONForm(r.Body)
	}
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return r.PostForm, nil
}

func RegisterRoutes(r chi.Router, h *AssessmentHandler) {
	// Swagger 文档
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // Swagger JSON 的 URL
	))

	r.Get("/", h.Index)
	r.Post("/", h.Submit)
	r.Get("/result", h.Result)

	r.Post("/api/assess", h.AssessAPI)
	r.Get("/api/stats", h.StatsHandler)
}
