package console

import (
	"embed"
	"html/template"
	"net/http"

	"go-salaryslip/internal/shared/contextutil"
	"go-salaryslip/internal/slipclient"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded pages.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

type field struct {
	Name  string
	Label string
	Type  string
	Value string
}

type indexPage struct {
	Search     string
	Rows       []slipclient.Row
	Fields     []field
	DraftTotal string
	Editing    bool
}

type confirmPage struct {
	ID             string
	EmployeeNumber string
	Prompt         string
}

// Handler serves the console. Each browser session gets its own Workspace.
type Handler struct {
	sessions *sessions
	logger   *zap.Logger
}

func NewHandler(api slipclient.SlipAPI) *Handler {
	return &Handler{
		sessions: newSessions(api),
		logger:   zap.L().Named("console.handler"),
	}
}

// Index renders the page. Every load re-reads the list.
func (h *Handler) Index(c *gin.Context) {
	ctx := c.Request.Context()
	log := contextutil.GetLogger(ctx, h.logger)
	ws := h.sessions.workspace(c)

	if err := ws.Refresh(ctx); err != nil {
		log.Warn("list fetch failed", zap.Error(err))
	}
	if q, ok := c.GetQuery("q"); ok {
		ws.SetSearch(q)
	}

	draft := ws.Draft()
	c.HTML(http.StatusOK, "index.html", indexPage{
		Search:     ws.Search(),
		Rows:       ws.Rows(),
		Fields:     draftFields(draft),
		DraftTotal: slipclient.FormatTotal(slipclient.DraftTotal(draft)),
		Editing:    ws.Editing(),
	})
}

func (h *Handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()
	log := contextutil.GetLogger(ctx, h.logger)

	ws := h.sessions.workspace(c)
	ws.SetDraft(draftFromForm(c))
	if err := ws.Submit(ctx); err != nil {
		log.Warn("submit failed", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Edit(c *gin.Context) {
	log := contextutil.GetLogger(c.Request.Context(), h.logger)

	if err := h.sessions.workspace(c).Edit(c.Param("id")); err != nil {
		log.Warn("edit ignored", zap.String("id", c.Param("id")), zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) ConfirmDelete(c *gin.Context) {
	id := c.Param("id")
	page := confirmPage{ID: id, Prompt: slipclient.DeletePrompt}
	for _, s := range h.sessions.workspace(c).Slips() {
		if s.ID == id {
			page.EmployeeNumber = s.EmployeeNumber
			break
		}
	}
	c.HTML(http.StatusOK, "confirm.html", page)
}

func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	log := contextutil.GetLogger(ctx, h.logger)

	answer := c.PostForm("confirm")
	_, err := h.sessions.workspace(c).Delete(ctx, c.Param("id"), func(string) bool {
		return answer == "yes"
	})
	if err != nil {
		log.Warn("delete failed", zap.String("id", c.Param("id")), zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func draftFromForm(c *gin.Context) slipclient.Draft {
	return slipclient.Draft{
		EmployeeNumber:    c.PostForm("employeeNumber"),
		DaysWorked:        c.PostForm("daysWorked"),
		BasicPay:          c.PostForm("basicPay"),
		GradePay:          c.PostForm("gradePay"),
		DearnessAllowance: c.PostForm("dearnessAllowance"),
		DearnessPay:       c.PostForm("dearnessPay"),
		HRA:               c.PostForm("hra"),
		SpecialPay:        c.PostForm("specialPay"),
		OtherAllowance:    c.PostForm("otherAllowance"),
	}
}

func draftFields(d slipclient.Draft) []field {
	return []field{
		{"employeeNumber", "Employee Number", "text", d.EmployeeNumber},
		{"daysWorked", "Days Worked", "number", d.DaysWorked},
		{"basicPay", "Basic Pay", "number", d.BasicPay},
		{"gradePay", "Grade Pay", "number", d.GradePay},
		{"dearnessAllowance", "Dearness Allowance", "number", d.DearnessAllowance},
		{"dearnessPay", "Dearness Pay", "number", d.DearnessPay},
		{"hra", "HRA", "number", d.HRA},
		{"specialPay", "Special Pay", "number", d.SpecialPay},
		{"otherAllowance", "Other Allowance", "number", d.OtherAllowance},
	}
}
