package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktracker/internal/forms"
	"tasktracker/internal/models"
	"tasktracker/internal/repositories"
	"tasktracker/internal/services"
)

type TaskHandler struct {
	service services.TaskService
	log     *zap.SugaredLogger
	now     func() time.Time
}

func NewTaskHandler(service services.TaskService, log *zap.SugaredLogger) *TaskHandler {
	return &TaskHandler{service: service, log: log, now: time.Now}
}

// filterView carries the current filter back into the form as strings.
type filterView struct {
	Search   string
	Status   string
	Priority string
	SortBy   string
}

// GET /
func (h *TaskHandler) Index(c *gin.Context) {
	filter := models.NewTaskFilter(
		c.Query("search"), c.Query("status"), c.Query("priority"), c.Query("sort_by"),
	)
	h.log.Debugf("[task][list] q=%v filter=%+v", c.Request.URL.RawQuery, filter)

	data := gin.H{
		"Title": "Tasks",
		"Filter": filterView{
			Search:   filter.Search,
			Status:   string(filter.Status),
			Priority: filter.PriorityValue(),
			SortBy:   string(filter.SortBy),
		},
		"StatusChoices":   models.StatusChoices,
		"PriorityChoices": models.PriorityChoices,
		"SortChoices":     models.SortChoices,
		"Today":           h.now(),
	}

	tasks, err := h.service.List(c.Request.Context(), filter)
	if err == nil {
		var stats models.TaskStats
		stats, err = h.service.Stats(c.Request.Context())
		data["Stats"] = stats
	}
	if err != nil {
		h.log.Errorf("[task][list][err] %v", err)
		data["Tasks"] = []models.Task(nil)
		data["Stats"] = models.TaskStats{}
		data["Flashes"] = append(popFlashes(c, h.log), Flash{Category: flashError, Message: msgInternalError})
		c.HTML(http.StatusInternalServerError, "index.html", data)
		return
	}

	h.log.Debugf("[task][list][ok] count=%d", len(tasks))
	data["Tasks"] = tasks
	data["Flashes"] = popFlashes(c, h.log)
	c.HTML(http.StatusOK, "index.html", data)
}

// GET /add
func (h *TaskHandler) NewForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "Add New Task", "/add", forms.NewTaskForm(), nil)
}

// POST /add
func (h *TaskHandler) Create(c *gin.Context) {
	form, errs := h.bindForm(c)
	if errs != nil {
		h.log.Infof("[task][create][invalid] %v", errs)
		h.renderForm(c, http.StatusOK, "Add New Task", "/add", form, errs)
		return
	}

	task, err := h.service.Create(c.Request.Context(), form.Task())
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	h.log.Infof("[task][create][ok] id=%d title=%q priority=%s", task.ID, task.Title, task.Priority)
	addFlash(c, h.log, flashSuccess, "Task added successfully!")
	redirectHome(c)
}

// GET /edit/:id
func (h *TaskHandler) EditForm(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.notFound(c, "edit", err)
		return
	}
	task, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.outcome(c, "edit", err)
		return
	}
	h.renderForm(c, http.StatusOK, "Edit Task", c.Request.URL.Path, forms.FromTask(task), nil)
}

// POST /edit/:id
func (h *TaskHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.notFound(c, "update", err)
		return
	}

	form, errs := h.bindForm(c)
	if errs != nil {
		// the task may have been deleted while the form was open
		if _, err := h.service.GetByID(c.Request.Context(), id); err != nil {
			h.outcome(c, "update", err)
			return
		}
		h.log.Infof("[task][update][invalid] id=%d %v", id, errs)
		h.renderForm(c, http.StatusOK, "Edit Task", c.Request.URL.Path, form, errs)
		return
	}

	task, err := h.service.Update(c.Request.Context(), id, form.Task())
	if err != nil {
		h.outcome(c, "update", err)
		return
	}
	h.log.Infof("[task][update][ok] id=%d", task.ID)
	addFlash(c, h.log, flashSuccess, "Task updated successfully!")
	redirectHome(c)
}

// POST /delete/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.notFound(c, "delete", err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.outcome(c, "delete", err)
		return
	}
	h.log.Infof("[task][delete][ok] id=%d", id)
	addFlash(c, h.log, flashSuccess, "Task deleted successfully!")
	redirectHome(c)
}

// POST /toggle/:id
func (h *TaskHandler) Toggle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.notFound(c, "toggle", err)
		return
	}
	task, err := h.service.Toggle(c.Request.Context(), id)
	if err != nil {
		h.outcome(c, "toggle", err)
		return
	}

	status := "pending"
	if task.Completed {
		status = "completed"
	}
	h.log.Infof("[task][toggle][ok] id=%d status=%s", id, status)
	addFlash(c, h.log, flashSuccess, "Task marked as "+status+"!")
	redirectHome(c)
}

// ---- helpers ----

func (h *TaskHandler) bindForm(c *gin.Context) (forms.TaskForm, forms.FieldErrors) {
	var form forms.TaskForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Warnf("[task][form][bind][err] %v", err)
		return form, forms.FieldErrors{"form": "The submitted form could not be read."}
	}
	return form, form.Validate()
}

func (h *TaskHandler) renderForm(c *gin.Context, status int, title, action string, form forms.TaskForm, errs forms.FieldErrors) {
	if errs == nil {
		errs = forms.FieldErrors{}
	}
	c.HTML(status, "task_form.html", gin.H{
		"Title":      title,
		"Action":     action,
		"Form":       form,
		"Errors":     errs,
		"Priorities": models.Priorities,
		"Flashes":    popFlashes(c, h.log),
	})
}

// outcome maps a service error to the not-found or generic notice.
func (h *TaskHandler) outcome(c *gin.Context, op string, err error) {
	if errors.Is(err, repositories.ErrTaskNotFound) {
		h.notFound(c, op, err)
		return
	}
	h.fail(c, op, err)
}

func (h *TaskHandler) notFound(c *gin.Context, op string, err error) {
	h.log.Infof("[task][%s][404] %s: %v", op, c.Param("id"), err)
	addFlash(c, h.log, flashError, msgNotFound)
	redirectHome(c)
}

func (h *TaskHandler) fail(c *gin.Context, op string, err error) {
	h.log.Errorf("[task][%s][err] %v", op, err)
	addFlash(c, h.log, flashError, msgInternalError)
	redirectHome(c)
}
